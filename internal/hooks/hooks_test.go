package hooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_OrderAndVeto(t *testing.T) {
	var calls []string
	p := NewPoint[*int]("Location.Awake")

	p.Postfix("late", Low, func(_ context.Context, _ *int) { calls = append(calls, "post-low") })
	p.Prefix("normal", Normal, func(_ context.Context, _ *int) bool {
		calls = append(calls, "pre-normal")
		return true
	})
	p.Prefix("veto", First, func(_ context.Context, v *int) bool {
		calls = append(calls, "pre-first")
		*v++
		return false
	})
	p.Postfix("early", VeryHigh, func(_ context.Context, _ *int) { calls = append(calls, "post-veryhigh") })

	v := 0
	ran := p.Run(context.Background(), &v, func(_ context.Context, _ *int) { calls = append(calls, "original") })

	require.False(t, ran)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"pre-first", "pre-normal", "post-veryhigh", "post-low"}, calls)
	assert.Equal(t, []string{"veto", "normal", "early", "late"}, p.Owners())
}

func TestPoint_EqualPriorityKeepsRegistrationOrder(t *testing.T) {
	var calls []string
	p := NewPoint[string]("SetupLocations")
	for _, name := range []string{"a", "b", "c"} {
		name := name
		p.Postfix(name, Normal, func(_ context.Context, _ string) { calls = append(calls, name) })
	}
	ran := p.Run(context.Background(), "x", nil)

	assert.True(t, ran)
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestPoint_OriginalRunsWithoutVeto(t *testing.T) {
	p := NewPoint[int]("Startup")
	p.Prefix("ok", Normal, func(context.Context, int) bool { return true })

	var got int
	ran := p.Run(context.Background(), 7, func(_ context.Context, v int) { got = v })

	assert.True(t, ran)
	assert.Equal(t, 7, got)
	assert.Equal(t, "Startup", p.Name())
}
