package diag

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_RoutesByLevel(t *testing.T) {
	var out bytes.Buffer
	events := NewEvents()
	var debugs, warnings []Message
	events.OnDebug(func(m Message) { debugs = append(debugs, m) })
	events.OnWarning(func(m Message) { warnings = append(warnings, m) })

	next := slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(NewHandler(next, events)).With("package", "ruins")

	logger.Debug("registered custom location", "location", "Ruin_Tower")
	logger.Info("plain info")
	logger.Warn("location is not valid", "location", "Crypt")
	logger.Error("boom")

	require.Len(t, debugs, 1)
	assert.Equal(t, "Ruin_Tower", debugs[0].Attrs["location"])
	assert.Equal(t, "ruins", debugs[0].Attrs["package"])

	require.Len(t, warnings, 2)
	assert.Equal(t, "location is not valid", warnings[0].Text)
	assert.Equal(t, slog.LevelError, warnings[1].Level)

	assert.NotContains(t, out.String(), "registered custom location", "debug filtered by wrapped handler")
	assert.Contains(t, out.String(), "plain info")
	assert.Contains(t, out.String(), "location is not valid")
}

func TestHandler_GroupsQualifyKeys(t *testing.T) {
	events := NewEvents()
	var got Message
	events.OnWarning(func(m Message) { got = m })

	logger := slog.New(NewHandler(nil, events)).WithGroup("sync")
	logger.Warn("rejected", "key", "Enabled")

	assert.Equal(t, "Enabled", got.Attrs["sync.key"])
}

func TestEvents_SubscribeDuringDispatch(t *testing.T) {
	events := NewEvents()
	var got []string
	events.OnWarning(func(m Message) {
		got = append(got, "first:"+m.Text)
		events.OnWarning(func(m Message) { got = append(got, "late:"+m.Text) })
	})
	logger := slog.New(NewHandler(nil, events))

	logger.Warn("Room not found.")
	assert.Equal(t, []string{"first:Room not found."}, got)

	got = nil
	logger.Warn("Skipping custom location.")
	assert.Equal(t, []string{"first:Skipping custom location.", "late:Skipping custom location."}, got)
}
