package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertWarned checks that the run logged a warning with text whose attributes
// include attrs, given as key/value pairs.
func AssertWarned(t *testing.T, result *HarnessResult, text string, attrs ...string) {
	t.Helper()
	require.NotNil(t, result.App, "the app did not start")
	require.Zero(t, len(attrs)%2, "attrs must be key/value pairs")

	for _, w := range result.App.Warnings() {
		if w.Text != text {
			continue
		}
		matched := true
		for i := 0; i < len(attrs); i += 2 {
			if w.Attrs[attrs[i]] != attrs[i+1] {
				matched = false
				break
			}
		}
		if matched {
			return
		}
	}
	require.Failf(t, "warning not found", "expected warning %q with attrs %v", text, attrs)
}

// RequireLocation returns the host report row of the location called name.
func RequireLocation(t *testing.T, result *HarnessResult, name string) (enabled bool, quantity int) {
	t.Helper()
	require.NotNil(t, result.Report, "the run wrote no report")
	for _, l := range result.Report.Host.Locations {
		if l.Name == name {
			return l.Enabled, l.Quantity
		}
	}
	require.Failf(t, "location not found", "no location %q in the report", name)
	return false, 0
}
