package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/locationmanager/internal/app"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     *app.Config
		wantExit bool
		wantCode int
		wantMsg  string
	}{
		{
			name: "positional path",
			args: []string{"packages"},
			want: &app.Config{PackagesPath: "packages", LogFormat: "text", LogLevel: "info", ReportFormat: app.ReportYAML},
		},
		{
			name: "all flags",
			args: []string{
				"-p", "pk", "--host", "host.hcl", "--settings", "cfg",
				"--log-format", "JSON", "--log-level", "debug", "--report-format", "none",
				"--sync-url", "http://localhost:3000", "--seed", "42", "--with-examples",
			},
			want: &app.Config{
				PackagesPath: "pk", HostPath: "host.hcl", SettingsPath: "cfg",
				LogFormat: "json", LogLevel: "debug", ReportFormat: app.ReportNone,
				SyncURL: "http://localhost:3000", Seed: 42, WithExamples: true,
			},
		},
		{
			name: "examples without path",
			args: []string{"--with-examples"},
			want: &app.Config{LogFormat: "text", LogLevel: "info", ReportFormat: app.ReportYAML, WithExamples: true},
		},
		{name: "no path", args: nil, wantExit: true},
		{name: "help", args: []string{"--help"}, wantExit: true},
		{name: "unknown flag", args: []string{"--nope"}, wantCode: 2, wantMsg: "unknown flag: --nope"},
		{name: "bad format", args: []string{"--log-format", "xml", "p"}, wantCode: 2, wantMsg: "invalid log-format"},
		{name: "bad level", args: []string{"--log-level", "loud", "p"}, wantCode: 2, wantMsg: "invalid log-level"},
		{name: "bad report", args: []string{"--report-format", "csv", "p"}, wantCode: 2, wantMsg: `invalid report format "csv"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, exit, err := Parse(tc.args, out)
			if tc.wantCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, exit)
			if tc.wantExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.want, cfg)
		})
	}
}
