package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/locationmanager/internal/app"
	"github.com/vk/locationmanager/internal/manager"
	"gopkg.in/yaml.v3"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an app test run.
type HarnessResult struct {
	LogOutput string
	Output    string
	// Report is decoded from Output when the run wrote one.
	Report *app.Report
	Err    error
	App    *app.App
}

// Options adjusts the app configuration used by RunApp. Paths are relative
// to the temporary root the files are written to.
type Options struct {
	PackagesPath string
	HostPath     string
	SettingsPath string
	Seed         uint64
	WithExamples bool
}

// RunApp writes files into a temporary directory and runs the app against
// it using a default background context.
func RunApp(t *testing.T, files map[string]string, opts Options, packages ...manager.Package) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, opts, packages...)
}

// RunAppWithContext is RunApp with a caller-provided context.
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, opts Options, packages ...manager.Package) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	resolve := func(p string) string {
		if p == "" {
			return ""
		}
		return filepath.Join(tmpDir, p)
	}
	cfg, err := app.NewConfig(app.Config{
		PackagesPath: resolve(opts.PackagesPath),
		HostPath:     resolve(opts.HostPath),
		SettingsPath: resolve(opts.SettingsPath),
		LogLevel:     "debug",
		LogFormat:    "text",
		Seed:         opts.Seed,
		WithExamples: opts.WithExamples,
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	outBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("LM_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, logBuffer, cfg, packages...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("LM_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result := &HarnessResult{
		LogOutput: logBuffer.String(),
		Output:    outBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
	if runErr == nil && result.Output != "" {
		result.Report = &app.Report{}
		require.NoError(t, yaml.Unmarshal([]byte(result.Output), result.Report))
	}
	return result
}
