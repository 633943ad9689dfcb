package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/vk/locationmanager/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("locationmanager", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
LocationManager - registers custom locations, dungeons and prefabs from content
packages into a simulated host and reports the result.

Usage:
  locationmanager [options] [PACKAGES_PATH]

Arguments:
  PACKAGES_PATH
    Path to a single .hcl package manifest or a directory of manifests.

Options:
`)
		flagSet.PrintDefaults()
	}

	packagesFlag := flagSet.StringP("packages", "p", "", "Path to the package manifest file or directory.")
	hostFlag := flagSet.String("host", "", "Path to the host fixture manifest.")
	settingsFlag := flagSet.String("settings", "", "Path to a settings overrides file or directory.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	reportFlag := flagSet.String("report-format", app.ReportYAML, "Run report format. Options: 'yaml' or 'none'.")
	syncFlag := flagSet.String("sync-url", "", "Config sync server URL. Empty disables sync.")
	seedFlag := flagSet.Uint64("seed", 0, "Seed for random creature selection. 0 picks a random seed.")
	examplesFlag := flagSet.Bool("with-examples", false, "Install the compiled-in example packages.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *packagesFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Packages path determined.", "path", path)

	if path == "" && !*examplesFlag {
		slog.Debug("No packages path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		PackagesPath: path,
		HostPath:     *hostFlag,
		SettingsPath: *settingsFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		ReportFormat: strings.ToLower(*reportFlag),
		SyncURL:      *syncFlag,
		Seed:         *seedFlag,
		WithExamples: *examplesFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
