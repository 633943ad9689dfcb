package app

import (
	"errors"
	"fmt"
)

// Report formats.
const (
	ReportYAML = "yaml"
	ReportNone = "none"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PackagesPath string // package manifests
	HostPath     string // host fixture manifest
	SettingsPath string // settings overrides

	LogFormat    string
	LogLevel     string
	ReportFormat string

	// SyncURL is the config sync server. Empty disables sync.
	SyncURL string
	// Seed seeds random creature selection. Zero picks a random seed.
	Seed uint64
	// WithExamples installs the compiled-in example packages.
	WithExamples bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.PackagesPath == "" && !cfg.WithExamples {
		return nil, errors.New("PackagesPath is required unless the example packages are enabled")
	}
	switch cfg.ReportFormat {
	case "":
		cfg.ReportFormat = ReportYAML
	case ReportYAML, ReportNone:
	default:
		return nil, fmt.Errorf("invalid report format %q: must be %q or %q", cfg.ReportFormat, ReportYAML, ReportNone)
	}
	return &cfg, nil
}
