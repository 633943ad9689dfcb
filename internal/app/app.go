package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/diag"
	"github.com/vk/locationmanager/internal/manager"
	"github.com/vk/locationmanager/internal/manifest"
	"github.com/vk/locationmanager/internal/simhost"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	packages []manager.Package
	hostCfg  simhost.Config

	mu       sync.Mutex
	warnings []diag.Message
}

// NewApp is the constructor for the main application. Logs go to logW and
// the run report to outW. Packages passed in are installed before the ones
// loaded from manifests.
func NewApp(outW, logW io.Writer, cfg *Config, packages ...manager.Package) *App {
	a := &App{outW: outW, config: cfg}

	events := diag.NewEvents()
	events.OnWarning(func(m diag.Message) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.warnings = append(a.warnings, m)
	})
	a.logger = newLogger(cfg.LogLevel, cfg.LogFormat, logW, events)
	ctx := ctxlog.WithLogger(context.Background(), a.logger)
	a.logger.Debug("Logger configured successfully.")

	if cfg.WithExamples {
		a.packages = append(a.packages, examplePackages...)
	}
	a.packages = append(a.packages, packages...)

	hostCfg, loaded, err := loadManifests(ctx, cfg)
	if err != nil {
		// A failure to load manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}
	for _, p := range loaded {
		a.packages = append(a.packages, p)
	}
	if hostCfg != nil {
		a.hostCfg = *hostCfg
	}
	a.logger.Debug("Packages collected.", "count", len(a.packages))
	return a
}

// Packages returns the packages the app installs. This is primarily for testing.
func (a *App) Packages() []manager.Package {
	return a.packages
}

// Warnings returns the warnings logged so far.
func (a *App) Warnings() []diag.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]diag.Message(nil), a.warnings...)
}

// loadManifests reads the package and host manifests. At most one host
// block may be declared across both paths.
func loadManifests(ctx context.Context, cfg *Config) (*simhost.Config, []*manifest.Package, error) {
	var paths []string
	if cfg.PackagesPath != "" {
		paths = append(paths, cfg.PackagesPath)
	}
	if cfg.HostPath != "" {
		paths = append(paths, cfg.HostPath)
	}
	if len(paths) == 0 {
		return nil, nil, nil
	}
	set, err := manifest.Load(ctx, paths...)
	if err != nil {
		return nil, nil, err
	}
	return set.Host, set.Packages, nil
}
