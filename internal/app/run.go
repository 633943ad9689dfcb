package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/locationmanager/internal/configsync"
	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/fsutil"
	"github.com/vk/locationmanager/internal/manager"
	"github.com/vk/locationmanager/internal/manifest"
	"github.com/vk/locationmanager/internal/simhost"
	"gopkg.in/yaml.v3"
)

// Report is what a run writes to the output.
type Report struct {
	Packages []PackageReport `yaml:"packages"`
	Warnings []string        `yaml:"warnings,omitempty"`
	Host     *simhost.Report `yaml:"host"`
}

// PackageReport lists what one package registered.
type PackageReport struct {
	GUID      string   `yaml:"guid"`
	Name      string   `yaml:"name"`
	Version   string   `yaml:"version,omitempty"`
	Locations []string `yaml:"locations,omitempty"`
	Dungeons  []string `yaml:"dungeons,omitempty"`
	Grafted   []string `yaml:"grafted,omitempty"`
}

// Run installs every package into a fresh simulated host, runs the host and
// writes the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	seen := make(map[string]bool, len(a.packages))
	for _, pkg := range a.packages {
		guid := pkg.Info().GUID
		if seen[guid] {
			return fmt.Errorf("%w: %s", manifest.ErrDuplicatePackage, guid)
		}
		seen[guid] = true
	}

	h, err := simhost.New(a.hostCfg)
	if err != nil {
		return err
	}
	if err := a.loadSettings(h); err != nil {
		return err
	}

	managers := make([]*manager.Manager, 0, len(a.packages))
	for i, pkg := range a.packages {
		opts := []manager.Option{manager.WithLogger(a.logger)}
		if a.config.Seed != 0 {
			opts = append(opts, manager.WithRand(rand.New(rand.NewPCG(a.config.Seed, uint64(i)))))
		}
		if client := a.connectSync(ctx, pkg); client != nil {
			defer client.Close()
			opts = append(opts, manager.WithSync(client))
		}
		m, err := manager.Install(ctx, h, pkg, opts...)
		if err != nil {
			return fmt.Errorf("failed to install package: %w", err)
		}
		managers = append(managers, m)
	}
	if len(managers) == 0 {
		a.logger.Warn("No packages found, the host runs with its own content only.")
	}
	a.logger.Info("Packages installed.", "count", len(managers))

	hostReport, err := h.Run(ctx)
	if err != nil {
		return fmt.Errorf("host run failed: %w", err)
	}

	if a.config.ReportFormat == ReportNone {
		a.logger.Debug("App.Run method finished.")
		return nil
	}
	report := Report{Host: hostReport}
	for _, m := range managers {
		info := m.Info()
		pr := PackageReport{
			GUID:      info.GUID,
			Name:      info.Name,
			Version:   info.Version,
			Locations: m.Catalog.Locations.Names(),
			Dungeons:  m.Catalog.Dungeons.Names(),
			Grafted:   m.Assets.Grafted(),
		}
		report.Packages = append(report.Packages, pr)
	}
	for _, w := range a.Warnings() {
		report.Warnings = append(report.Warnings, formatWarning(w.Text, w.Attrs))
	}

	enc := yaml.NewEncoder(a.outW)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// loadSettings applies every override file found under SettingsPath. A file
// named after a package GUID applies to that package only, any other file
// applies to all packages.
func (a *App) loadSettings(h *simhost.Host) error {
	if a.config.SettingsPath == "" {
		return nil
	}
	files, err := fsutil.CollectFiles(".hcl", a.config.SettingsPath)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		a.logger.Warn("No settings files found.", "path", a.config.SettingsPath)
		return nil
	}
	for _, file := range files {
		target := strings.TrimSuffix(filepath.Base(file), ".hcl")
		applied := 0
		for _, pkg := range a.packages {
			info := pkg.Info()
			if !a.hasPackage(target) || info.GUID == target {
				if err := h.Settings(info).LoadFile(file); err != nil {
					return err
				}
				applied++
			}
		}
		a.logger.Debug("Loaded settings overrides.", "file", file, "packages", applied)
	}
	return nil
}

func (a *App) hasPackage(guid string) bool {
	for _, pkg := range a.packages {
		if pkg.Info().GUID == guid {
			return true
		}
	}
	return false
}

// connectSync returns a connected client for pkg, or nil when sync is off
// or the server cannot be reached.
func (a *App) connectSync(ctx context.Context, pkg manager.Package) *configsync.Client {
	if a.config.SyncURL == "" {
		return nil
	}
	client := configsync.New(pkg.Info())
	if err := client.Connect(ctx, a.config.SyncURL); err != nil {
		a.logger.Warn("Config sync not started.", "package", pkg.Info().GUID, "error", err)
		return nil
	}
	return client
}

func formatWarning(text string, attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(text)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, attrs[k])
	}
	return b.String()
}
