// Package app implements the application layer for stitch.
package app

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/stitch/internal/adapters/source"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/bundler"
	"go.trai.ch/stitch/internal/settings"
	"go.trai.ch/zerr"
)

// App represents the main application logic: it turns a configuration file
// into live resolution settings and runs resolutions and bundles against
// them. Settings are created lazily, once per configuration file.
type App struct {
	loader   ports.ConfigLoader
	locator  ports.Locator
	bundler  *bundler.Concat
	mounts   *source.Mounts
	log      ports.Logger
	registry *settings.Registry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locator ports.Locator,
	concat *bundler.Concat,
	mounts *source.Mounts,
	log ports.Logger,
	registry *settings.Registry,
) *App {
	return &App{
		loader:   loader,
		locator:  locator,
		bundler:  concat,
		mounts:   mounts,
		log:      log,
		registry: registry,
	}
}

// SettingsFor returns the resolution settings for the given configuration
// file, loading the file and mounting its origins on first access.
func (a *App) SettingsFor(configPath string) (*settings.Settings, error) {
	return a.registry.For(configPath, func() (*settings.Settings, error) {
		cfg, err := a.loader.Load(configPath)
		if err != nil {
			return nil, err
		}

		// Relative origin directories are anchored at the configuration
		// file's directory, not the process working directory.
		base := filepath.Dir(configPath)
		for origin, dir := range cfg.Origins {
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(base, dir)
			}
			a.mounts.MountDir(origin, dir)
		}

		s, err := settings.FromConfig(cfg, a.locator)
		if err != nil {
			return nil, err
		}

		a.log.Info(fmt.Sprintf("initialized settings for %s (mode %s, cache %s)",
			configPath, s.Mode(), s.CachePolicy()))
		return s, nil
	})
}

// Resolve flattens the dependency graph of the named script into an ordered
// sequence, every dependency strictly before its dependents.
func (a *App) Resolve(ctx context.Context, configPath, name string) ([]domain.Script, error) {
	s, err := a.SettingsFor(configPath)
	if err != nil {
		return nil, err
	}

	root, err := parseScriptArg(name)
	if err != nil {
		return nil, err
	}

	return s.Resolve(ctx, root)
}

// Bundle resolves the named script and emits the concatenated, fingerprinted
// bundle of its dependency sequence.
func (a *App) Bundle(ctx context.Context, configPath, name string) (*domain.Bundle, error) {
	s, err := a.SettingsFor(configPath)
	if err != nil {
		return nil, err
	}

	root, err := parseScriptArg(name)
	if err != nil {
		return nil, err
	}

	scripts, err := s.Resolve(ctx, root)
	if err != nil {
		return nil, err
	}

	b, err := a.bundler.Bundle(ctx, scripts, s.Locations())
	if err != nil {
		return nil, zerr.With(err, "root", root.Path())
	}
	return b, nil
}

// parseScriptArg interprets a command-line script argument. "origin:path"
// addresses an origin directly; anything else is a search-relative name with
// the same .js defaulting directives get.
func parseScriptArg(arg string) (domain.Script, error) {
	if arg == "" {
		return domain.Script{}, domain.ErrEmptyScriptPath
	}

	if origin, rel, ok := strings.Cut(arg, ":"); ok {
		if origin == "" || rel == "" {
			return domain.Script{}, zerr.With(domain.ErrEmptyScriptPath, "argument", arg)
		}
		return domain.NewExplicitScript(origin, rel), nil
	}

	if path.Ext(arg) == "" {
		arg += ".js"
	}
	return domain.NewScript(false, arg), nil
}
