// Package config provides the stitch.yaml configuration loader.
package config

import (
	"os"
	"strings"
	"time"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/settings"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file name looked up when the caller
// does not name one.
const DefaultFilename = "stitch.yaml"

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct {
	log ports.Logger
}

// NewLoader creates a FileLoader.
func NewLoader(log ports.Logger) *FileLoader {
	return &FileLoader{log: log}
}

// Load reads and validates the configuration file at the given path.
func (l *FileLoader) Load(path string) (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Stitchfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := build(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.log.Info("loaded configuration from " + path)
	return cfg, nil
}

func build(file *Stitchfile) (*domain.ProjectConfig, error) {
	modeStr := file.Mode
	if modeStr == "" {
		modeStr = string(domain.ModeDevelopment)
	}
	mode, err := domain.ParseRuntimeMode(modeStr)
	if err != nil {
		return nil, err
	}

	cfg := &domain.ProjectConfig{
		Mode:    mode,
		Origins: file.Origins,
	}

	for _, p := range file.Paths {
		if err := validateOrigin(p.Origin, file.Origins); err != nil {
			return nil, err
		}
		cfg.Locations = append(cfg.Locations, domain.SearchLocation{
			Origin:   p.Origin,
			BasePath: p.Base,
			Library:  p.Library,
		})
	}

	if file.Cache != "" {
		policy, err := parseCachePolicy(file.Cache)
		if err != nil {
			return nil, err
		}
		cfg.Cache = &policy
	}

	if cfg.DOMLibrary, err = parseOverride(file.Libraries.DOM, file.Origins); err != nil {
		return nil, err
	}
	if cfg.UIWidgets, err = parseOverride(file.Libraries.Widgets, file.Origins); err != nil {
		return nil, err
	}
	if cfg.UIStylesheet, err = parseOverride(file.Libraries.Stylesheet, file.Origins); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateOrigin rejects references to origins the file never declares. The
// bundled library origin is always available.
func validateOrigin(origin string, declared map[string]string) error {
	if origin == settings.LibraryOrigin {
		return nil
	}
	if _, ok := declared[origin]; !ok {
		return zerr.With(domain.ErrUnknownOrigin, "origin", origin)
	}
	return nil
}

// parseCachePolicy accepts "disabled", "indefinite", or a Go duration string.
func parseCachePolicy(s string) (domain.CachePolicy, error) {
	switch s {
	case "disabled":
		return domain.CacheDisabled(), nil
	case "indefinite":
		return domain.CacheIndefinite(), nil
	}

	ttl, err := time.ParseDuration(s)
	if err != nil {
		return domain.CachePolicy{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidCachePolicy.Error()), "cache", s)
	}
	return domain.CacheFor(ttl), nil
}

// parseOverride turns a library override value into a ScriptOverride. An
// empty value keeps the bundled default; "none" unmanages the resource.
func parseOverride(value string, declared map[string]string) (*domain.ScriptOverride, error) {
	if value == "" {
		return nil, nil
	}
	if value == "none" {
		return &domain.ScriptOverride{}, nil
	}

	origin, rel, ok := strings.Cut(value, ":")
	if !ok || origin == "" || rel == "" {
		return nil, zerr.With(domain.ErrConfigParseFailed, "library", value)
	}
	if err := validateOrigin(origin, declared); err != nil {
		return nil, err
	}

	script := domain.NewLibraryRef(origin, rel)
	return &domain.ScriptOverride{Script: &script}, nil
}
