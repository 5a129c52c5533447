// Package settings holds the per-application resolution settings: the
// ordered search locations, the active locator, the cache policy, and the
// well-known shared-library references.
package settings

import (
	"context"
	"sync"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
)

// LibraryOrigin is the origin under which the bundled script libraries are
// mounted on the byte source.
const LibraryOrigin = "stitch"

// baseLibraryPaths are the bundled search locations registered on default
// construction. Registration front-inserts, so the last entry ends up with
// the highest priority among the defaults.
var baseLibraryPaths = []string{
	"",
	"lib/cookies",
	"lib/utils",
	"lib/scrollto",
	"lib/strftime",
}

var _ ports.ResolutionConfig = (*Settings)(nil)

// Settings is the per-application configuration for dependency resolution.
//
// Mutation is expected during application startup, before concurrent
// resolution traffic begins; steady state only reads. A RWMutex keeps a
// late mutation safe without any versioning scheme.
type Settings struct {
	mu        sync.RWMutex
	mode      domain.RuntimeMode
	locator   ports.Locator
	locations []domain.SearchLocation
	cache     domain.CachePolicy
	explicit  bool

	domLibrary   *domain.Script
	uiWidgets    *domain.Script
	uiStylesheet *domain.Script
}

// New creates Settings with the bundled baseline: the default library search
// locations and the default well-known shared-library references.
func New(mode domain.RuntimeMode, locator ports.Locator) (*Settings, error) {
	if locator == nil {
		return nil, domain.ErrNilLocator
	}

	s := &Settings{mode: mode, locator: locator}
	for _, base := range baseLibraryPaths {
		s.AddLibraryPath(LibraryOrigin, base)
	}

	dom := domain.NewLibraryRef(LibraryOrigin, "lib/jquery/jquery.min.js")
	widgets := domain.NewLibraryRef(LibraryOrigin, "lib/jquery-ui/jquery-ui.min.js")
	css := domain.NewLibraryRef(LibraryOrigin, "lib/jquery-ui/themes/base/jquery-ui.css")
	s.domLibrary = &dom
	s.uiWidgets = &widgets
	s.uiStylesheet = &css

	return s, nil
}

// FromConfig builds Settings for a loaded project configuration: baseline
// defaults first, then the project's locations, cache override, and
// well-known reference overrides on top.
func FromConfig(cfg *domain.ProjectConfig, locator ports.Locator) (*Settings, error) {
	s, err := New(cfg.Mode, locator)
	if err != nil {
		return nil, err
	}

	// AddLocation front-inserts, so walk the file-ordered list backwards to
	// keep the first listed location at the highest priority.
	for i := len(cfg.Locations) - 1; i >= 0; i-- {
		s.AddLocation(cfg.Locations[i])
	}
	if cfg.Cache != nil {
		s.SetCachePolicy(*cfg.Cache)
	}
	if cfg.DOMLibrary != nil {
		s.SetDOMLibrary(cfg.DOMLibrary.Script)
	}
	if cfg.UIWidgets != nil {
		s.SetUIWidgets(cfg.UIWidgets.Script)
	}
	if cfg.UIStylesheet != nil {
		s.SetUIStylesheet(cfg.UIStylesheet.Script)
	}

	return s, nil
}

// Mode returns the runtime mode the settings were created with.
func (s *Settings) Mode() domain.RuntimeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Locator returns the active locator implementation.
func (s *Settings) Locator() ports.Locator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locator
}

// SetLocator swaps the locator implementation. A nil locator is rejected at
// configuration time rather than surfacing later during resolution.
func (s *Settings) SetLocator(l ports.Locator) error {
	if l == nil {
		return domain.ErrNilLocator
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locator = l
	return nil
}

// Locations returns a copy of the ordered search locations, highest
// priority first.
func (s *Settings) Locations() []domain.SearchLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SearchLocation, len(s.locations))
	copy(out, s.locations)
	return out
}

// AddLocation front-inserts a search location: the most recently added
// location wins bare-name collisions. Application locations are added after
// the bundled defaults and therefore shadow them.
func (s *Settings) AddLocation(loc domain.SearchLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = append([]domain.SearchLocation{loc}, s.locations...)
}

// AddLibraryPath front-inserts a library-classified search location.
func (s *Settings) AddLibraryPath(origin, base string) {
	s.AddLocation(domain.SearchLocation{Origin: origin, BasePath: base, Library: true})
}

// CachePolicy returns the explicit override if one was set, otherwise the
// mode-derived default. It is evaluated on every call, so the derivation is
// never baked in at construction time.
func (s *Settings) CachePolicy() domain.CachePolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.explicit {
		return s.cache
	}
	return domain.DefaultCachePolicy(s.mode)
}

// SetCachePolicy sets an explicit cache policy override.
func (s *Settings) SetCachePolicy(p domain.CachePolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = p
	s.explicit = true
}

// DOMLibrary returns the well-known DOM utility library reference, or nil
// when the resolver is not managing it.
func (s *Settings) DOMLibrary() *domain.Script {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.domLibrary
}

// SetDOMLibrary overrides the DOM utility library reference. Passing nil
// tells the resolver not to manage this resource at all.
func (s *Settings) SetDOMLibrary(script *domain.Script) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domLibrary = script
}

// UIWidgets returns the well-known UI widget library reference, or nil when
// the resolver is not managing it.
func (s *Settings) UIWidgets() *domain.Script {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uiWidgets
}

// SetUIWidgets overrides the UI widget library reference; nil disables it.
func (s *Settings) SetUIWidgets(script *domain.Script) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uiWidgets = script
}

// UIStylesheet returns the companion stylesheet reference, or nil when the
// resolver is not managing it.
func (s *Settings) UIStylesheet() *domain.Script {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uiStylesheet
}

// SetUIStylesheet overrides the companion stylesheet reference; nil disables it.
func (s *Settings) SetUIStylesheet(script *domain.Script) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uiStylesheet = script
}

// Resolve runs the configured locator for the given root against this
// settings instance.
func (s *Settings) Resolve(ctx context.Context, root domain.Script) ([]domain.Script, error) {
	return s.Locator().Resolve(ctx, root, s)
}
