package ports

import (
	"context"

	"go.trai.ch/stitch/internal/core/domain"
)

// ResolutionConfig is the read surface a locator needs from the resolution
// settings: the ordered search locations and the active cache policy. It is
// satisfied by *settings.Settings.
type ResolutionConfig interface {
	// Locations returns the ordered search locations, highest priority first.
	Locations() []domain.SearchLocation

	// CachePolicy returns the policy in effect at the time of the call.
	CachePolicy() domain.CachePolicy
}

// Locator resolves a root script into an ordered, deduplicated sequence of
// scripts with every dependency strictly before its dependents.
//
// Resolve returns either the complete sequence or an error
// (domain.ErrUnresolvedDependency, domain.ErrCycleDetected,
// domain.ErrMalformedDirective); it never returns a partial list.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	Resolve(ctx context.Context, root domain.Script, cfg ResolutionConfig) ([]domain.Script, error)
}
