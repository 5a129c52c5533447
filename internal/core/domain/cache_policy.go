package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// RuntimeMode is the host-declared runtime configuration type.
type RuntimeMode string

const (
	// ModeDevelopment disables traversal caching so edited sources are
	// reflected immediately.
	ModeDevelopment RuntimeMode = "development"
	// ModeDeployment caches traversal results for the remainder of the
	// process lifetime.
	ModeDeployment RuntimeMode = "deployment"
)

// ParseRuntimeMode validates and converts a mode string.
func ParseRuntimeMode(s string) (RuntimeMode, error) {
	switch RuntimeMode(s) {
	case ModeDevelopment, ModeDeployment:
		return RuntimeMode(s), nil
	}
	return "", zerr.With(ErrInvalidRuntimeMode, "mode", s)
}

type cacheKind int

const (
	cacheDisabled cacheKind = iota
	cacheIndefinite
	cacheTTL
)

// CachePolicy controls how long flattened traversal results may be served
// from cache. The zero value is the disabled policy.
type CachePolicy struct {
	kind cacheKind
	ttl  time.Duration
}

// CacheDisabled never stores results; every resolution recomputes.
func CacheDisabled() CachePolicy {
	return CachePolicy{kind: cacheDisabled}
}

// CacheIndefinite stores results for the remainder of the process lifetime.
func CacheIndefinite() CachePolicy {
	return CachePolicy{kind: cacheIndefinite}
}

// CacheFor stores results for the given duration. A non-positive duration is
// equivalent to CacheDisabled.
func CacheFor(ttl time.Duration) CachePolicy {
	if ttl <= 0 {
		return CacheDisabled()
	}
	return CachePolicy{kind: cacheTTL, ttl: ttl}
}

// DefaultCachePolicy derives the policy from the runtime mode: disabled in
// development, indefinite in deployment.
func DefaultCachePolicy(mode RuntimeMode) CachePolicy {
	if mode == ModeDeployment {
		return CacheIndefinite()
	}
	return CacheDisabled()
}

// Disabled reports whether results must never be stored.
func (p CachePolicy) Disabled() bool { return p.kind == cacheDisabled }

// Indefinite reports whether results never expire within the process lifetime.
func (p CachePolicy) Indefinite() bool { return p.kind == cacheIndefinite }

// TTL returns the explicit duration; zero unless built with CacheFor.
func (p CachePolicy) TTL() time.Duration { return p.ttl }

// Fresh reports whether an entry computed at the given time may still be
// served at now. Entries expire strictly once the TTL has elapsed.
func (p CachePolicy) Fresh(computedAt, now time.Time) bool {
	switch p.kind {
	case cacheIndefinite:
		return true
	case cacheTTL:
		return now.Sub(computedAt) < p.ttl
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p CachePolicy) String() string {
	switch p.kind {
	case cacheIndefinite:
		return "indefinite"
	case cacheTTL:
		return p.ttl.String()
	default:
		return "disabled"
	}
}
