package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound signals that a single search-location probe failed. It never
	// escapes the probe loop; exhausting every location is reported as
	// ErrUnresolvedDependency instead.
	ErrNotFound = zerr.New("resource not found")

	// ErrUnresolvedDependency is returned when no search location can supply a
	// referenced name, or an explicit reference points nowhere.
	ErrUnresolvedDependency = zerr.New("unresolved dependency")

	// ErrCycleDetected is returned when a directive closes a cycle back to a
	// script currently being visited.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrMalformedDirective is returned when a require directive cannot be parsed.
	ErrMalformedDirective = zerr.New("malformed require directive")

	// ErrNilLocator is returned when settings are configured with a nil locator.
	ErrNilLocator = zerr.New("locator must not be nil")

	// ErrUnknownOrigin is returned when a search location or explicit
	// reference names an origin that has not been mounted.
	ErrUnknownOrigin = zerr.New("unknown origin")

	// ErrEmptyScriptPath is returned when a script is declared with an empty path.
	ErrEmptyScriptPath = zerr.New("script path must not be empty")

	// ErrInvalidRuntimeMode is returned when the configured mode is neither
	// development nor deployment.
	ErrInvalidRuntimeMode = zerr.New("invalid runtime mode, expected 'development' or 'deployment'")

	// ErrInvalidCachePolicy is returned when the cache setting is neither a
	// duration nor one of the 'disabled'/'indefinite' sentinels.
	ErrInvalidCachePolicy = zerr.New("invalid cache policy")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
