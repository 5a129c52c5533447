package domain

// ScriptOverride replaces one of the well-known shared-library references.
// A nil Script means the resource is not managed by the resolver at all.
type ScriptOverride struct {
	Script *Script
}

// ProjectConfig is the parsed configuration surface consumed by the
// resolution settings. It is a pure data transfer object; the application
// layer turns it into live settings and byte-source mounts.
type ProjectConfig struct {
	// Mode is the host runtime mode driving the default cache policy.
	Mode RuntimeMode

	// Origins maps origin names to directory roots on the local filesystem.
	Origins map[string]string

	// Locations are application search locations, in file order. They are
	// registered after the bundled defaults and therefore take priority on
	// bare-name collisions.
	Locations []SearchLocation

	// Cache, when non-nil, overrides the mode-derived cache policy.
	Cache *CachePolicy

	// Well-known shared-library overrides; nil keeps the bundled default.
	DOMLibrary   *ScriptOverride
	UIWidgets    *ScriptOverride
	UIStylesheet *ScriptOverride
}
