// Package domain contains the core domain models for script dependency resolution.
package domain

import "strings"

// Script represents one locatable JavaScript resource.
// Identity is the (library, path) pair; instances are immutable value objects.
type Script struct {
	library bool
	path    InternedString
}

// NewScript creates a Script with the given classification and logical path.
// The path is relative to the registered search locations.
func NewScript(library bool, path string) Script {
	return Script{library: library, path: NewInternedString(path)}
}

// NewExplicitScript creates an application Script that names its origin
// directly, bypassing search-path resolution. The origin is encoded into the
// logical path with a ':' separator so Script identity stays a plain
// (library, path) pair.
func NewExplicitScript(origin, path string) Script {
	return Script{path: NewInternedString(origin + ":" + path)}
}

// NewLibraryRef creates a library-owned Script that names its origin
// directly. Used for the well-known bundled references.
func NewLibraryRef(origin, path string) Script {
	return Script{library: true, path: NewInternedString(origin + ":" + path)}
}

// Library reports whether the script is bundled with the resolver rather
// than owned by the consuming application.
func (s Script) Library() bool { return s.library }

// Path returns the logical path. For explicit scripts it is origin-qualified.
func (s Script) Path() string { return s.path.String() }

// Origin splits an origin-qualified path into its origin and relative parts.
// ok is false for plain search-path-relative scripts.
func (s Script) Origin() (origin, rel string, ok bool) {
	p := s.path.String()
	if i := strings.IndexByte(p, ':'); i >= 0 {
		return p[:i], p[i+1:], true
	}
	return "", p, false
}

// Zero reports whether the script is the zero value.
func (s Script) Zero() bool { return s == Script{} }

// Key returns a stable string identity, usable as a cache key.
func (s Script) Key() string {
	if s.library {
		return "lib:" + s.path.String()
	}
	return "app:" + s.path.String()
}

// String implements fmt.Stringer.
func (s Script) String() string { return s.Key() }
