package domain

import "path"

// SearchLocation is one (origin, base-path) pair where script bytes may be
// found. Locations are held in an ordered list; the front of the list has
// the highest priority.
type SearchLocation struct {
	// Origin is an opaque handle identifying a mounted byte-source root.
	Origin string
	// BasePath is the prefix under the origin; empty means the origin root.
	BasePath string
	// Library marks locations bundled with the resolver. Scripts resolved
	// through a library location are classified as library-owned.
	Library bool
}

// Join resolves a search-path-relative script path against the location.
func (l SearchLocation) Join(rel string) string {
	if l.BasePath == "" {
		return rel
	}
	return path.Join(l.BasePath, rel)
}
