package domain

// Reference is a raw dependency reference produced by directive parsing,
// before search-path resolution.
type Reference struct {
	name   string
	origin string
	path   string
}

// BareReference references a script by logical name, to be resolved against
// the ordered search locations.
func BareReference(name string) Reference {
	return Reference{name: name}
}

// ExplicitReference names both an origin and a path, bypassing the search
// path entirely.
func ExplicitReference(origin, path string) Reference {
	return Reference{origin: origin, path: path}
}

// Explicit reports whether the reference names its origin directly.
func (r Reference) Explicit() bool { return r.origin != "" }

// Name returns the bare logical name. Empty for explicit references.
func (r Reference) Name() string { return r.name }

// OriginPath returns the origin and path of an explicit reference.
func (r Reference) OriginPath() (string, string) { return r.origin, r.path }

// String implements fmt.Stringer, rendering the directive argument form.
func (r Reference) String() string {
	if r.Explicit() {
		return "<" + r.origin + ":" + r.path + ">"
	}
	return `"` + r.name + `"`
}
