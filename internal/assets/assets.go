// Package assets embeds the JavaScript libraries that ship with stitch.
// They are served under the "stitch" origin and sit at the back of every
// search path so project files can shadow them.
package assets

import "embed"

// Bundled holds the built-in library scripts.
//
//go:embed lib
var Bundled embed.FS
