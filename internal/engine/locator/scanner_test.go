package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/core/domain"
)

func TestScanDirectives_Forms(t *testing.T) {
	src := []byte(`// Application entry point.
//= require "utils"
//= require "widgets/picker.js"
//= require <vendor:lib/d3.js>

var app = {};
`)

	refs, err := scanDirectives(src)
	require.NoError(t, err)
	require.Len(t, refs, 3)

	// Bare names get the .js extension defaulted; file order is preserved.
	assert.Equal(t, domain.BareReference("utils.js"), refs[0])
	assert.Equal(t, domain.BareReference("widgets/picker.js"), refs[1])
	assert.Equal(t, domain.ExplicitReference("vendor", "lib/d3.js"), refs[2])
}

func TestScanDirectives_HeaderBoundary(t *testing.T) {
	src := []byte(`//= require "first"

// A plain comment keeps the header open.
//= require "second"
var code = 1;
//= require "ignored"
`)

	refs, err := scanDirectives(src)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "first.js", refs[0].Name())
	assert.Equal(t, "second.js", refs[1].Name())
}

func TestScanDirectives_IndentedDirective(t *testing.T) {
	refs, err := scanDirectives([]byte("  //= require \"utils\"\n"))
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "utils.js", refs[0].Name())
}

func TestScanDirectives_NoDirectives(t *testing.T) {
	refs, err := scanDirectives([]byte("var app = {};\n"))
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestScanDirectives_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "unknown verb", src: "//= import \"utils\"\n"},
		{name: "missing argument", src: "//= require\n"},
		{name: "unquoted argument", src: "//= require utils\n"},
		{name: "unterminated quote", src: "//= require \"utils\n"},
		{name: "explicit without origin", src: "//= require <lib/d3.js>\n"},
		{name: "explicit with empty path", src: "//= require <vendor:>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanDirectives([]byte(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedDirective)
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "utils.js", normalizeName("utils"))
	assert.Equal(t, "utils.js", normalizeName("utils.js"))
	assert.Equal(t, "theme.css", normalizeName("theme.css"))
	assert.Equal(t, "nested/name.js", normalizeName("nested/name"))
}
