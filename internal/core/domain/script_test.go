package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stitch/internal/core/domain"
)

func TestScript_Identity(t *testing.T) {
	a := domain.NewScript(false, "app.js")
	b := domain.NewScript(false, "app.js")
	lib := domain.NewScript(true, "app.js")

	// Same classification and path compare equal; classification is part of identity.
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, lib)
}

func TestScript_Key(t *testing.T) {
	assert.Equal(t, "app:app.js", domain.NewScript(false, "app.js").Key())
	assert.Equal(t, "lib:utils.js", domain.NewScript(true, "utils.js").Key())
}

func TestScript_Origin(t *testing.T) {
	tests := []struct {
		name       string
		script     domain.Script
		wantOrigin string
		wantRel    string
		wantOK     bool
	}{
		{
			name:    "search-relative script has no origin",
			script:  domain.NewScript(false, "app.js"),
			wantRel: "app.js",
		},
		{
			name:       "explicit script splits at the separator",
			script:     domain.NewExplicitScript("vendor", "lib/d3.js"),
			wantOrigin: "vendor",
			wantRel:    "lib/d3.js",
			wantOK:     true,
		},
		{
			name:       "library ref is origin-qualified",
			script:     domain.NewLibraryRef("stitch", "lib/jquery/jquery.min.js"),
			wantOrigin: "stitch",
			wantRel:    "lib/jquery/jquery.min.js",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin, rel, ok := tt.script.Origin()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOrigin, origin)
			assert.Equal(t, tt.wantRel, rel)
		})
	}
}

func TestScript_Classification(t *testing.T) {
	assert.False(t, domain.NewExplicitScript("vendor", "x.js").Library())
	assert.True(t, domain.NewLibraryRef("stitch", "x.js").Library())
}

func TestScript_Zero(t *testing.T) {
	var zero domain.Script
	assert.True(t, zero.Zero())
	assert.False(t, domain.NewScript(false, "a.js").Zero())
}

func TestReference_String(t *testing.T) {
	assert.Equal(t, `"utils.js"`, domain.BareReference("utils.js").String())
	assert.Equal(t, "<vendor:lib/d3.js>", domain.ExplicitReference("vendor", "lib/d3.js").String())
}

func TestSearchLocation_Join(t *testing.T) {
	root := domain.SearchLocation{Origin: "app"}
	nested := domain.SearchLocation{Origin: "stitch", BasePath: "lib/cookies"}

	assert.Equal(t, "app.js", root.Join("app.js"))
	assert.Equal(t, "lib/cookies/cookies.js", nested.Join("cookies.js"))
}
