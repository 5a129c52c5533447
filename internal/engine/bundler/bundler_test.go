package bundler_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/source"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/engine/bundler"
)

func newSource(files map[string]string) *source.Mounts {
	fsys := fstest.MapFS{}
	for path, content := range files {
		fsys[path] = &fstest.MapFile{Data: []byte(content)}
	}
	mounts := source.NewMounts()
	mounts.Mount("app", fsys)
	return mounts
}

func appLocations() []domain.SearchLocation {
	return []domain.SearchLocation{{Origin: "app"}}
}

func TestBundle_Concatenates(t *testing.T) {
	src := newSource(map[string]string{
		"utils.js": "var utils = {};\n",
		"app.js":   "var app = {};\n",
	})
	scripts := []domain.Script{
		domain.NewScript(false, "utils.js"),
		domain.NewScript(false, "app.js"),
	}

	b, err := bundler.NewConcat(src).Bundle(context.Background(), scripts, appLocations())
	require.NoError(t, err)

	assert.Equal(t, "var utils = {};\nvar app = {};\n", string(b.Data))
	assert.Equal(t, scripts, b.Scripts)
	assert.Len(t, b.Fingerprint, 16)
}

func TestBundle_InsertsNewlineBetweenScripts(t *testing.T) {
	src := newSource(map[string]string{
		"a.js": "var a = 1;", // no trailing newline
		"b.js": "var b = 2;\n",
	})
	scripts := []domain.Script{
		domain.NewScript(false, "a.js"),
		domain.NewScript(false, "b.js"),
	}

	b, err := bundler.NewConcat(src).Bundle(context.Background(), scripts, appLocations())
	require.NoError(t, err)
	assert.Equal(t, "var a = 1;\nvar b = 2;\n", string(b.Data))
}

func TestBundle_FingerprintDeterministic(t *testing.T) {
	src := newSource(map[string]string{"a.js": "var a = 1;\n"})
	scripts := []domain.Script{domain.NewScript(false, "a.js")}
	concat := bundler.NewConcat(src)

	first, err := concat.Bundle(context.Background(), scripts, appLocations())
	require.NoError(t, err)
	second, err := concat.Bundle(context.Background(), scripts, appLocations())
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint)
}

func TestBundle_FingerprintTracksContent(t *testing.T) {
	scripts := []domain.Script{domain.NewScript(false, "a.js")}

	first, err := bundler.NewConcat(newSource(map[string]string{"a.js": "var a = 1;\n"})).
		Bundle(context.Background(), scripts, appLocations())
	require.NoError(t, err)

	second, err := bundler.NewConcat(newSource(map[string]string{"a.js": "var a = 2;\n"})).
		Bundle(context.Background(), scripts, appLocations())
	require.NoError(t, err)

	assert.NotEqual(t, first.Fingerprint, second.Fingerprint)
}

func TestBundle_ExplicitScript(t *testing.T) {
	fsys := fstest.MapFS{"lib/d3.js": &fstest.MapFile{Data: []byte("var d3 = {};\n")}}
	mounts := source.NewMounts()
	mounts.Mount("vendor", fsys)

	scripts := []domain.Script{domain.NewExplicitScript("vendor", "lib/d3.js")}
	b, err := bundler.NewConcat(mounts).Bundle(context.Background(), scripts, nil)
	require.NoError(t, err)
	assert.Equal(t, "var d3 = {};\n", string(b.Data))
}

func TestBundle_MissingScript(t *testing.T) {
	src := newSource(map[string]string{})
	scripts := []domain.Script{domain.NewScript(false, "missing.js")}

	_, err := bundler.NewConcat(src).Bundle(context.Background(), scripts, appLocations())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnresolvedDependency)
}

func TestBundle_Empty(t *testing.T) {
	src := newSource(map[string]string{})

	b, err := bundler.NewConcat(src).Bundle(context.Background(), nil, appLocations())
	require.NoError(t, err)
	assert.Empty(t, b.Data)
	assert.Len(t, b.Fingerprint, 16)
}
