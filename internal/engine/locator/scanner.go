package locator

import (
	"bufio"
	"bytes"
	"path"
	"strings"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/zerr"
)

// headerOnly stops directive recognition at the first line that is neither
// blank nor a line comment. Directives are a file-header convention;
// anything after real code starts is treated as plain source. Flip this to
// scan whole files if a project keeps directives elsewhere.
const headerOnly = true

// directiveMarker introduces a require directive at the start of a line.
const directiveMarker = "//="

// scanDirectives scans source text for require directives and returns the
// raw dependency references in file order. Two argument forms are accepted:
//
//	//= require "name"           bare name, resolved via the search path
//	//= require <origin:path>    explicit origin and path
func scanDirectives(src []byte) ([]domain.Reference, error) {
	var refs []domain.Reference

	sc := bufio.NewScanner(bytes.NewReader(src))
	// Minified sources routinely exceed the default token size.
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if !strings.HasPrefix(line, directiveMarker) {
			if headerOnly && line != "" && !strings.HasPrefix(line, "//") {
				break
			}
			continue
		}

		ref, err := parseDirective(strings.TrimSpace(strings.TrimPrefix(line, directiveMarker)))
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	if err := sc.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan source")
	}
	return refs, nil
}

func parseDirective(body string) (domain.Reference, error) {
	verb, arg, ok := strings.Cut(body, " ")
	if !ok || verb != "require" {
		return domain.Reference{}, zerr.With(domain.ErrMalformedDirective, "directive", body)
	}
	arg = strings.TrimSpace(arg)

	switch {
	case len(arg) > 2 && arg[0] == '"' && arg[len(arg)-1] == '"':
		return domain.BareReference(normalizeName(arg[1 : len(arg)-1])), nil

	case len(arg) > 2 && arg[0] == '<' && arg[len(arg)-1] == '>':
		origin, rel, ok := strings.Cut(arg[1:len(arg)-1], ":")
		if !ok || origin == "" || rel == "" {
			return domain.Reference{}, zerr.With(domain.ErrMalformedDirective, "argument", arg)
		}
		return domain.ExplicitReference(origin, rel), nil
	}

	return domain.Reference{}, zerr.With(domain.ErrMalformedDirective, "argument", arg)
}

// normalizeName appends the .js extension when the bare name omits it.
func normalizeName(name string) string {
	if path.Ext(name) == "" {
		return name + ".js"
	}
	return name
}
