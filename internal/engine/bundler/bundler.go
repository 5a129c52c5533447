// Package bundler emits resolved script sequences as a single concatenated
// artifact with a content fingerprint for cache busting.
package bundler

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/locator"
)

// Concat joins resolved scripts in sequence order. Because the input order
// already places every dependency before its dependents, the output executes
// correctly when evaluated top to bottom.
type Concat struct {
	source ports.ByteSource
}

// NewConcat creates a Concat bundler reading through the given byte source.
func NewConcat(source ports.ByteSource) *Concat {
	return &Concat{source: source}
}

// Bundle reads every script in the sequence and concatenates the sources.
// The fingerprint is an xxhash of the emitted bytes, so it changes exactly
// when the bundle content changes.
func (b *Concat) Bundle(ctx context.Context, scripts []domain.Script, locations []domain.SearchLocation) (*domain.Bundle, error) {
	var buf bytes.Buffer

	for _, script := range scripts {
		content, err := locator.ReadScript(ctx, b.source, script, locations)
		if err != nil {
			return nil, err
		}

		buf.Write(content)
		if len(content) > 0 && content[len(content)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}

	data := buf.Bytes()

	out := make([]domain.Script, len(scripts))
	copy(out, scripts)

	return &domain.Bundle{
		Scripts:     out,
		Data:        data,
		Fingerprint: fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}, nil
}
