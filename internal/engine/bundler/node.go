package bundler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/source" //nolint:depguard // Wired in engine wiring
)

// NodeID is the unique identifier for the bundler Graft node.
const NodeID graft.ID = "engine.bundler"

func init() {
	graft.Register(graft.Node[*Concat]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{source.NodeID},
		Run: func(ctx context.Context) (*Concat, error) {
			src, err := graft.Dep[*source.Mounts](ctx)
			if err != nil {
				return nil, err
			}
			return NewConcat(src), nil
		},
	})
}
