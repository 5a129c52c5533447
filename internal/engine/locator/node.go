package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stitch/internal/adapters/source" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the locator Graft node.
const NodeID graft.ID = "engine.locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			source.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Locator, error) {
			src, err := graft.Dep[*source.Mounts](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewDefault(src, log), nil
		},
	})
}
