package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/assets"
	"go.trai.ch/stitch/internal/settings"
)

// NodeID is the unique identifier for the byte source Graft node. The node
// carries the concrete mount table so the application layer can attach
// project directories after configuration is loaded.
const NodeID graft.ID = "adapter.source"

func init() {
	graft.Register(graft.Node[*Mounts]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Mounts, error) {
			mounts := NewMounts()
			mounts.Mount(settings.LibraryOrigin, assets.Bundled)
			return mounts, nil
		},
	})
}
