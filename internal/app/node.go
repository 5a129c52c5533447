package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/stitch/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/stitch/internal/adapters/source" //nolint:depguard // Wired in app layer
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/bundler"
	"go.trai.ch/stitch/internal/engine/locator"
	"go.trai.ch/stitch/internal/settings"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			locator.NodeID,
			bundler.NodeID,
			source.NodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	loc, err := graft.Dep[ports.Locator](ctx)
	if err != nil {
		return nil, err
	}

	concat, err := graft.Dep[*bundler.Concat](ctx)
	if err != nil {
		return nil, err
	}

	mounts, err := graft.Dep[*source.Mounts](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*settings.Registry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, loc, concat, mounts, log, registry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*settings.Registry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      a,
		Logger:   log,
		Registry: registry,
	}, nil
}
