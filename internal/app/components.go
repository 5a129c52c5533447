package app

import (
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/settings"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Registry *settings.Registry
}
