// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stitch/internal/adapters/config"
	_ "go.trai.ch/stitch/internal/adapters/logger"
	_ "go.trai.ch/stitch/internal/adapters/source"
	// Register app and engine nodes.
	_ "go.trai.ch/stitch/internal/app"
	_ "go.trai.ch/stitch/internal/engine/bundler"
	_ "go.trai.ch/stitch/internal/engine/locator"
	_ "go.trai.ch/stitch/internal/settings"
)
