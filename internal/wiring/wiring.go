// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/preview/internal/adapters/config"
	_ "go.trai.ch/preview/internal/adapters/logger"
	_ "go.trai.ch/preview/internal/adapters/scene"
	_ "go.trai.ch/preview/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/preview/internal/app"
)
