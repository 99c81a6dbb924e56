// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/runviz/internal/adapters/checkpoint"
	_ "go.trai.ch/runviz/internal/adapters/config"
	_ "go.trai.ch/runviz/internal/adapters/fs"
	_ "go.trai.ch/runviz/internal/adapters/httpapi"
	_ "go.trai.ch/runviz/internal/adapters/logger"
	_ "go.trai.ch/runviz/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/runviz/internal/app"
	_ "go.trai.ch/runviz/internal/engine/runtime"
)
