package app

import (
	"go.trai.ch/runviz/internal/adapters/config"
	"go.trai.ch/runviz/internal/adapters/httpapi"
	"go.trai.ch/runviz/internal/core/ports"
	"go.trai.ch/runviz/internal/engine/runtime"
)

// Components bundles the fully wired application objects for the CLI.
type Components struct {
	App     *App
	Runtime *runtime.Runtime
	Server  *httpapi.Server
	Config  *config.Config
	Logger  ports.Logger
}
