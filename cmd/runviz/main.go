// Package main is the entry point for the runviz server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/runviz/cmd/runviz/commands"
	"go.trai.ch/runviz/internal/adapters/config"
	"go.trai.ch/runviz/internal/app"
	_ "go.trai.ch/runviz/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Config path must be known before the dependency graph runs
	if path := commands.ConfigPathFromArgs(os.Args[1:]); path != "" {
		config.SetPath(path)
	}

	// 2. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 3. Interface - CLI
	cli := commands.New(components)

	// 4. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
