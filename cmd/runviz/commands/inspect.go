package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/runviz/internal/adapters/checkpoint"
	"go.trai.ch/runviz/internal/adapters/fs"
	"go.trai.ch/runviz/internal/adapters/telemetry/progrock"
	"go.trai.ch/runviz/internal/engine/runtime"
	"go.trai.ch/zerr"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <template>",
		Short: "Load one runtime template and print a summary of it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.inspect(cmd, args[0])
		},
	}
}

// inspect loads the named template outside the server, with a
// recording tracer so each pipeline step is captured, and prints what
// was restored.
func (c *CLI) inspect(cmd *cobra.Command, template string) error {
	cfg := c.components.Config

	rec := progrock.New()
	defer func() { _ = rec.Close() }()

	rt := runtime.New(
		checkpoint.NewOpener(),
		fs.NewFingerprinter(),
		c.components.Logger,
		rec,
		runtime.Options{
			LogsDir:       cfg.LogsDir,
			TemplateLease: cfg.Leases.Template(),
			ReloadLease:   cfg.Leases.Reload(),
		},
	)

	switched, err := rt.EnsureTemplate(cmd.Context(), template)
	if err != nil {
		return zerr.Wrap(err, "failed to load template")
	}
	if !switched {
		return zerr.With(zerr.New("template was not loaded"), "template", template)
	}

	ds := rt.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "template:      %s\n", ds.TemplateName)
	fmt.Fprintf(out, "path:          %s\n", ds.TemplatePath)
	fmt.Fprintf(out, "tasks:         %d\n", len(ds.Tasks))
	fmt.Fprintf(out, "workers:       %d\n", len(ds.Workers))
	fmt.Fprintf(out, "files:         %d\n", len(ds.Files))
	fmt.Fprintf(out, "subgraphs:     %d\n", len(ds.Subgraphs))
	fmt.Fprintf(out, "stat rows:     %d\n", len(ds.Stats))
	fmt.Fprintf(out, "time window:   %.2fs\n", ds.MaxTime-ds.MinTime)
	fmt.Fprintf(out, "backing files: %d\n", len(ds.BackingFiles))
	fmt.Fprintf(out, "fingerprint:   %s\n", ds.Fingerprint)
	return nil
}
