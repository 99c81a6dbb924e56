package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			template, _ := cmd.Flags().GetString("template")
			return c.components.App.Serve(cmd.Context(), template)
		},
	}
	cmd.Flags().StringP("template", "t", "", "Runtime template to bind on startup")
	return cmd
}
