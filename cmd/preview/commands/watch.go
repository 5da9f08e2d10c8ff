package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/preview/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <graph-file>",
		Short: "Preview the scenes of a graph snapshot and follow its changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, _ := cmd.Flags().GetStringSlice("node")
			interval, _ := cmd.Flags().GetDuration("interval")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			if ci {
				outputMode = "linear"
			}

			return c.app.Watch(cmd.Context(), args[0], app.WatchOptions{
				Nodes:      nodes,
				Interval:   interval,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringSliceP("node", "n", nil, "Node to preview (repeatable, default: every non-source node)")
	cmd.Flags().Duration("interval", 0, "Synchronizer poll interval (default from preview.yaml)")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
