package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/preview/internal/app"
	"go.trai.ch/preview/internal/core/domain"
)

func (c *CLI) newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <graph-file>",
		Short: "Print the scene objects a node resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, _ := cmd.Flags().GetString("node")
			input, _ := cmd.Flags().GetString("input")

			objs, err := c.app.Trace(cmd.Context(), args[0], app.TraceOptions{Node: node, Input: input})
			if err != nil {
				return err
			}
			printObjects(cmd.OutOrStdout(), node, objs)
			return nil
		},
	}
	cmd.Flags().StringP("node", "n", "", "Node to trace from")
	cmd.Flags().StringP("input", "i", "", "Restrict the trace to one input slot")
	_ = cmd.MarkFlagRequired("node")
	return cmd
}

func printObjects(w io.Writer, node string, objs []domain.SceneObject) {
	if len(objs) == 0 {
		_, _ = fmt.Fprintf(w, "node %s resolves to no mesh\n", node)
		return
	}
	for _, o := range objs {
		url := o.SourceURL
		if url == "" {
			url = "(unresolved)"
		}
		p := domain.Translation(&o.Transform)
		_, _ = fmt.Fprintf(w, "%s %s\n", o.Key, url)
		_, _ = fmt.Fprintf(w, "  translation: %g %g %g\n", p.X, p.Y, p.Z)
		if m := o.Material; m != nil {
			_, _ = fmt.Fprintf(w, "  material: color %g %g %g, metallic %g, roughness %g\n",
				m.Color[0], m.Color[1], m.Color[2], m.Metallic, m.Roughness)
		}
	}
}
