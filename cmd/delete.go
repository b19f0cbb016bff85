package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
	"github.com/eduforge-ai/eduforge-go/internal/outline/ops"
)

// NewDeleteCmd creates the delete subcommand.
func NewDeleteCmd(io OutlineIO) *cobra.Command {
	var (
		outlinePath string
		nodeID      string
		yes         bool
		jsonMode    bool
	)

	cmd := &cobra.Command{
		Use:          "delete",
		Short:        "Delete a node (and its subtree) from an outline",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("delete requires --yes confirmation")
			}
			return runOutlineMutation(cmd, io, outlinePath, jsonMode,
				func(roots []*outline.Node) ([]*outline.Node, []outline.Diagnostic) {
					return ops.Delete(roots, nodeID)
				})
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&nodeID, "node", "", "Id of the node to delete")
	cmd.Flags().BoolVar(&yes, "yes", false, "Required confirmation flag")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output result as JSON")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}
