package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
	"github.com/eduforge-ai/eduforge-go/internal/outline/ops"
)

// NewMoveCmd creates the move subcommand.
func NewMoveCmd(io OutlineIO) *cobra.Command {
	var (
		outlinePath string
		sourceID    string
		destID      string
		yes         bool
		jsonMode    bool
	)

	cmd := &cobra.Command{
		Use:          "move",
		Short:        "Move a node under a new parent in an outline",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("move requires --yes confirmation")
			}
			return runOutlineMutation(cmd, io, outlinePath, jsonMode,
				func(roots []*outline.Node) ([]*outline.Node, []outline.Diagnostic) {
					return ops.Move(roots, sourceID, destID)
				})
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&sourceID, "source", "", "Id of the node to move")
	cmd.Flags().StringVar(&destID, "dest", "", "Id of the new parent node")
	cmd.Flags().BoolVar(&yes, "yes", false, "Required confirmation flag")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output result as JSON")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}
