package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
	"github.com/eduforge-ai/eduforge-go/internal/outline/ops"
)

// NewAddChildCmd creates the add-child subcommand.
func NewAddChildCmd(io OutlineIO) *cobra.Command {
	var (
		outlinePath string
		parentID    string
		title       string
		nodeType    string
		words       int
		minutes     int
		jsonMode    bool
	)

	cmd := &cobra.Command{
		Use:          "add-child",
		Short:        "Add a child node under a parent in an outline",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			child := &outline.Node{
				ID:                 uuid.Must(uuid.NewV7()).String(),
				Title:              title,
				Type:               outline.NodeType(nodeType),
				EstimatedWordCount: words,
				EstimatedDuration:  minutes,
			}
			return runOutlineMutation(cmd, io, outlinePath, jsonMode,
				func(roots []*outline.Node) ([]*outline.Node, []outline.Diagnostic) {
					return ops.AddChild(roots, parentID, child)
				})
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent node id")
	cmd.Flags().StringVar(&title, "title", "", "Title of the new node")
	cmd.Flags().StringVar(&nodeType, "type", string(outline.TypeTopic), "Node type")
	cmd.Flags().IntVar(&words, "words", 250, "Estimated word count")
	cmd.Flags().IntVar(&minutes, "minutes", 20, "Estimated duration in minutes")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output result as JSON")
	_ = cmd.MarkFlagRequired("parent")

	return cmd
}
