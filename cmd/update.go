package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
	"github.com/eduforge-ai/eduforge-go/internal/outline/ops"
)

// NewUpdateCmd creates the update subcommand. Only flags the caller set are
// applied, so untouched fields keep their values.
func NewUpdateCmd(io OutlineIO) *cobra.Command {
	var (
		outlinePath string
		nodeID      string
		title       string
		description string
		nodeType    string
		words       int
		minutes     int
		taxonomy    string
		difficulty  string
		standards   string
		jsonMode    bool
	)

	cmd := &cobra.Command{
		Use:          "update",
		Short:        "Update fields of a node in an outline",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := ops.UpdateParams{NodeID: nodeID}
			flags := cmd.Flags()
			if flags.Changed("title") {
				params.Title = &title
			}
			if flags.Changed("description") {
				params.Description = &description
			}
			if flags.Changed("type") {
				t := outline.NodeType(nodeType)
				params.Type = &t
			}
			if flags.Changed("words") {
				params.EstimatedWordCount = &words
			}
			if flags.Changed("minutes") {
				params.EstimatedDuration = &minutes
			}
			if flags.Changed("taxonomy") {
				l := outline.TaxonomyLevel(taxonomy)
				params.TaxonomyLevel = &l
			}
			if flags.Changed("difficulty") {
				l := outline.DifficultyLevel(difficulty)
				params.DifficultyLevel = &l
			}
			if flags.Changed("standards") {
				ids := splitIDs(standards)
				params.StandardIDs = &ids
			}
			return runOutlineMutation(cmd, io, outlinePath, jsonMode,
				func(roots []*outline.Node) ([]*outline.Node, []outline.Diagnostic) {
					return ops.Update(roots, params)
				})
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&nodeID, "node", "", "Id of the node to update")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&nodeType, "type", "", "New node type")
	cmd.Flags().IntVar(&words, "words", 0, "New estimated word count")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "New estimated duration in minutes")
	cmd.Flags().StringVar(&taxonomy, "taxonomy", "", "New taxonomy level")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "New difficulty level")
	cmd.Flags().StringVar(&standards, "standards", "", "Comma-separated standard ids")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output result as JSON")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

// splitIDs parses a comma-separated id list, dropping empty entries.
func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
