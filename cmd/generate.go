package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eduforge-ai/eduforge-go/internal/aigen"
	"github.com/eduforge-ai/eduforge-go/internal/outline"
	"github.com/eduforge-ai/eduforge-go/internal/outline/gen"
)

// newAIClient builds the generation client from the environment. It may be
// replaced in tests to inject a fake service client.
var newAIClient = func(logger *slog.Logger) aigen.Client {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}
	client, err := aigen.NewOpenAIClient(apiKey, os.Getenv("OPENAI_MODEL"), logger)
	if err != nil {
		return nil
	}
	return client
}

// GenerateResult is the --json output of the generate command.
type GenerateResult struct {
	Version   string `json:"version"` // always "1"
	Outcome   string `json:"outcome"`
	NodeCount int    `json:"nodeCount"`
	Path      string `json:"path"`
}

// NewGenerateCmd creates the generate subcommand: project configuration in,
// outline document out, via the AI service or the deterministic fallback.
func NewGenerateCmd(io OutlineIO) *cobra.Command {
	var (
		configPath  string
		outPath     string
		title       string
		detail      string
		structure   string
		activities  bool
		assessments bool
		offline     bool
		jsonMode    bool
	)

	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate an outline from a project configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			params := gen.Params{
				DetailLevel:        gen.DetailLevel(detail),
				StructureType:      outline.StructureType(structure),
				IncludeActivities:  activities,
				IncludeAssessments: assessments,
			}

			var client aigen.Client
			if !offline {
				client = newAIClient(slog.Default())
			}
			service := aigen.NewService(client)
			nodes, outcome := service.GenerateOutline(ctx, cfg, params)

			o := outline.Outline{
				ID:            uuid.Must(uuid.NewV7()).String(),
				ProjectID:     uuid.Must(uuid.NewV7()).String(),
				Title:         title,
				RootNodes:     nodes,
				StructureType: params.StructureType,
			}
			if o.Title == "" {
				o.Title = cfg.Subject + " outline"
			}
			if err := io.WriteOutlineAtomic(ctx, outPath, o); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}

			if jsonMode {
				out := GenerateResult{Version: "1", Outcome: string(outcome), NodeCount: outline.Count(nodes), Path: outPath}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}
			if outcome.Fallback() {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: AI service unavailable (%s); generated deterministically\n", outcome)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d nodes into %s\n", outline.Count(nodes), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Project configuration YAML file")
	cmd.Flags().StringVar(&outPath, "out", "outline.yaml", "Output outline document path")
	cmd.Flags().StringVar(&title, "title", "", "Outline title (default: derived from subject)")
	cmd.Flags().StringVar(&detail, "detail", string(gen.DetailMedium), "Detail level: high-level, medium, or detailed")
	cmd.Flags().StringVar(&structure, "structure", string(outline.StructureSequential), "Structure type: sequential, hierarchical, modular, or spiral")
	cmd.Flags().BoolVar(&activities, "activities", false, "Include activity nodes")
	cmd.Flags().BoolVar(&assessments, "assessments", false, "Include assessment nodes")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the AI service and generate deterministically")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output result as JSON")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// loadConfig reads the project configuration YAML.
func loadConfig(path string) (gen.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gen.Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg gen.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return gen.Config{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}
