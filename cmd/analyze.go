package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
	"github.com/eduforge-ai/eduforge-go/internal/outline/analyze"
)

// NewAnalyzeCmd creates the analyze subcommand group. Every report is
// emitted as indented JSON on stdout; remediation flags write an updated
// outline document.
func NewAnalyzeCmd(io OutlineIO) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run coverage, balance, and complexity reports over an outline",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newGapsCmd(io))
	cmd.AddCommand(newBalanceCmd(io))
	cmd.AddCommand(newComplexityCmd(io))
	cmd.AddCommand(newLevelsCmd(io))
	return cmd
}

func newGapsCmd(io OutlineIO) *cobra.Command {
	var (
		outlinePath   string
		standardsPath string
		fix           bool
	)

	cmd := &cobra.Command{
		Use:          "gaps",
		Short:        "Report standards-coverage gaps",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, err := io.ReadOutline(ctx, outlinePath)
			if err != nil {
				return err
			}
			catalog, err := loadStandards(standardsPath)
			if err != nil {
				return err
			}

			if fix {
				fixed := analyze.AutoFixStandards(o, catalog)
				if err := io.WriteOutlineAtomic(ctx, outlinePath, fixed); err != nil {
					return fmt.Errorf("writing outline: %w", err)
				}
				o = fixed
			}
			return emitReport(cmd, analyze.StandardsGaps(o, catalog))
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&standardsPath, "standards", "", "Standards catalog YAML file")
	cmd.Flags().BoolVar(&fix, "fix", false, "Distribute uncovered standards across the outline")
	_ = cmd.MarkFlagRequired("standards")

	return cmd
}

func newBalanceCmd(io OutlineIO) *cobra.Command {
	var (
		outlinePath string
		apply       string
	)

	cmd := &cobra.Command{
		Use:          "balance",
		Short:        "Report word-count distribution across the outline",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, err := io.ReadOutline(ctx, outlinePath)
			if err != nil {
				return err
			}
			if apply != "" {
				strategy := analyze.Strategy(apply)
				switch strategy {
				case analyze.StrategyBalance, analyze.StrategyRelativeDepth, analyze.StrategyTypeBased:
				default:
					return fmt.Errorf("unknown strategy %q", apply)
				}
				fixed := analyze.ApplyWordCounts(o, strategy)
				if err := io.WriteOutlineAtomic(ctx, outlinePath, fixed); err != nil {
					return fmt.Errorf("writing outline: %w", err)
				}
				o = fixed
			}
			return emitReport(cmd, analyze.WordCountDistribution(o))
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&apply, "apply", "", "Rebalance first using a strategy: balance, relative-depth, or type-based")

	return cmd
}

func newComplexityCmd(io OutlineIO) *cobra.Command {
	var outlinePath string

	cmd := &cobra.Command{
		Use:          "complexity",
		Short:        "Score the outline's structural complexity",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := io.ReadOutline(cmd.Context(), outlinePath)
			if err != nil {
				return err
			}
			return emitReport(cmd, analyze.Complexity(o))
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	return cmd
}

// levelsReport bundles the two histograms with their advisories.
type levelsReport struct {
	Taxonomy   analyze.LevelHistogram `json:"taxonomy"`
	Difficulty analyze.LevelHistogram `json:"difficulty"`
	Advisories []string               `json:"advisories"`
}

func newLevelsCmd(io OutlineIO) *cobra.Command {
	var outlinePath string

	cmd := &cobra.Command{
		Use:          "levels",
		Short:        "Report taxonomy and difficulty level histograms",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := io.ReadOutline(cmd.Context(), outlinePath)
			if err != nil {
				return err
			}
			return emitReport(cmd, levelsReport{
				Taxonomy:   analyze.TaxonomyHistogram(o),
				Difficulty: analyze.DifficultyHistogram(o),
				Advisories: analyze.LevelAdvisories(o),
			})
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	return cmd
}

// emitReport writes a report struct as indented JSON to stdout.
func emitReport(cmd *cobra.Command, report any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// standardsFile is the on-disk shape of a standards catalog.
type standardsFile struct {
	Standards []outline.Standard `yaml:"standards"`
}

// loadStandards reads a standards catalog YAML file.
func loadStandards(path string) ([]outline.Standard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading standards catalog: %w", err)
	}
	var f standardsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing standards catalog %q: %w", path, err)
	}
	return f.Standards, nil
}
