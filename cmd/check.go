package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
	"github.com/eduforge-ai/eduforge-go/internal/outline/check"
)

// CheckResult is the --json output of the check command.
type CheckResult struct {
	Version     string               `json:"version"` // always "1"
	Errors      int                  `json:"errors"`
	Warnings    int                  `json:"warnings"`
	Diagnostics []outline.Diagnostic `json:"diagnostics"`
}

// NewCheckCmd creates the check subcommand: the structural validator over an
// outline document. Findings are advisory; --strict makes error-severity
// findings fail the command.
func NewCheckCmd(io OutlineIO) *cobra.Command {
	var (
		outlinePath string
		strict      bool
		jsonMode    bool
	)

	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Validate the structure of an outline",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := io.ReadOutline(cmd.Context(), outlinePath)
			if err != nil {
				return err
			}

			diags := check.Validate(o)
			errs, warns := 0, 0
			for _, d := range diags {
				if d.Severity == outline.SeverityError {
					errs++
				} else {
					warns++
				}
			}

			if jsonMode {
				out := CheckResult{Version: "1", Errors: errs, Warnings: warns, Diagnostics: diags}
				if out.Diagnostics == nil {
					out.Diagnostics = []outline.Diagnostic{}
				}
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(out); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
			} else {
				printDiagnostics(cmd, diags)
				fmt.Fprintf(cmd.OutOrStdout(), "%d errors, %d warnings\n", errs, warns)
			}

			if strict && errs > 0 {
				return fmt.Errorf("outline has %d structural errors", errs)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when error-severity findings exist")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output result as JSON")

	return cmd
}
