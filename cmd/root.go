// Package cmd implements the edf CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// NewRootCmd creates the root edf command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "edf",
		Short:         "edf - EduForge CLI for authoring educational outlines",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          func(*cobra.Command, []string) error { return nil },
	}
	docIO := newFileOutlineIO()
	root.AddCommand(NewGenerateCmd(docIO))
	root.AddCommand(NewCheckCmd(docIO))
	root.AddCommand(NewAddChildCmd(docIO))
	root.AddCommand(NewDeleteCmd(docIO))
	root.AddCommand(NewMoveCmd(docIO))
	root.AddCommand(NewUpdateCmd(docIO))
	root.AddCommand(NewAnalyzeCmd(docIO))
	root.AddCommand(NewVersionsCmd(docIO, openSQLiteStore))
	return root
}

// OpResult is the CLI JSON output envelope of any mutation operation.
type OpResult struct {
	Version     string               `json:"version"` // always "1"
	Changed     bool                 `json:"changed"`
	Diagnostics []outline.Diagnostic `json:"diagnostics"`
}

// printDiagnostics writes each diagnostic to stderr in human-readable form.
func printDiagnostics(cmd *cobra.Command, diags []outline.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s (%s)\n", d.Severity, d.Message, d.Code)
	}
}
