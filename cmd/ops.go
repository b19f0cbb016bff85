package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// runOutlineMutation is the shared body of the mutation commands: read the
// document, apply the tree rewrite, write the result back atomically when it
// changed, and emit the diagnostics envelope.
func runOutlineMutation(cmd *cobra.Command, io OutlineIO, path string, jsonMode bool,
	mutate func([]*outline.Node) ([]*outline.Node, []outline.Diagnostic)) error {

	ctx := cmd.Context()
	o, err := io.ReadOutline(ctx, path)
	if err != nil {
		return err
	}

	roots, diags := mutate(o.RootNodes)
	if diags == nil {
		diags = []outline.Diagnostic{}
	}
	changed := mutationChanged(diags)

	if jsonMode {
		out := OpResult{Version: "1", Changed: changed, Diagnostics: diags}
		if err := json.NewEncoder(cmd.OutOrStdout()).Encode(out); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
	} else {
		printDiagnostics(cmd, diags)
	}

	if outline.HasError(diags) {
		return fmt.Errorf("operation has errors")
	}
	if changed {
		o.RootNodes = roots
		if err := io.WriteOutlineAtomic(ctx, path, o); err != nil {
			return fmt.Errorf("writing outline: %w", err)
		}
	}
	return nil
}

// mutationChanged reports whether the op diagnostics describe an applied
// mutation. Not-found and self-move warnings leave the tree untouched;
// a reattached-as-root warning still changes it.
func mutationChanged(diags []outline.Diagnostic) bool {
	for _, d := range diags {
		switch d.Code {
		case outline.CodeTargetNotFound, outline.CodeSelfMove, outline.CodeCycleRejected:
			return false
		}
	}
	return true
}
