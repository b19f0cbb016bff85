package outline

// Diagnostic is a structured finding emitted by mutation operations and the
// structural validator. Findings are data, never exceptions: callers decide
// whether to display, filter, or block on them.
type Diagnostic struct {
	Severity string `json:"severity"` // "error" | "warning"
	Code     string `json:"code"`     // e.g. "OPW001", "CHK006"
	Message  string `json:"message"`
	NodeID   NodeID `json:"nodeId,omitempty"` // offending node, when applicable
}

// SeverityError and SeverityWarning classify diagnostic impact.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Mutation-operation diagnostics. Warnings leave the tree usable; the single
// error (cycle rejection) aborts the mutation with the tree unchanged.
const (
	// OPE001: move destination is the source or one of its descendants.
	CodeCycleRejected = "OPE001"
	// OPW001: the named node id was not found; the outline is unchanged.
	CodeTargetNotFound = "OPW001"
	// OPW002: move destination missing; subtree re-attached as a new root.
	CodeReattachedAsRoot = "OPW002"
	// OPW003: source and destination are the same node; no-op.
	CodeSelfMove = "OPW003"
)

// Messages flattens diagnostics into the human-readable string list consumed
// by display layers. Format matches the CLI's stderr rendering.
func Messages(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message + " (" + d.Code + ")"
	}
	return out
}

// HasError reports whether any diagnostic has error severity.
func HasError(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
