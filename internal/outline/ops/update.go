// Package ops implements the tree mutation operations invoked by the
// interactive editor: field updates, child insertion, deletion, and
// re-parenting moves. Every operation tolerates missing target ids by
// returning the forest unchanged alongside a warning diagnostic.
package ops

import (
	"fmt"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// UpdateParams carries the optional field replacements for Update.
// Nil pointers leave the corresponding field untouched.
type UpdateParams struct {
	NodeID             outline.NodeID
	Title              *string
	Description        *string
	Type               *outline.NodeType
	EstimatedWordCount *int
	EstimatedDuration  *int
	StandardIDs        *[]string
	TaxonomyLevel      *outline.TaxonomyLevel
	DifficultyLevel    *outline.DifficultyLevel
}

// Update locates the node by id and replaces the fields set in params.
// When the id is absent the forest is returned unchanged with an OPW001
// warning.
func Update(roots []*outline.Node, params UpdateParams) ([]*outline.Node, []outline.Diagnostic) {
	n := outline.Find(roots, params.NodeID)
	if n == nil {
		return roots, notFound(params.NodeID)
	}
	if params.Title != nil {
		n.Title = *params.Title
	}
	if params.Description != nil {
		n.Description = *params.Description
	}
	if params.Type != nil {
		n.Type = *params.Type
	}
	if params.EstimatedWordCount != nil {
		n.EstimatedWordCount = *params.EstimatedWordCount
	}
	if params.EstimatedDuration != nil {
		n.EstimatedDuration = *params.EstimatedDuration
	}
	if params.StandardIDs != nil {
		n.StandardIDs = append([]string(nil), (*params.StandardIDs)...)
	}
	if params.TaxonomyLevel != nil {
		n.TaxonomyLevel = *params.TaxonomyLevel
	}
	if params.DifficultyLevel != nil {
		n.DifficultyLevel = *params.DifficultyLevel
	}
	return roots, nil
}

// notFound builds the standard OPW001 warning for an absent target id.
func notFound(id outline.NodeID) []outline.Diagnostic {
	return []outline.Diagnostic{{
		Severity: outline.SeverityWarning,
		Code:     outline.CodeTargetNotFound,
		Message:  fmt.Sprintf("node %q not found; outline unchanged", id),
		NodeID:   id,
	}}
}
