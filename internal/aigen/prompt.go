package aigen

import (
	"fmt"
	"strings"

	"github.com/eduforge-ai/eduforge-go/internal/outline/gen"
)

// BuildPrompt composes the natural-language generation request from the
// project configuration and generation parameters. The same prompt string is
// also the cache key for the service's response cache.
func BuildPrompt(cfg gen.Config, params gen.Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s course outline for %q", params.DetailLevel, cfg.Subject)
	if cfg.GradeLevel != "" {
		fmt.Fprintf(&b, " at the %s level", cfg.GradeLevel)
	}
	if cfg.Duration != "" {
		fmt.Fprintf(&b, " spanning %s", cfg.Duration)
	}
	fmt.Fprintf(&b, ", organized as a %s structure.\n", params.StructureType)

	if len(cfg.LearningObjectives) > 0 {
		b.WriteString("Learning objectives, in order:\n")
		for i, obj := range cfg.LearningObjectives {
			fmt.Fprintf(&b, "%d. %s\n", i+1, obj)
		}
	}
	if len(cfg.Standards) > 0 {
		b.WriteString("Address these standards:\n")
		for _, std := range cfg.Standards {
			fmt.Fprintf(&b, "- %s", std.ID)
			if std.Description != "" {
				fmt.Fprintf(&b, ": %s", std.Description)
			}
			b.WriteString("\n")
		}
	}
	if params.IncludeActivities {
		b.WriteString("Include hands-on activities.\n")
	}
	if params.IncludeAssessments {
		b.WriteString("Include assessments with assessment points.\n")
	}
	return b.String()
}
