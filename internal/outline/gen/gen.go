// Package gen synthesizes outline node trees from a project configuration
// and generation parameters. It is the deterministic counterpart to the AI
// generation service: given identical inputs it produces structurally
// identical trees (only node ids differ), so the editing pipeline behaves
// the same whether or not the external service was reachable.
package gen

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// Config is the project configuration driving generation.
type Config struct {
	Subject            string             `yaml:"subject"`
	GradeLevel         string             `yaml:"gradeLevel"`
	LearningObjectives []string           `yaml:"learningObjectives"`
	Standards          []outline.Standard `yaml:"standards"`
	Duration           string             `yaml:"duration,omitempty"` // e.g. "6 weeks"; informational
}

// DetailLevel caps recursion depth: one, two, or three levels below the roots.
type DetailLevel string

const (
	DetailHighLevel DetailLevel = "high-level"
	DetailMedium    DetailLevel = "medium"
	DetailDetailed  DetailLevel = "detailed"
)

// Params are the per-run generation parameters.
type Params struct {
	DetailLevel        DetailLevel           `yaml:"detailLevel"`
	IncludeAssessments bool                  `yaml:"includeAssessments"`
	IncludeActivities  bool                  `yaml:"includeActivities"`
	StructureType      outline.StructureType `yaml:"structureType"`
}

// maxDepth returns the deepest permitted node depth (roots are depth 0).
func (d DetailLevel) maxDepth() int {
	switch d {
	case DetailHighLevel:
		return 1
	case DetailDetailed:
		return 3
	default: // medium
		return 2
	}
}

// baseWordCount and baseDuration hold per-type starting values before the
// grade multiplier is applied. Durations are minutes.
var baseWordCount = map[outline.NodeType]int{
	outline.TypeSection:    500,
	outline.TypeSubsection: 350,
	outline.TypeTopic:      250,
	outline.TypeActivity:   300,
	outline.TypeAssessment: 200,
	outline.TypeResource:   100,
}

var baseDuration = map[outline.NodeType]int{
	outline.TypeSection:    45,
	outline.TypeSubsection: 30,
	outline.TypeTopic:      20,
	outline.TypeActivity:   25,
	outline.TypeAssessment: 15,
	outline.TypeResource:   10,
}

// gradeMultiplier scales word counts and durations by audience. Lower grades
// scale down to 0.5–0.85x, higher education up to 1.3–1.5x; unknown grade
// strings get the middle-school baseline of 1.0.
func gradeMultiplier(gradeLevel string) float64 {
	g := strings.ToLower(strings.TrimSpace(gradeLevel))
	switch {
	case g == "k" || strings.Contains(g, "kindergarten"):
		return 0.5
	case g == "1st" || g == "2nd" || g == "3rd":
		return 0.6
	case g == "4th" || g == "5th":
		return 0.7
	case g == "6th" || g == "7th" || g == "8th" || strings.Contains(g, "middle"):
		return 0.85
	case strings.Contains(g, "graduate") || strings.Contains(g, "professional"):
		return 1.5
	case strings.Contains(g, "college") || strings.Contains(g, "university") ||
		strings.Contains(g, "higher"):
		return 1.3
	default: // 9th-12th, "high school", unknown
		return 1.0
	}
}

// generator carries the mutable cursor state consumed during one run:
// learning objectives are used up in pre-order, then titles fall back to a
// running "Topic N" counter.
type generator struct {
	cfg        Config
	params     Params
	multiplier float64
	objIndex   int
	topicN     int
}

// Generate synthesizes a node forest from the project configuration and
// generation parameters. The result is structurally deterministic: two calls
// with the same inputs differ only in generated node ids.
func Generate(cfg Config, params Params) []*outline.Node {
	g := &generator{cfg: cfg, params: params, multiplier: gradeMultiplier(cfg.GradeLevel)}

	pools := partition(standardIDs(cfg.Standards), g.rootCount())
	roots := make([]*outline.Node, g.rootCount())
	for i := range roots {
		roots[i] = g.build(0, i, pools[i])
	}
	return roots
}

// rootCount is the number of depth-0 siblings for the configured structure.
func (g *generator) rootCount() int {
	switch g.params.StructureType {
	case outline.StructureHierarchical, outline.StructureModular:
		return 4
	default: // sequential, spiral
		return 3
	}
}

// childCount is the number of children generated under a node at the given
// depth, before the detail-level and structure caps are applied.
func (g *generator) childCount(depth int) int {
	switch g.params.StructureType {
	case outline.StructureHierarchical:
		// Wider branching at shallow depths.
		if depth == 0 {
			return 3
		}
		return 2
	default:
		return 2
	}
}

// expandBelow reports whether children are generated under depth. Modular and
// spiral structures cap recursion at depth 1 regardless of detail level;
// hierarchical stops expanding beyond depth 2 unless detail is "detailed".
func (g *generator) expandBelow(depth int) bool {
	if depth >= g.params.DetailLevel.maxDepth() {
		return false
	}
	switch g.params.StructureType {
	case outline.StructureModular, outline.StructureSpiral:
		return depth < 1
	case outline.StructureHierarchical:
		if g.params.DetailLevel != DetailDetailed && depth >= 2 {
			return false
		}
		return true
	default:
		return true
	}
}

// typeForDepth implements the depth-indexed type progression
// section → subsection → topic → activity/assessment. The sibling index
// alternates the deepest level between activities and assessments when both
// are enabled; resources fill in when neither is.
func (g *generator) typeForDepth(depth, siblingIdx int) outline.NodeType {
	switch depth {
	case 0:
		return outline.TypeSection
	case 1:
		return outline.TypeSubsection
	case 2:
		return outline.TypeTopic
	default:
		switch {
		case g.params.IncludeActivities && g.params.IncludeAssessments:
			if siblingIdx%2 == 0 {
				return outline.TypeActivity
			}
			return outline.TypeAssessment
		case g.params.IncludeActivities:
			return outline.TypeActivity
		case g.params.IncludeAssessments:
			return outline.TypeAssessment
		default:
			return outline.TypeResource
		}
	}
}

// levelsForDepth derives taxonomy and difficulty from depth, clamped to the
// end of each scale. Spiral structures escalate both by one step relative to
// the non-spiral mapping, simulating revisitation with increasing complexity.
func (g *generator) levelsForDepth(depth int) (outline.TaxonomyLevel, outline.DifficultyLevel) {
	idx := depth
	if g.params.StructureType == outline.StructureSpiral {
		idx++
	}
	tax := outline.TaxonomyScale[min(idx, len(outline.TaxonomyScale)-1)]
	diff := outline.DifficultyScale[min(idx, len(outline.DifficultyScale)-1)]
	return tax, diff
}

// build constructs the node at (depth, siblingIdx) with the given standards
// pool and recurses into its children.
func (g *generator) build(depth, siblingIdx int, pool []string) *outline.Node {
	typ := g.typeForDepth(depth, siblingIdx)
	tax, diff := g.levelsForDepth(depth)

	n := &outline.Node{
		ID:                 newID(),
		Title:              g.nextTitle(),
		Type:               typ,
		EstimatedWordCount: scale(baseWordCount[typ], g.multiplier),
		EstimatedDuration:  scale(baseDuration[typ], g.multiplier),
		StandardIDs:        append([]string(nil), pool...),
		TaxonomyLevel:      tax,
		DifficultyLevel:    diff,
	}
	n.Description = fmt.Sprintf("%s content for %s", capitalize(string(typ)), g.subject())

	if g.expandBelow(depth) {
		count := g.childCount(depth)
		chunks := partition(pool, count)
		n.Children = make([]*outline.Node, count)
		for i := 0; i < count; i++ {
			n.Children[i] = g.build(depth+1, i, chunks[i])
		}
	}

	if depth == 0 {
		n.Notes = []string{fmt.Sprintf("Auto-generated unit for %s (%s)", g.subject(), g.cfg.GradeLevel)}
	}
	if typ == outline.TypeAssessment || (len(n.Children) == 0 && g.params.IncludeAssessments) {
		n.AssessmentPoints = []string{fmt.Sprintf("Check understanding of %s", n.Title)}
	}
	return n
}

// nextTitle consumes learning objectives in order, then falls back to a
// running "Topic N" counter.
func (g *generator) nextTitle() string {
	if g.objIndex < len(g.cfg.LearningObjectives) {
		t := g.cfg.LearningObjectives[g.objIndex]
		g.objIndex++
		return t
	}
	g.topicN++
	return fmt.Sprintf("Topic %d", g.topicN)
}

func (g *generator) subject() string {
	if g.cfg.Subject == "" {
		return "the subject"
	}
	return g.cfg.Subject
}

// partition splits ids into k contiguous, disjoint chunks using ceil
// division. Trailing chunks may be empty when len(ids) < k.
func partition(ids []string, k int) [][]string {
	chunks := make([][]string, k)
	if k == 0 || len(ids) == 0 {
		return chunks
	}
	size := int(math.Ceil(float64(len(ids)) / float64(k)))
	for i := 0; i < k; i++ {
		lo := i * size
		if lo >= len(ids) {
			chunks[i] = nil
			continue
		}
		hi := min(lo+size, len(ids))
		chunks[i] = append([]string(nil), ids[lo:hi]...)
	}
	return chunks
}

func standardIDs(standards []outline.Standard) []string {
	ids := make([]string, len(standards))
	for i, s := range standards {
		ids[i] = s.ID
	}
	return ids
}

// scale applies the grade multiplier, rounding and clamping to at least 1 so
// generated estimates always satisfy the validator's positivity rule.
func scale(base int, multiplier float64) int {
	v := int(math.Round(float64(base) * multiplier))
	if v < 1 {
		return 1
	}
	return v
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// newID returns a fresh UUIDv7 string.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
