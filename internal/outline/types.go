// Package outline defines the core domain types for EduForge outlines:
// the content-node tree, the outline aggregate, version snapshots, and
// the ordered level scales used by generation and validation.
package outline

// NodeID is a type alias for string representing a node's unique identifier (UUID v7).
type NodeID = string

// NodeType is the structural role of an outline node. It constrains valid
// parent/child pairings (see check.Validate).
type NodeType string

const (
	TypeSection    NodeType = "section"
	TypeSubsection NodeType = "subsection"
	TypeTopic      NodeType = "topic"
	TypeActivity   NodeType = "activity"
	TypeAssessment NodeType = "assessment"
	TypeResource   NodeType = "resource"
)

// TaxonomyLevel is a position on the six-stage cognitive-complexity scale.
type TaxonomyLevel string

const (
	TaxRemember   TaxonomyLevel = "remember"
	TaxUnderstand TaxonomyLevel = "understand"
	TaxApply      TaxonomyLevel = "apply"
	TaxAnalyze    TaxonomyLevel = "analyze"
	TaxEvaluate   TaxonomyLevel = "evaluate"
	TaxCreate     TaxonomyLevel = "create"
)

// TaxonomyScale lists the taxonomy levels in ascending rank order.
var TaxonomyScale = []TaxonomyLevel{
	TaxRemember, TaxUnderstand, TaxApply, TaxAnalyze, TaxEvaluate, TaxCreate,
}

// Rank returns the zero-based position of l on the taxonomy scale,
// or -1 when l is empty or unknown.
func (l TaxonomyLevel) Rank() int {
	for i, s := range TaxonomyScale {
		if s == l {
			return i
		}
	}
	return -1
}

// DifficultyLevel is a position on the five-stage learner-difficulty scale.
type DifficultyLevel string

const (
	DiffIntroductory DifficultyLevel = "introductory"
	DiffBeginner     DifficultyLevel = "beginner"
	DiffIntermediate DifficultyLevel = "intermediate"
	DiffAdvanced     DifficultyLevel = "advanced"
	DiffExpert       DifficultyLevel = "expert"
)

// DifficultyScale lists the difficulty levels in ascending rank order.
var DifficultyScale = []DifficultyLevel{
	DiffIntroductory, DiffBeginner, DiffIntermediate, DiffAdvanced, DiffExpert,
}

// Rank returns the zero-based position of l on the difficulty scale,
// or -1 when l is empty or unknown.
func (l DifficultyLevel) Rank() int {
	for i, s := range DifficultyScale {
		if s == l {
			return i
		}
	}
	return -1
}

// StructureType selects the generation strategy governing branching and
// recursion shape. It informs generation heuristics only; it is not a hard
// constraint on later edits.
type StructureType string

const (
	StructureSequential   StructureType = "sequential"
	StructureHierarchical StructureType = "hierarchical"
	StructureModular      StructureType = "modular"
	StructureSpiral       StructureType = "spiral"
)

// RelationshipType classifies a typed edge in the relationship overlay graph.
type RelationshipType string

const (
	RelPrerequisite RelationshipType = "prerequisite"
	RelSupports     RelationshipType = "supports"
	RelExtends      RelationshipType = "extends"
	RelReferences   RelationshipType = "references"
)

// Node is a single content node in the outline tree. A node exclusively owns
// its children; insertion order is display order.
type Node struct {
	ID                 NodeID          `yaml:"id" json:"id"`
	Title              string          `yaml:"title" json:"title"`
	Description        string          `yaml:"description,omitempty" json:"description,omitempty"`
	Type               NodeType        `yaml:"type" json:"type"`
	EstimatedWordCount int             `yaml:"estimatedWordCount" json:"estimatedWordCount"`
	EstimatedDuration  int             `yaml:"estimatedDuration" json:"estimatedDuration"` // minutes
	Children           []*Node         `yaml:"children,omitempty" json:"children,omitempty"`
	StandardIDs        []string        `yaml:"standardIds,omitempty" json:"standardIds,omitempty"`
	TaxonomyLevel      TaxonomyLevel   `yaml:"taxonomyLevel,omitempty" json:"taxonomyLevel,omitempty"`
	DifficultyLevel    DifficultyLevel `yaml:"difficultyLevel,omitempty" json:"difficultyLevel,omitempty"`
	Prerequisites      []string        `yaml:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	AssessmentPoints   []string        `yaml:"assessmentPoints,omitempty" json:"assessmentPoints,omitempty"`
	Notes              []string        `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Relationship is a typed edge between two nodes. Relationships form a
// secondary overlay graph; they are not part of tree ownership.
type Relationship struct {
	FromNodeID NodeID           `yaml:"fromNodeId" json:"fromNodeId"`
	ToNodeID   NodeID           `yaml:"toNodeId" json:"toNodeId"`
	Type       RelationshipType `yaml:"type" json:"type"`
}

// Reference is an external material attached to an outline.
type Reference struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Outline is the aggregate root: an ordered forest of owned root nodes plus
// metadata, a relationship overlay, and external reference mappings.
type Outline struct {
	ID          string        `yaml:"id" json:"id"`
	ProjectID   string        `yaml:"projectId" json:"projectId"`
	Title       string        `yaml:"title" json:"title"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	RootNodes   []*Node       `yaml:"rootNodes" json:"rootNodes"`
	// Version increments on each explicit save; restore continues the
	// sequence rather than resetting it.
	Version        int                 `yaml:"version" json:"version"`
	StructureType  StructureType       `yaml:"structureType,omitempty" json:"structureType,omitempty"`
	Relationships  []Relationship      `yaml:"relationships,omitempty" json:"relationships,omitempty"`
	References     []Reference         `yaml:"references,omitempty" json:"references,omitempty"`
	NodeReferences map[NodeID][]string `yaml:"nodeReferences,omitempty" json:"nodeReferences,omitempty"`
}

// Standard is one record of the external standards catalog. The engine only
// reads the catalog; it never owns or mutates it.
type Standard struct {
	ID           string `yaml:"id" json:"id"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
	Organization string `yaml:"organization,omitempty" json:"organization,omitempty"`
	Category     string `yaml:"category,omitempty" json:"category,omitempty"`
}

// Version is an immutable snapshot of an outline, created on explicit save
// and never mutated afterwards.
type Version struct {
	ID        string  `json:"id"`
	OutlineID string  `json:"outlineId"`
	Version   int     `json:"version"`
	Message   string  `json:"message,omitempty"`
	CreatedAt string  `json:"createdAt"` // RFC3339 with Z suffix
	Snapshot  Outline `json:"snapshot"`
}
