package aigen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// nodePayload mirrors the JSON node shape the model is asked to return.
// Every field is optional; conversion fills sane defaults.
type nodePayload struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Type               string         `json:"type"`
	EstimatedWordCount int            `json:"estimatedWordCount"`
	EstimatedDuration  int            `json:"estimatedDuration"`
	Children           []*nodePayload `json:"children"`
	StandardIDs        []string       `json:"standardIds"`
	TaxonomyLevel      string         `json:"taxonomyLevel"`
	DifficultyLevel    string         `json:"difficultyLevel"`
	Prerequisites      []string       `json:"prerequisites"`
	AssessmentPoints   []string       `json:"assessmentPoints"`
	Notes              []string       `json:"notes"`
}

// rootsPayload is the alternative top-level object shape.
type rootsPayload struct {
	RootNodes []*nodePayload `json:"rootNodes"`
}

// fencedJSONRE extracts the body of a markdown code fence.
var fencedJSONRE = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ParseNodes extracts an outline node forest from a raw model response. It
// accepts, in order of preference: a bare JSON node array, a JSON object
// with a rootNodes array, and either of those embedded in a code fence or
// surrounding prose. An error means no usable structure was found and the
// caller should fall back to the deterministic generator.
func ParseNodes(raw string) ([]*outline.Node, error) {
	candidates := []string{strings.TrimSpace(raw)}
	if m := fencedJSONRE.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}
	candidates = append(candidates, embeddedJSONCandidates(raw)...)

	for _, c := range candidates {
		if c == "" {
			continue
		}
		if nodes, ok := decodeCandidate(c); ok {
			return nodes, nil
		}
	}
	return nil, fmt.Errorf("response contains no parseable outline structure")
}

// embeddedJSONCandidates collects every complete JSON value embedded in free
// text, starting from each bracket. The decoder stops at the end of a value,
// so prose or stray brackets after a well-formed array do not spoil it.
func embeddedJSONCandidates(raw string) []string {
	var out []string
	for i := 0; i < len(raw); i++ {
		if raw[i] != '[' && raw[i] != '{' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(raw[i:]))
		var blob json.RawMessage
		if err := dec.Decode(&blob); err != nil {
			continue
		}
		out = append(out, string(blob))
		i += int(dec.InputOffset()) - 1
	}
	return out
}

// decodeCandidate tries both accepted top-level shapes against one blob.
func decodeCandidate(blob string) ([]*outline.Node, bool) {
	var arr []*nodePayload
	if err := json.Unmarshal([]byte(blob), &arr); err == nil && len(arr) > 0 {
		return convertAll(arr), true
	}
	var obj rootsPayload
	if err := json.Unmarshal([]byte(blob), &obj); err == nil && len(obj.RootNodes) > 0 {
		return convertAll(obj.RootNodes), true
	}
	return nil, false
}

func convertAll(payloads []*nodePayload) []*outline.Node {
	nodes := make([]*outline.Node, 0, len(payloads))
	for _, p := range payloads {
		if p != nil {
			nodes = append(nodes, convert(p, 0))
		}
	}
	return nodes
}

// convert maps a payload onto a Node, generating ids where the model omitted
// them and defaulting the type from depth so the hierarchy validator has
// something coherent to work with.
func convert(p *nodePayload, depth int) *outline.Node {
	n := &outline.Node{
		ID:                 p.ID,
		Title:              strings.TrimSpace(p.Title),
		Description:        p.Description,
		Type:               outline.NodeType(strings.ToLower(strings.TrimSpace(p.Type))),
		EstimatedWordCount: p.EstimatedWordCount,
		EstimatedDuration:  p.EstimatedDuration,
		StandardIDs:        p.StandardIDs,
		TaxonomyLevel:      outline.TaxonomyLevel(strings.ToLower(strings.TrimSpace(p.TaxonomyLevel))),
		DifficultyLevel:    outline.DifficultyLevel(strings.ToLower(strings.TrimSpace(p.DifficultyLevel))),
		Prerequisites:      p.Prerequisites,
		AssessmentPoints:   p.AssessmentPoints,
		Notes:              p.Notes,
	}
	if n.ID == "" {
		n.ID = uuid.Must(uuid.NewV7()).String()
	}
	if n.Title == "" {
		n.Title = "Untitled"
	}
	if n.Type == "" {
		n.Type = defaultType(depth)
	}
	if n.EstimatedWordCount <= 0 {
		n.EstimatedWordCount = 250
	}
	if n.EstimatedDuration <= 0 {
		n.EstimatedDuration = 20
	}
	for _, c := range p.Children {
		if c != nil {
			n.Children = append(n.Children, convert(c, depth+1))
		}
	}
	return n
}

func defaultType(depth int) outline.NodeType {
	switch depth {
	case 0:
		return outline.TypeSection
	case 1:
		return outline.TypeSubsection
	default:
		return outline.TypeTopic
	}
}
