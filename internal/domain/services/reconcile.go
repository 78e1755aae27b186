package services

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

// defaultScore replaces similarity/confidence values that are missing or
// outside [0,1]. A fabricated midpoint is preferred over rejecting the
// model's answer.
const defaultScore = 0.8

var bulletMarkers = []string{"-", "*", "•"}

// rawConstraint mirrors the JSON shape the model is asked to produce.
// Pointer fields distinguish absent from zero.
type rawConstraint struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	SourceStart *int   `json:"sourceStart"`
	SourceEnd   *int   `json:"sourceEnd"`
	Category    string `json:"category"`
}

type rawGroup struct {
	ID          string          `json:"id"`
	Constraints []rawConstraint `json:"constraints"`
	Similarity  *float64        `json:"similarity"`
}

type rawContradiction struct {
	ID          string        `json:"id"`
	Constraint1 rawConstraint `json:"constraint1"`
	Constraint2 rawConstraint `json:"constraint2"`
	Explanation string        `json:"explanation"`
	Confidence  *float64      `json:"confidence"`
}

// Reconcile converts an untrusted model answer into a structurally
// guaranteed AnalysisResult. It is a total function: it never fails,
// whatever the answer looks like. Sequence order from the answer (or line
// order in the bullet fallback) is preserved as-is.
func Reconcile(answer string, originalText string) *entities.AnalysisResult {
	answer = strings.TrimSpace(answer)

	if result, ok := reconcileStructured(answer, originalText); ok {
		return result
	}

	return reconcileBullets(answer, originalText)
}

// reconcileStructured attempts the strict JSON path. A partially
// well-formed answer never rejects the whole result: each top-level field
// that is absent or the wrong shape is replaced with its empty default.
func reconcileStructured(answer string, originalText string) (*entities.AnalysisResult, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(answer), &fields); err != nil {
		return nil, false
	}

	result := entities.EmptyResult(originalText)

	for _, rc := range decodeElements[rawConstraint](fields["constraints"]) {
		result.Constraints = append(result.Constraints, repairConstraint(rc, originalText))
	}

	for _, rg := range decodeElements[rawGroup](fields["redundantGroups"]) {
		group := entities.RedundantGroup{
			ID:          nonEmptyID(rg.ID),
			Constraints: make([]entities.Constraint, 0, len(rg.Constraints)),
			Similarity:  repairScore(rg.Similarity),
		}
		for _, rc := range rg.Constraints {
			group.Constraints = append(group.Constraints, repairConstraint(rc, originalText))
		}
		// A group with nothing in it carries no information.
		if len(group.Constraints) == 0 {
			continue
		}
		result.RedundantGroups = append(result.RedundantGroups, group)
	}

	for _, rx := range decodeElements[rawContradiction](fields["contradictions"]) {
		result.Contradictions = append(result.Contradictions, entities.Contradiction{
			ID:          nonEmptyID(rx.ID),
			Constraint1: repairConstraint(rx.Constraint1, originalText),
			Constraint2: repairConstraint(rx.Constraint2, originalText),
			Explanation: rx.Explanation,
			Confidence:  repairScore(rx.Confidence),
		})
	}

	var echoed string
	if raw, ok := fields["originalText"]; ok && json.Unmarshal(raw, &echoed) == nil {
		result.OriginalText = echoed
	}

	return result, true
}

// decodeElements decodes a JSON array element by element so that one
// malformed entry does not discard its well-formed neighbors. A field that
// is absent or not an array decodes to nothing.
func decodeElements[T any](raw json.RawMessage) []T {
	if raw == nil {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// reconcileBullets is the fallback for answers in prose or a broken-JSON
// dialect: lines beginning with a bullet marker become constraints.
// Redundant groups and contradictions stay empty; detecting them from
// prose would need semantic judgment this rule-based path cannot
// approximate.
func reconcileBullets(answer string, originalText string) *entities.AnalysisResult {
	result := entities.EmptyResult(originalText)

	for _, line := range strings.Split(answer, "\n") {
		text, ok := stripBulletMarker(line)
		if !ok || text == "" {
			continue
		}
		result.Constraints = append(result.Constraints, entities.Constraint{
			ID:          uuid.New().String(),
			Text:        text,
			SourceStart: 0,
			SourceEnd:   len(originalText),
		})
	}

	return result
}

func stripBulletMarker(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}

// repairConstraint guarantees a constraint is addressable and its span is
// structurally valid, substituting the whole-input span when offsets are
// absent or inverted.
func repairConstraint(rc rawConstraint, originalText string) entities.Constraint {
	c := entities.Constraint{
		ID:       nonEmptyID(rc.ID),
		Text:     rc.Text,
		Category: rc.Category,
	}

	switch {
	case rc.SourceStart == nil || rc.SourceEnd == nil:
		c.SourceStart, c.SourceEnd = 0, len(originalText)
	case *rc.SourceStart < 0 || *rc.SourceEnd < *rc.SourceStart:
		c.SourceStart, c.SourceEnd = 0, len(originalText)
	default:
		c.SourceStart, c.SourceEnd = *rc.SourceStart, *rc.SourceEnd
	}

	return c
}

func nonEmptyID(id string) string {
	if strings.TrimSpace(id) == "" {
		return uuid.New().String()
	}
	return id
}

func repairScore(score *float64) float64 {
	if score == nil || *score < 0 || *score > 1 {
		return defaultScore
	}
	return *score
}
