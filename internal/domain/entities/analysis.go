// Package entities contains core domain data structures.
package entities

// Constraint represents a single requirement extracted from the input text.
// SourceStart and SourceEnd are character offsets into the original input
// (half-open, [SourceStart, SourceEnd)). The offsets come from the model and
// are not verified against the input; only their structural validity is
// guaranteed.
type Constraint struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	SourceStart int    `json:"sourceStart"`
	SourceEnd   int    `json:"sourceEnd"`
	Category    string `json:"category,omitempty"`
}

// RedundantGroup is a cluster of constraints that express the same
// requirement. Constraints are held by value because the model returns them
// inline rather than by id. The sequence is never empty in a reconciled
// result.
type RedundantGroup struct {
	ID          string       `json:"id"`
	Constraints []Constraint `json:"constraints"`
	Similarity  float64      `json:"similarity"`
}

// Contradiction is a pair of constraints judged to conflict, with a
// free-text rationale and a confidence score in [0,1].
type Contradiction struct {
	ID          string     `json:"id"`
	Constraint1 Constraint `json:"constraint1"`
	Constraint2 Constraint `json:"constraint2"`
	Explanation string     `json:"explanation"`
	Confidence  float64    `json:"confidence"`
}

// AnalysisResult is the root structure returned to API consumers. All four
// fields are always present and always the declared shape, even when the
// model's answer was unusable; consumers never need null-checks on
// top-level fields.
type AnalysisResult struct {
	Constraints     []Constraint     `json:"constraints"`
	RedundantGroups []RedundantGroup `json:"redundantGroups"`
	Contradictions  []Contradiction  `json:"contradictions"`
	OriginalText    string           `json:"originalText"`
}

// EmptyResult returns an AnalysisResult with empty collections and the
// given original text echoed back.
func EmptyResult(originalText string) *AnalysisResult {
	return &AnalysisResult{
		Constraints:     []Constraint{},
		RedundantGroups: []RedundantGroup{},
		Contradictions:  []Contradiction{},
		OriginalText:    originalText,
	}
}
