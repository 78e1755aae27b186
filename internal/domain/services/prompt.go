// Package services contains domain business logic.
package services

import (
	"fmt"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

const simpleSystemPrompt = `You are a requirements analyst. Extract every discrete constraint or requirement from the given text as a bulleted list, one constraint per line, starting each line with "- ". Correct obvious spelling mistakes. Output nothing else.`

const fullSystemPrompt = `You are a requirements analyst. Analyze the given text for constraints, redundancies, and contradictions. Respond with JSON only.`

const fullUserPromptTemplate = `Analyze the following text and respond with a JSON object exactly matching this schema:

{
  "constraints": [
    {"id": "c1", "text": "extracted constraint text", "sourceStart": 0, "sourceEnd": 10, "category": "optional category"}
  ],
  "redundantGroups": [
    {"id": "r1", "constraints": [{"id": "c1", "text": "...", "sourceStart": 0, "sourceEnd": 10}], "similarity": 0.9}
  ],
  "contradictions": [
    {"id": "x1", "constraint1": {"id": "c2", "text": "...", "sourceStart": 0, "sourceEnd": 10}, "constraint2": {"id": "c3", "text": "...", "sourceStart": 11, "sourceEnd": 20}, "explanation": "why they conflict", "confidence": 0.85}
  ],
  "originalText": "the input text"
}

Rules:
1. Extract ALL constraints and requirements from the text.
2. Group constraints that are redundant with each other into redundantGroups.
3. Find pairs of constraints that directly contradict each other.
4. Include character-offset spans (sourceStart, sourceEnd) into the original text for every constraint.
5. All similarity and confidence scores must be between 0 and 1.
6. Generate a unique id for every constraint, group, and contradiction.
7. Output pure JSON with no surrounding prose or markdown.

Text to analyze:
%s`

const simpleUserPromptTemplate = `Extract the constraints from this text:

%s`

// Mode selects the analysis depth requested from the model.
type Mode int

const (
	// ModeSimple asks for a plain bulleted list of constraints.
	ModeSimple Mode = iota
	// ModeFull asks for the full structured analysis as JSON.
	ModeFull
)

// BuildPrompt constructs the ordered message sequence for the given mode.
// Pure function of its inputs; no network or state.
func BuildPrompt(mode Mode, inputText string) []entities.Message {
	if mode == ModeSimple {
		return []entities.Message{
			{Role: entities.RoleSystem, Content: simpleSystemPrompt},
			{Role: entities.RoleUser, Content: fmt.Sprintf(simpleUserPromptTemplate, inputText)},
		}
	}

	return []entities.Message{
		{Role: entities.RoleSystem, Content: fullSystemPrompt},
		{Role: entities.RoleUser, Content: fmt.Sprintf(fullUserPromptTemplate, inputText)},
	}
}
