package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

func TestBuildPrompt_Simple(t *testing.T) {
	messages := BuildPrompt(ModeSimple, "Books must have a title.")

	require.Len(t, messages, 2)
	assert.Equal(t, entities.RoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "bulleted list")
	assert.Equal(t, entities.RoleUser, messages[1].Role)
	assert.Contains(t, messages[1].Content, "Books must have a title.")
}

func TestBuildPrompt_Full(t *testing.T) {
	messages := BuildPrompt(ModeFull, "Books must have a title.")

	require.Len(t, messages, 2)
	assert.Equal(t, entities.RoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "JSON only")

	user := messages[1]
	assert.Equal(t, entities.RoleUser, user.Role)
	assert.Contains(t, user.Content, "Books must have a title.")

	// The user message carries the schema template and the numbered rules.
	for _, field := range []string{"constraints", "redundantGroups", "contradictions", "originalText", "sourceStart", "sourceEnd", "similarity", "confidence"} {
		assert.Contains(t, user.Content, field)
	}
	assert.Contains(t, user.Content, "between 0 and 1")
	assert.Contains(t, user.Content, "unique id")
}

func TestBuildPrompt_Pure(t *testing.T) {
	a := BuildPrompt(ModeFull, "same input")
	b := BuildPrompt(ModeFull, "same input")
	assert.Equal(t, a, b)
}
