package services

import (
	"strings"
	"unicode"
)

const fenceMarker = "```"

// StripCodeFence removes markdown code-fence wrapping from a model answer.
// Models often wrap JSON in a fenced block and sometimes prepend or append
// commentary; when a fenced region is present, only the content between the
// first pair of fence markers survives. An optional language tag after the
// opening fence is discarded. Stripping already-unfenced text is a no-op
// beyond whitespace trimming.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	open := strings.Index(text, fenceMarker)
	if open == -1 {
		return text
	}

	inner := text[open+len(fenceMarker):]
	if nl := strings.IndexByte(inner, '\n'); nl != -1 && isFenceTag(inner[:nl]) {
		inner = inner[nl+1:]
	}

	if closing := strings.Index(inner, fenceMarker); closing != -1 {
		inner = inner[:closing]
	}

	return strings.TrimSpace(inner)
}

// isFenceTag reports whether s looks like a fence language tag ("json",
// "JSON", "") rather than content that happens to follow the marker.
func isFenceTag(s string) bool {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
