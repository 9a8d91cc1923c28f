package schema

import "strings"

// Dewrap strips known wrapping artifacts from raw model text. Models routinely
// fence their output even when told not to; the fence markers are removed
// wherever they appear, matching the transcription and extraction prompts'
// tolerance. Applied uniformly before every validation attempt.
func Dewrap(raw string) string {
	s := strings.TrimSpace(raw)
	for _, marker := range []string{"```json", "```markdown", "```"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	return strings.TrimSpace(s)
}
