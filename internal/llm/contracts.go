package llm

import "context"

// Message roles, following the chat/completions convention.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Part is one content block of a message: plain text or an image data URL.
type Part struct {
	Text     string
	ImageURL string
}

// Message is one role-tagged block of a generation request. Messages are
// built fresh per call and never mutated after submission.
type Message struct {
	Role  string
	Parts []Part
}

// Text builds a single-part text message.
func Text(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// Image builds a user message carrying an instruction plus an image data URL.
func Image(instruction, dataURL string) Message {
	return Message{Role: RoleUser, Parts: []Part{{Text: instruction}, {ImageURL: dataURL}}}
}

// Generator is the interface the extraction core depends on. Implementations
// must be safe for concurrent use; a transport failure is fatal for that call
// (retry policy lives above this layer).
type Generator interface {
	Generate(ctx context.Context, msgs []Message) (string, error)
}
