package extract

import "fmt"

// OutputError is the terminal failure of an extraction task: the response
// still violated the schema after the one repair attempt. The last raw text
// and the validation diagnostics are preserved for operator inspection; a
// partially-valid record is never returned in its place.
type OutputError struct {
	Schema string
	Raw    string
	Err    error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("structured output for %s failed validation after repair: %v", e.Schema, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// InputError rejects a request before any generation call is issued: cheap,
// synchronous, and user-visible.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func NewInputError(format string, args ...any) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}
