// Package schema describes target record shapes used for two purposes that
// must never drift apart: rendering format instructions into a prompt, and
// validating raw model output against the same declaration.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema couples a JSON-Schema declaration with its compiled validator.
type Schema struct {
	name     string
	root     map[string]any
	compiled *jsonschema.Schema
}

// New compiles a JSON-Schema (draft 2020-12 subset) given as a generic map.
func New(name string, root map[string]any) (*Schema, error) {
	b, err := json.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name+".json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	compiled, err := compiler.Compile(name + ".json")
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{name: name, root: root, compiled: compiled}, nil
}

// MustObject builds and compiles an object schema with the given properties
// and required keys. It panics on a bad declaration; domain schemas are
// package-level constants in spirit, so a failure here is a programming error.
func MustObject(name string, props map[string]any, required ...string) *Schema {
	s, err := New(name, Object("", props, required...))
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// JSON returns the pretty-printed schema declaration.
func (s *Schema) JSON() string {
	b, _ := json.MarshalIndent(s.root, "", "  ")
	return string(b)
}

// FormatInstructions renders the natural-language output contract embedded in
// generation requests. The schema JSON rides inside a fenced block; responses
// are de-wrapped before validation so the fence convention round-trips.
func (s *Schema) FormatInstructions() string {
	return "The output should be formatted as a JSON instance that conforms to the JSON schema below. " +
		"Return only the JSON instance, with no surrounding commentary or explanation.\n\n" +
		"Here is the output schema:\n```\n" + s.JSON() + "\n```"
}

// Validate checks raw bytes against the schema. Enum values must match the
// declared literals exactly (case-sensitive); nullable numerics accept an
// explicit null and are never coerced.
func (s *Schema) Validate(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := s.compiled.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema %s: %w", s.name, err)
	}
	return nil
}
