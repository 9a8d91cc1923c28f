package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInstructionsEmbedSchema(t *testing.T) {
	s := MustObject("widget", map[string]any{
		"name": Str("widget name"),
	}, "name")

	got := s.FormatInstructions()
	assert.Contains(t, got, "formatted as a JSON instance")
	assert.Contains(t, got, "```")
	assert.Contains(t, got, `"name"`)
	assert.Contains(t, got, s.JSON())
}

func TestValidateRequiredAndUnknownKeys(t *testing.T) {
	s := MustObject("widget", map[string]any{
		"name": Str(""),
	}, "name")

	require.NoError(t, s.Validate([]byte(`{"name":"a"}`)))
	assert.Error(t, s.Validate([]byte(`{}`)), "missing required key must fail")
	assert.Error(t, s.Validate([]byte(`{"name":"a","extra":1}`)), "undeclared key must fail")
	assert.Error(t, s.Validate([]byte(`not json`)))
}

func TestValidateEnumIsCaseSensitive(t *testing.T) {
	s := MustObject("verdict", map[string]any{
		"compliance": StrEnum("", "conform", "non-conform"),
	}, "compliance")

	require.NoError(t, s.Validate([]byte(`{"compliance":"conform"}`)))
	assert.Error(t, s.Validate([]byte(`{"compliance":"Conform"}`)))
	assert.Error(t, s.Validate([]byte(`{"compliance":"unknown"}`)))
}

func TestValidateNullableNumber(t *testing.T) {
	s := MustObject("amount", map[string]any{
		"total": NullableNumber(""),
	}, "total")

	require.NoError(t, s.Validate([]byte(`{"total":12.5}`)))
	require.NoError(t, s.Validate([]byte(`{"total":null}`)))
	assert.Error(t, s.Validate([]byte(`{"total":"12.5"}`)), "numeric strings are not coerced")
}

func TestValidateNullableEnumAdmitsNull(t *testing.T) {
	s := MustObject("policy", map[string]any{
		"logistics_by": NullableStrEnum("", "vendor", "buyer"),
	}, "logistics_by")

	require.NoError(t, s.Validate([]byte(`{"logistics_by":"vendor"}`)))
	require.NoError(t, s.Validate([]byte(`{"logistics_by":null}`)))
	assert.Error(t, s.Validate([]byte(`{"logistics_by":"courier"}`)))
}

func TestItemListEnvelope(t *testing.T) {
	s := ItemList("things", "", Object("", map[string]any{
		"id": Str(""),
	}, "id"))

	require.NoError(t, s.Validate([]byte(`{"item_list":[{"id":"a"},{"id":"b"}]}`)))
	require.NoError(t, s.Validate([]byte(`{"item_list":[]}`)))
	assert.Error(t, s.Validate([]byte(`[{"id":"a"}]`)), "bare arrays bypass the envelope")
}

func TestMaxLen(t *testing.T) {
	s := MustObject("note", map[string]any{
		"rationale": MaxLen(Str(""), 10),
	}, "rationale")

	require.NoError(t, s.Validate([]byte(`{"rationale":"short"}`)))
	assert.Error(t, s.Validate([]byte(`{"rationale":"`+strings.Repeat("x", 11)+`"}`)))
}

func TestDewrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"markdown fence", "```markdown\nPage one text\n```", "Page one text"},
		{"surrounding whitespace", "  \n{\"a\":1}\n\t", `{"a":1}`},
		{"fence mid-text", "prefix ```json{\"a\":1}``` suffix", `prefix {"a":1} suffix`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dewrap(tt.in))
		})
	}
}
