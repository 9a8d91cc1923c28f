package schema

// Builders for the schema primitives domain packages compose from. Each
// returns a plain map so declarations nest without intermediate types.

func Str(desc string) map[string]any {
	return withDesc(map[string]any{"type": "string"}, desc)
}

func StrEnum(desc string, values ...string) map[string]any {
	return withDesc(map[string]any{"type": "string", "enum": values}, desc)
}

func Bool(desc string) map[string]any {
	return withDesc(map[string]any{"type": "boolean"}, desc)
}

func Number(desc string) map[string]any {
	return withDesc(map[string]any{"type": "number"}, desc)
}

func Int(desc string) map[string]any {
	return withDesc(map[string]any{"type": "integer"}, desc)
}

// NullableNumber admits an explicit null for "not stated in the contract".
// Absent numeric data must surface as null, never as zero.
func NullableNumber(desc string) map[string]any {
	return withDesc(map[string]any{"type": []string{"number", "null"}}, desc)
}

func NullableInt(desc string) map[string]any {
	return withDesc(map[string]any{"type": []string{"integer", "null"}}, desc)
}

func NullableBool(desc string) map[string]any {
	return withDesc(map[string]any{"type": []string{"boolean", "null"}}, desc)
}

func NullableStr(desc string) map[string]any {
	return withDesc(map[string]any{"type": []string{"string", "null"}}, desc)
}

func NullableStrEnum(desc string, values ...string) map[string]any {
	vals := make([]any, 0, len(values)+1)
	for _, v := range values {
		vals = append(vals, v)
	}
	vals = append(vals, nil)
	return withDesc(map[string]any{"type": []string{"string", "null"}, "enum": vals}, desc)
}

func List(desc string, item map[string]any) map[string]any {
	return withDesc(map[string]any{"type": "array", "items": item}, desc)
}

func Object(desc string, props map[string]any, required ...string) map[string]any {
	m := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	if len(required) > 0 {
		m["required"] = required
	}
	return withDesc(m, desc)
}

// ItemList wraps an item declaration in the canonical list envelope the
// extraction prompts ask for: {"item_list": [...]}.
func ItemList(name, desc string, item map[string]any) *Schema {
	return MustObject(name, map[string]any{
		"item_list": List(desc, item),
	}, "item_list")
}

func withDesc(m map[string]any, desc string) map[string]any {
	if desc != "" {
		m["description"] = desc
	}
	return m
}

// MaxLen constrains a string declaration in place and returns it.
func MaxLen(m map[string]any, n int) map[string]any {
	m["maxLength"] = n
	return m
}
