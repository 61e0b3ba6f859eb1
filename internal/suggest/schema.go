package suggest

import (
	"encoding/json"
	"reflect"
)

// FormatInstructions renders the machine-readable shape description embedded
// in the structured-output prompt: the JSON Schema of Bundle, derived by
// reflection, with the exact cardinality of the suggestion list attached.
func FormatInstructions() string {
	schema := schemaForType(reflect.TypeOf(Bundle{}))
	if props, ok := schema["properties"].(map[string]any); ok {
		if normal, ok := props["normal_suggestions"].(map[string]any); ok {
			normal["minItems"] = normalCount
			normal["maxItems"] = normalCount
		}
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		// The schema is built from static types; marshaling cannot fail.
		panic(err)
	}
	return "The output should be a JSON object matching this schema:\n" + string(data)
}

// schemaForType builds a minimal JSON Schema document for t. It covers only
// the kinds the suggestion shape needs (structs, slices, strings) plus the
// scalar kinds, defaulting anything else to string.
func schemaForType(t reflect.Type) map[string]any {
	switch t.Kind() {
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Slice, reflect.Array:
		return map[string]any{
			"type":  "array",
			"items": schemaForType(t.Elem()),
		}
	case reflect.Struct:
		props := make(map[string]any)
		var required []string
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := jsonFieldName(f)
			if name == "" {
				continue
			}
			props[name] = schemaForType(f.Type)
			required = append(required, name)
		}
		return map[string]any{
			"type":       "object",
			"properties": props,
			"required":   required,
		}
	default:
		return map[string]any{"type": "string"}
	}
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return f.Name
	}
	for i, ch := range tag {
		if ch == ',' {
			if i == 0 {
				return f.Name
			}
			return tag[:i]
		}
	}
	return tag
}
