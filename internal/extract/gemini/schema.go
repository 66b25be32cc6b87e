package gemini

// toResponseSchema converts the local JSON-Schema map into the Schema shape
// generateContent expects: upper-case type names, no additionalProperties.
// Only the subset our fixed schema uses (object/array/string) is handled.
func toResponseSchema(schema map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range schema {
		switch k {
		case "additionalProperties":
			// not part of the generateContent schema language
		case "type":
			if s, ok := v.(string); ok {
				out["type"] = typeName(s)
			}
		case "properties":
			if props, ok := v.(map[string]any); ok {
				converted := map[string]any{}
				for name, p := range props {
					if pm, ok := p.(map[string]any); ok {
						converted[name] = toResponseSchema(pm)
					}
				}
				out["properties"] = converted
			}
		case "items":
			if im, ok := v.(map[string]any); ok {
				out["items"] = toResponseSchema(im)
			}
		default:
			out[k] = v
		}
	}
	return out
}

func typeName(t string) string {
	switch t {
	case "object":
		return "OBJECT"
	case "array":
		return "ARRAY"
	case "string":
		return "STRING"
	case "number":
		return "NUMBER"
	case "integer":
		return "INTEGER"
	case "boolean":
		return "BOOLEAN"
	}
	return t
}
