package extract

// ScalarFieldNames lists the flat fields of the onboarding form, in form
// order. The same fixed schema is used for every document kind.
var ScalarFieldNames = []string{
	"name", "idNumber", "birthday", "gender", "bloodType", "marriage",
	"military", "license", "transportation", "height", "weight",
	"phone", "mobile", "email", "contactAddress", "residentAddress",
	"emergencyName", "emergencyRelation", "emergencyPhone", "emergencyMobile",
	"employeeNumber", "position", "department", "onboardingDate",
	"insuranceDate", "salary",
}

// BuildEmployeeSchema returns the fixed extraction schema as a JSON-Schema
// (draft 2020-12 subset) generic map. We send it to the model as a
// structured-output constraint and also use it locally to validate the
// response. Every field is required: unknown scalars must come back as
// empty strings and absent groups as empty arrays, never as omissions.
func BuildEmployeeSchema() map[string]any {
	props := map[string]any{}
	for _, name := range ScalarFieldNames {
		props[name] = stringProp()
	}
	props["education"] = map[string]any{
		"type": "array",
		"items": groupProp(
			"school", "major", "startYear", "endYear", "status",
		),
	}
	props["employment"] = map[string]any{
		"type": "array",
		"items": groupProp(
			"company", "position", "description", "years",
		),
	}

	required := make([]string, 0, len(props))
	for _, name := range ScalarFieldNames {
		required = append(required, name)
	}
	required = append(required, "education", "employment")

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func stringProp() map[string]any {
	return map[string]any{"type": "string"}
}

func groupProp(fields ...string) map[string]any {
	props := map[string]any{}
	for _, f := range fields {
		props[f] = stringProp()
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             fields,
	}
}
