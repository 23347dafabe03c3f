package validator

import "regexp"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// HexColor validates a #RRGGBB color literal.
func HexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return hexColorRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a color in #RRGGBB form",
			TranslationKey: "validation.hex_color",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
