package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredOneOf validates that at least one of the values is non-blank.
// The error is reported under field, which usually names the group.
func RequiredOneOf(field string, names []string, values ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if strings.TrimSpace(v) != "" {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("at least one of %s is required", strings.Join(names, ", ")),
			TranslationKey: "validation.required_one_of",
			TranslationValues: map[string]any{
				"field":  field,
				"fields": names,
			},
		},
	}
}

// HasPrefix validates that value starts with one of the prefixes.
func HasPrefix(field, value string, prefixes []string) Rule {
	return Rule{
		Check: func() bool {
			for _, p := range prefixes {
				if strings.HasPrefix(value, p) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must start with %s", strings.Join(prefixes, " or ")),
			TranslationKey: "validation.prefix",
			TranslationValues: map[string]any{
				"field":    field,
				"prefixes": prefixes,
			},
		},
	}
}

// When returns rule unchanged if cond holds, otherwise a rule that always passes.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Rule{Check: func() bool { return true }, Error: rule.Error}
}

// Fail returns a rule that always fails with the given message.
// Useful when the check has already been performed, e.g. while parsing.
func Fail(field, message, key string) Rule {
	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
