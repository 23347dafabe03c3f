package validator

import (
	"fmt"
	"time"
)

// After validates that value is strictly later than other.
// otherField names the field being compared against in the message.
func After(field string, value time.Time, otherField string, other time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(other)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be later than %s", otherField),
			TranslationKey: "validation.after",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}
