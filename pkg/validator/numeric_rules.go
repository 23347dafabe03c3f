package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var decimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Between validates that min <= value <= max.
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// Number validates that a string is a plain decimal number.
func Number(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseNumber(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ParseNumber parses a trimmed plain decimal such as "-12.50". Exponents,
// hex floats, digit separators and special values like NaN are rejected so
// the text can be embedded in a payload as typed.
func ParseNumber(value string) (float64, bool) {
	v := strings.TrimSpace(value)
	if !decimalRegex.MatchString(v) {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
