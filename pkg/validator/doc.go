// Package validator provides small declarative validation rules used by the
// QR payload builders and the HTTP request models.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates rules in order and collects every failure into
// a ValidationErrors value, so callers can report all problems with a payload
// in one response instead of the first one only.
//
// Core building blocks:
//   - Rule: a Check func plus error metadata
//   - ValidationError: a single field failure with a translation key
//   - ValidationErrors: a slice implementing error, matched by ErrValidationFailed
//   - Numeric: generic constraint used by Between
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("ssid", ssid),
//	    validator.HexColor("foreground", foreground),
//	    validator.When(security != "nopass", validator.Required("password", password)),
//	)
//	if validator.IsValidationError(err) {
//	    fields := validator.ExtractValidationErrors(err).Map()
//	    _ = fields
//	}
//
// Merge combines errors from several validation passes. Validation failures
// are flattened into one ValidationErrors value and any other error is joined
// alongside it.
//
// # Error Handling
//
// ValidationErrors satisfies errors.Is(err, ErrValidationFailed). Each entry
// carries a TranslationKey such as "validation.required" and the values
// needed to render a localized message.
package validator
