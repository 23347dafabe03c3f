// Package binder decodes loosely typed request data into tagged Go structs.
//
// It is used in two places: payload.FromFields decodes a caller-supplied
// map of named fields into one of the typed payload structs, and the HTTP
// layer binds form and JSON request bodies into request structs.
//
// # Struct tags
//
// Decode reads the tag name passed by the caller (for example "field" or
// "form"):
//
//	type WiFi struct {
//		SSID     string `field:"ssid"`
//		Hidden   bool   `field:"hidden"`
//		Internal string `field:"-"`           // skipped
//		Rest     map[string]string `field:"*"` // every key no other field claimed
//	}
//
// Supported field types are string, signed and unsigned integers, floats and
// bool (true/false, on/off, yes/no, 1/0, empty = false), pointers to those
// and slices of those. Fields without a tag use the lower-cased field name.
//
// # Errors
//
// Conversion failures are reported as *FieldError, which carries the source
// key so callers can attach the failure to the right form field. All
// errors wrap one of the package sentinels (ErrInvalidTarget,
// ErrFailedToParseForm, ErrFailedToParseJSON, ErrUnsupportedMediaType,
// ErrMissingContentType).
package binder
