// Package payload turns typed content descriptions into the exact text that
// gets embedded in a QR symbol.
//
// Every supported content kind is a struct implementing the sealed Payload
// interface: URL, Text, WiFi, VCard, MeCard, Email, SMS, Tel, Geo, Event and
// EPC. Each one knows how to validate itself and how to build its canonical
// string (vCard 3.0, MeCard, WIFI:, mailto:, SMSTO:, tel:, geo:, iCalendar
// VEVENT, EPC/SCT). Builders are pure: the same input always produces the
// same string, with no clock, randomness or locale involved.
//
// # Validation and building
//
// Validate evaluates every rule of a kind and reports all failures together
// as validator.ValidationErrors. Build enforces only the invariants it needs
// to produce a usable string and fails with an error wrapping ErrBuild.
// Encode runs both:
//
//	content, err := payload.Encode(payload.WiFi{SSID: "Home", Password: "secret"})
//	// content == "WIFI:S:Home;T:WPA;P:secret;;"
//
// # Dynamic input
//
// FromFields converts a kind tag plus a map of named fields (as received
// from a form or JSON body) into the matching typed payload. Field names are
// the `field` struct tags of the payload types.
package payload
