package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// URL encodes a web address verbatim.
type URL struct {
	URL string `field:"url"`
}

func (URL) Kind() Kind { return KindURL }
func (URL) isPayload() {}

func (p URL) Validate() error {
	return validator.Apply(
		validator.Required("url", p.URL),
		validator.When(present(p.URL), validator.HasPrefix("url", p.URL, []string{"http://", "https://"})),
	)
}

func (p URL) Build() (string, error) {
	if !present(p.URL) {
		return "", buildError(ErrEmptyContent)
	}
	return p.URL, nil
}

// Text encodes free text verbatim.
type Text struct {
	Text string `field:"text"`
}

func (Text) Kind() Kind { return KindText }
func (Text) isPayload() {}

func (p Text) Validate() error {
	return validator.Apply(validator.Required("text", p.Text))
}

func (p Text) Build() (string, error) {
	if strings.TrimSpace(p.Text) == "" {
		return "", buildError(ErrEmptyContent)
	}
	return p.Text, nil
}

// Tel encodes a tel: URI.
type Tel struct {
	Number string `field:"number"`
}

func (Tel) Kind() Kind { return KindTel }
func (Tel) isPayload() {}

func (p Tel) Validate() error {
	return validator.Apply(validator.Required("number", p.Number))
}

func (p Tel) Build() (string, error) {
	if p.Number == "" {
		return "", buildError(ErrMissingNumber)
	}
	return "tel:" + p.Number, nil
}

// SMS encodes an SMSTO: URI with an optional message body.
type SMS struct {
	To   string `field:"to"`
	Body string `field:"body"`
}

func (SMS) Kind() Kind { return KindSMS }
func (SMS) isPayload() {}

func (p SMS) Validate() error {
	return validator.Apply(validator.Required("to", p.To))
}

func (p SMS) Build() (string, error) {
	if p.To == "" {
		return "", buildError(ErrMissingRecipient)
	}
	if p.Body == "" {
		return "SMSTO:" + p.To, nil
	}
	return "SMSTO:" + p.To + ":" + p.Body, nil
}
