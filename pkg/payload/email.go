package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Email encodes a mailto: URI.
type Email struct {
	To      string `field:"to"`
	Subject string `field:"subject"`
	Body    string `field:"body"`
}

func (Email) Kind() Kind { return KindEmail }
func (Email) isPayload() {}

func (p Email) Validate() error {
	return validator.Apply(validator.Required("to", p.To))
}

func (p Email) Build() (string, error) {
	if p.To == "" {
		return "", buildError(ErrMissingRecipient)
	}

	var params []string
	if p.Subject != "" {
		params = append(params, "subject="+queryEscape(p.Subject))
	}
	if p.Body != "" {
		params = append(params, "body="+queryEscape(p.Body))
	}

	if len(params) == 0 {
		return "mailto:" + p.To, nil
	}
	return "mailto:" + p.To + "?" + strings.Join(params, "&"), nil
}
