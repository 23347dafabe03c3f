package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// EPC block header values for SEPA Credit Transfer, version 002, UTF-8.
const (
	epcServiceTag     = "BCD"
	epcVersion        = "002"
	epcCharacterSet   = "1"
	epcIdentification = "SCT"
	defaultCurrency   = "EUR"
)

// EPC encodes a SEPA credit transfer as an EPC QR block.
// IBAN checksums and currency codes are not verified.
type EPC struct {
	Name       string `field:"name"`
	IBAN       string `field:"iban"`
	Amount     string `field:"amount"`
	Currency   string `field:"currency"`
	BIC        string `field:"bic"`
	Purpose    string `field:"purpose"`
	Reference  string `field:"reference"`
	Remittance string `field:"remittance"`
}

func (EPC) Kind() Kind { return KindEPC }
func (EPC) isPayload() {}

func (p EPC) Validate() error {
	return validator.Apply(
		validator.Required("name", p.Name),
		validator.Required("iban", p.IBAN),
		validator.Required("amount", p.Amount),
		validator.When(present(p.Amount), validator.Number("amount", p.Amount)),
	)
}

func (p EPC) Build() (string, error) {
	if p.Name == "" || p.IBAN == "" || !present(p.Amount) {
		return "", buildError(ErrMissingPaymentField)
	}
	amount := strings.TrimSpace(p.Amount)
	if _, ok := validator.ParseNumber(amount); !ok {
		return "", buildError(ErrInvalidAmount)
	}

	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	fields := []string{
		epcServiceTag,
		epcVersion,
		epcCharacterSet,
		epcIdentification,
		p.BIC,
		p.Name,
		p.IBAN,
		currency + amount,
		p.Purpose,
		p.Reference,
		p.Remittance,
		"",
	}
	return strings.Join(fields, "\n"), nil
}
