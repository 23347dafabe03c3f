package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// MeCard encodes a contact in the compact MECARD: format.
type MeCard struct {
	FirstName string `field:"firstname"`
	LastName  string `field:"lastname"`
	// Name is emitted as-is when set, e.g. "Doe,John".
	Name     string `field:"name"`
	Reading  string `field:"reading"`
	Nickname string `field:"nickname"`
	Phone    string `field:"phone"`
	Email    string `field:"email"`
	URL      string `field:"url"`
	Memo     string `field:"memo"`
	Address  string `field:"address"`
	Street   string `field:"street"`
	City     string `field:"city"`
	Birthday string `field:"birthday"`
}

func (MeCard) Kind() Kind { return KindMeCard }
func (MeCard) isPayload() {}

func (p MeCard) Validate() error {
	return validator.Apply(
		validator.RequiredOneOf("name", []string{"firstname", "lastname"}, p.FirstName, p.LastName),
	)
}

func (p MeCard) Build() (string, error) {
	var name string
	switch {
	case p.Name != "":
		name = p.Name
	case p.LastName != "" && p.FirstName != "":
		name = p.LastName + "," + p.FirstName
	case p.LastName != "":
		name = p.LastName
	case p.FirstName != "":
		name = p.FirstName
	default:
		return "", buildError(ErrMissingName)
	}

	var b strings.Builder
	b.WriteString("MECARD:")
	field := func(key, value string) {
		if value != "" {
			b.WriteString(key + ":" + value + ";")
		}
	}

	field("N", name)
	field("SOUND", p.Reading)
	field("NICKNAME", p.Nickname)
	field("TEL", p.Phone)
	field("EMAIL", p.Email)
	field("URL", p.URL)
	field("NOTE", p.Memo)
	field("ADR", p.address())
	if bday, ok := parseBirthday(p.Birthday); ok {
		field("BDAY", bday.Format(compactDate))
	}

	b.WriteString(";")
	return b.String(), nil
}

func (p MeCard) address() string {
	if p.Address != "" {
		return p.Address
	}
	var parts []string
	for _, s := range []string{p.Street, p.City} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
