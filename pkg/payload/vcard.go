package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// VCard encodes a contact as a vCard 3.0 record.
type VCard struct {
	FirstName   string `field:"firstname"`
	LastName    string `field:"lastname"`
	DisplayName string `field:"displayname"`
	// Name is a raw "last;first" structured name used when the parts are absent.
	Name      string `field:"name"`
	Org       string `field:"org"`
	Title     string `field:"title"`
	Nickname  string `field:"nickname"`
	Email     string `field:"email"`
	URL       string `field:"url"`
	Phone     string `field:"phone"`
	Mobile    string `field:"mobile"`
	HomePhone string `field:"homephone"`
	Fax       string `field:"fax"`
	// Address is a preformatted ADR value; it wins over the parts below.
	Address  string `field:"address"`
	Street   string `field:"street"`
	City     string `field:"city"`
	Region   string `field:"region"`
	Postcode string `field:"postcode"`
	Country  string `field:"country"`
	Birthday string `field:"birthday"`
	Note     string `field:"note"`
}

func (VCard) Kind() Kind { return KindVCard }
func (VCard) isPayload() {}

func (p VCard) Validate() error {
	return validator.Apply(
		validator.RequiredOneOf("name", []string{"firstname", "lastname", "displayname"},
			p.FirstName, p.LastName, p.DisplayName),
	)
}

func (p VCard) Build() (string, error) {
	fn := p.formattedName()
	if fn == "" {
		return "", buildError(ErrMissingName)
	}

	lines := []string{"BEGIN:VCARD", "VERSION:3.0", "FN:" + fn, "N:" + p.structuredName(fn)}

	optional := []struct{ prefix, value string }{
		{"ORG:", p.Org},
		{"TITLE:", p.Title},
		{"NICKNAME:", p.Nickname},
		{"EMAIL;TYPE=INTERNET:", p.Email},
		{"URL:", p.URL},
		{"TEL;TYPE=WORK,VOICE:", p.Phone},
		{"TEL;TYPE=CELL,VOICE:", p.Mobile},
		{"TEL;TYPE=HOME,VOICE:", p.HomePhone},
		{"TEL;TYPE=FAX:", p.Fax},
		{"ADR;TYPE=WORK:", p.address()},
	}
	for _, o := range optional {
		if o.value != "" {
			lines = append(lines, o.prefix+o.value)
		}
	}

	if bday, ok := parseBirthday(p.Birthday); ok {
		lines = append(lines, "BDAY:"+bday.Format(isoDate))
	}
	if p.Note != "" {
		lines = append(lines, "NOTE:"+p.Note)
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n"), nil
}

func (p VCard) formattedName() string {
	switch {
	case p.DisplayName != "":
		return p.DisplayName
	case p.FirstName != "" && p.LastName != "":
		return strings.TrimSpace(p.FirstName + " " + p.LastName)
	case p.FirstName != "":
		return p.FirstName
	case p.LastName != "":
		return p.LastName
	case p.Name != "":
		return strings.TrimSpace(strings.ReplaceAll(p.Name, ";", " "))
	}
	return ""
}

func (p VCard) structuredName(fn string) string {
	switch {
	case p.Name != "":
		return p.Name
	case p.LastName != "" || p.FirstName != "":
		return p.LastName + ";" + p.FirstName
	}
	return strings.Replace(fn, " ", ";", 1)
}

// address returns ADR components: post box;extended;street;city;region;code;country.
func (p VCard) address() string {
	if p.Address != "" {
		return p.Address
	}
	parts := []string{p.Street, p.City, p.Region, p.Postcode, p.Country}
	for _, part := range parts {
		if part != "" {
			return ";;" + strings.Join(parts, ";")
		}
	}
	return ""
}
