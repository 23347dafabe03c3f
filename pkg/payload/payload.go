package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/binder"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Kind identifies the semantic type of a payload.
type Kind string

const (
	KindURL    Kind = "url"
	KindText   Kind = "text"
	KindWiFi   Kind = "wifi"
	KindVCard  Kind = "vcard"
	KindMeCard Kind = "mecard"
	KindEmail  Kind = "email"
	KindSMS    Kind = "sms"
	KindTel    Kind = "tel"
	KindGeo    Kind = "geo"
	KindEvent  Kind = "event"
	KindEPC    Kind = "epc"
)

// Kinds lists every supported kind in presentation order.
func Kinds() []Kind {
	return []Kind{
		KindURL, KindText, KindWiFi, KindVCard, KindMeCard, KindEmail,
		KindSMS, KindTel, KindEvent, KindGeo, KindEPC,
	}
}

// ParseKind accepts a kind tag regardless of case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Payload is implemented by the eleven content structs of this package only.
type Payload interface {
	Kind() Kind
	// Validate reports every rule violation as validator.ValidationErrors.
	Validate() error
	// Build returns the canonical string embedded in the symbol.
	Build() (string, error)

	isPayload()
}

// Encode validates p and builds its canonical string.
func Encode(p Payload) (string, error) {
	if p == nil {
		return "", buildError(ErrUnknownKind)
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p.Build()
}

// FromFields decodes a field map into the payload type selected by kind.
// Values may be strings, booleans, numbers or json.Number; nil values are
// treated as absent. Keys not used by the kind are ignored.
func FromFields(kind string, fields map[string]any) (Payload, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, validator.ValidationErrors{{
			Field:          "kind",
			Message:        "unknown content kind",
			TranslationKey: "validation.kind",
		}}
	}

	values := make(map[string][]string, len(fields))
	for key, v := range fields {
		if s, ok := stringify(v); ok {
			values[key] = []string{s}
		}
	}

	switch k {
	case KindURL:
		return decode[URL](values)
	case KindText:
		return decode[Text](values)
	case KindWiFi:
		return decode[WiFi](values)
	case KindVCard:
		return decode[VCard](values)
	case KindMeCard:
		return decode[MeCard](values)
	case KindEmail:
		return decode[Email](values)
	case KindSMS:
		return decode[SMS](values)
	case KindTel:
		return decode[Tel](values)
	case KindGeo:
		return decode[Geo](values)
	case KindEvent:
		return decode[Event](values)
	case KindEPC:
		return decode[EPC](values)
	}
	return nil, buildError(ErrUnknownKind)
}

func decode[T Payload](values map[string][]string) (Payload, error) {
	var p T
	if err := binder.Decode(&p, "field", values); err != nil {
		var fe *binder.FieldError
		if errors.As(err, &fe) {
			return nil, validator.ValidationErrors{{
				Field:          fe.Key,
				Message:        "invalid value",
				TranslationKey: "validation.invalid",
			}}
		}
		return nil, err
	}
	return p, nil
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return fmt.Sprint(t), true
	}
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
