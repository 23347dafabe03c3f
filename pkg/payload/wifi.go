package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Wi-Fi authentication types understood by phone network managers.
const (
	SecurityWPA    = "WPA"
	SecurityWPA2   = "WPA2"
	SecurityWEP    = "WEP"
	SecurityNoPass = "nopass"
)

// WiFi encodes network credentials in the WIFI: URI scheme.
type WiFi struct {
	SSID     string `field:"ssid"`
	Password string `field:"password"`
	Security string `field:"security"`
	Hidden   bool   `field:"hidden"`
}

func (WiFi) Kind() Kind { return KindWiFi }
func (WiFi) isPayload() {}

func (p WiFi) Validate() error {
	sec := strings.ToUpper(strings.TrimSpace(p.Security))
	needsPassword := sec == SecurityWPA || sec == SecurityWPA2 || sec == SecurityWEP

	return validator.Apply(
		validator.Required("ssid", p.SSID),
		validator.When(needsPassword && p.Password == "",
			validator.Fail("password", "password is required for "+sec+" security", "validation.wifi_password")),
	)
}

func (p WiFi) Build() (string, error) {
	if p.SSID == "" {
		return "", buildError(ErrMissingSSID)
	}

	elements := []string{"S:" + p.SSID, "T:" + p.securityType()}
	if p.Password != "" {
		elements = append(elements, "P:"+p.Password)
	}
	if p.Hidden {
		elements = append(elements, "H:true")
	}
	return "WIFI:" + strings.Join(elements, ";") + ";;", nil
}

// securityType keeps recognized types, otherwise picks nopass for open
// networks and WPA for anything protected by a password.
func (p WiFi) securityType() string {
	switch sec := strings.ToUpper(strings.TrimSpace(p.Security)); sec {
	case SecurityWPA, SecurityWPA2, SecurityWEP:
		return sec
	}
	if p.Password == "" {
		return SecurityNoPass
	}
	return SecurityWPA
}
