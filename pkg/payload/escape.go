package payload

import (
	"net/url"
	"strings"
)

// queryEscape percent-encodes everything but RFC 3986 unreserved characters
// and writes spaces as %20.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// pathEscape is queryEscape that leaves '/' intact.
func pathEscape(s string) string {
	return strings.ReplaceAll(queryEscape(s), "%2F", "/")
}
