package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// forwardHeaders are consulted in order when the peer is a trusted proxy.
var forwardHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// FromRequest returns the client IP. Forwarding headers are honoured only
// when the direct peer is a loopback or private address, so a client that
// connects directly cannot pick its own rate limit key.
func FromRequest(r *http.Request) string {
	if ip := FromContext(r.Context()); ip != "" {
		return ip
	}

	peer := parse(r.RemoteAddr)
	if !peer.IsValid() {
		return ""
	}
	if !trustedProxy(peer) {
		return peer.String()
	}

	for _, name := range forwardHeaders {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parse(candidate); ip.IsValid() {
				return ip.String()
			}
		}
	}
	return peer.String()
}

func trustedProxy(ip netip.Addr) bool {
	return ip.IsLoopback() || ip.IsPrivate()
}

// parse accepts "ip" or "ip:port" and unmaps IPv4-in-IPv6 addresses.
func parse(s string) netip.Addr {
	s = strings.TrimSpace(s)
	if host, _, err := net.SplitHostPort(s); err == nil {
		s = host
	}
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}
	}
	return ip.Unmap().WithZone("")
}
