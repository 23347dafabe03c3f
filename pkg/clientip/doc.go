// Package clientip resolves the address of the client behind an HTTP request.
//
// Forwarding headers (CF-Connecting-IP, DO-Connecting-IP, X-Forwarded-For,
// X-Real-IP) are trusted only when the request arrives from a loopback or
// private network peer, which is how the service sits behind a load
// balancer. Public peers are identified by their socket address.
//
//	r.Use(clientip.Middleware)
//	...
//	ip := clientip.FromContext(r.Context())
package clientip
