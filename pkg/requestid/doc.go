// Package requestid assigns a correlation ID to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a UUIDv4 otherwise. The ID is stored in the request context and
// echoed in the response header so that clients can quote it when reporting
// a failed QR code generation.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// LogExtractor plugs the ID into every log record written with a request
// context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
package requestid
