// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives the request already decoded by one or more Bind
// functions and returns a Response. Responses render JSON envelopes, files
// and redirects. Errors returned from binding or rendering go to an
// ErrorHandler, which writes a JSON error envelope:
//
//	{"error": {"code": "validation_error", "message": "invalid input",
//	           "details": {"ssid": "SSID is required"}, "request_id": "..."}}
//
// NewErrorHandler accepts Classifiers so that a module can map its domain
// errors to status codes before the generic mapping applies.
package handler
