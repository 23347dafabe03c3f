// Package generator exposes QR code generation and tracked links over HTTP.
//
//	r := chi.NewRouter()
//	r.Mount("/", generator.Router(generator.RouterOptions{
//		Encoder:         qrcode.NewEncoder(qrcode.WithLogger(log)),
//		Links:           links.NewService(repo, links.WithLogger(log)),
//		TrackingBaseURL: "https://qr.example.com/r/",
//		Health:          server,
//		Logger:          log,
//	}))
//
// Routes:
//
//	POST /qrcode        generate a file from a form or JSON body
//	POST /links         create a tracked link
//	GET  /links/{code}  link details and visit count
//	GET  /r/{code}      count a visit and redirect
//	GET  /healthz       liveness
//	GET  /readyz        readiness
package generator
