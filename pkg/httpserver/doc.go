// Package httpserver runs the HTTP listener with graceful shutdown and
// exposes liveness and readiness endpoints.
//
//	server := httpserver.New(cfg, httpserver.WithLogger(log))
//	server.AddReadinessCheck("redis", redis.Healthcheck(client, "qrkit:"))
//
//	r := chi.NewRouter()
//	r.Get("/healthz", server.LivenessHandler())
//	r.Get("/readyz", server.ReadinessHandler())
//
//	if err := server.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled, the process receives SIGINT or SIGTERM,
// or Shutdown is called.
package httpserver
