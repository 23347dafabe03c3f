package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/qrkit/modules/generator"
	"github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/links"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(logger.ParseEnvironment(cfg.Env), cfg.ServiceName),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("qrkit stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serverCfg httpserver.Config
	if err := config.Load(&serverCfg); err != nil {
		return err
	}
	server := httpserver.New(serverCfg, httpserver.WithLogger(log))

	st, err := openStores(ctx, cfg.LinkStore, server, log)
	if err != nil {
		return err
	}
	defer st.close()

	var limitCfg ratelimiter.Config
	if err := config.Load(&limitCfg); err != nil {
		return err
	}
	limiter, err := ratelimiter.NewBucket(st.rateLimit, limitCfg)
	if err != nil {
		return err
	}

	router := generator.Router(generator.RouterOptions{
		Encoder:         qrcode.NewEncoder(qrcode.WithLogger(log)),
		Links:           links.NewService(st.links, links.WithLogger(log), links.WithCodeLength(cfg.LinkCodeLength)),
		TrackingBaseURL: cfg.TrackingBaseURL,
		Health:          server,
		RateLimiter:     limiter,
		Logger:          log,
	})

	log.InfoContext(ctx, "starting qrkit",
		slog.String("link_store", cfg.LinkStore),
		slog.String("addr", server.Addr()),
	)
	return server.Run(ctx, router)
}
