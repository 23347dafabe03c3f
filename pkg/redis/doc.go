// Package redis connects to Redis with go-redis v9 and exposes a health
// check for readiness checks.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	server.AddReadinessCheck("redis", redis.Healthcheck(client, cfg.KeyPrefix))
//
// Connect pings the server and retries up to RetryAttempts times, waiting
// RetryInterval between attempts, until ConnectTimeout elapses.
package redis
