package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const healthKeyTTL = time.Minute

// Healthcheck returns a readiness check that writes a short-lived key under
// keyPrefix. Links and rate-limit buckets are written on every request, so a
// server that answers PING but rejects writes, like a read-only replica, is
// reported as not ready.
func Healthcheck(client redis.UniversalClient, keyPrefix string) func(context.Context) error {
	key := keyPrefix + "healthcheck"
	return func(ctx context.Context) error {
		if err := client.Set(ctx, key, time.Now().Unix(), healthKeyTTL).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
