// Package ratelimiter throttles requests with a token bucket.
//
// Each key (usually the client IP) owns a bucket of Capacity tokens that
// regains RefillRate tokens every RefillInterval. A request consumes one
// token and is denied when the bucket is empty. Denied requests do not
// consume tokens.
//
// Two stores are provided: MemoryStore for a single process and RedisStore,
// which evaluates the bucket atomically in a Lua script so that several
// instances share limits.
//
//	bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), cfg)
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByIP)).Post("/qrcode", h)
package ratelimiter
