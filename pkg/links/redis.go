package links

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Links are stored as hashes at <prefix>link:<code>.
var (
	insertScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
redis.call("HSET", KEYS[1], "id", ARGV[1], "destination", ARGV[2], "visits", 0, "created_at", ARGV[3])
return 1
`)

	incrementScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return -1
end
return redis.call("HINCRBY", KEYS[1], "visits", 1)
`)
)

// RedisRepository stores links in Redis hashes.
type RedisRepository struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisRepository(client redis.UniversalClient, prefix string) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) key(code string) string {
	return r.prefix + "link:" + code
}

func (r *RedisRepository) Insert(ctx context.Context, link Link) error {
	created, err := insertScript.Run(ctx, r.client, []string{r.key(link.Code)},
		link.ID.String(),
		link.Destination,
		link.CreatedAt.UTC().Format(time.RFC3339Nano),
	).Int()
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}
	if created == 0 {
		return ErrCodeTaken
	}
	return nil
}

func (r *RedisRepository) FindByCode(ctx context.Context, code string) (Link, error) {
	fields, err := r.client.HGetAll(ctx, r.key(code)).Result()
	if err != nil {
		return Link{}, fmt.Errorf("find link: %w", err)
	}
	if len(fields) == 0 {
		return Link{}, ErrNotFound
	}

	id, err := uuid.Parse(fields["id"])
	if err != nil {
		return Link{}, errors.Join(fmt.Errorf("corrupt link %q", code), err)
	}
	visits, err := strconv.ParseInt(fields["visits"], 10, 64)
	if err != nil {
		return Link{}, errors.Join(fmt.Errorf("corrupt link %q", code), err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return Link{}, errors.Join(fmt.Errorf("corrupt link %q", code), err)
	}

	return Link{
		ID:          id,
		Code:        code,
		Destination: fields["destination"],
		Visits:      visits,
		CreatedAt:   createdAt,
	}, nil
}

func (r *RedisRepository) IncrementVisits(ctx context.Context, code string) (int64, error) {
	visits, err := incrementScript.Run(ctx, r.client, []string{r.key(code)}).Int64()
	if err != nil {
		return 0, fmt.Errorf("increment visits: %w", err)
	}
	if visits < 0 {
		return 0, ErrNotFound
	}
	return visits, nil
}
