package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// MarkOnce claims key for ttl and reports whether this caller won the claim.
// With no Redis configured every claim succeeds; the settings record is the
// dedup of last resort.
func MarkOnce(ctx context.Context, key string, ttl time.Duration) bool {
	if Rdb == nil {
		return true
	}
	ok, err := Rdb.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to mark reminder key in redis")
		return true
	}
	return ok
}
