package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/svitclubs/club-management-backend/config"
)

var redisClient *redis.Client

var redisCtx = context.Background()

// InitRedis connects the shared client used for session records, refresh
// tokens and vote registries.
func InitRedis(cfg *config.Config) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(redisCtx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func SetToken(key, value string, ttl time.Duration) error {
	return redisClient.Set(redisCtx, key, value, ttl).Err()
}

func GetToken(key string) (string, error) {
	return redisClient.Get(redisCtx, key).Result()
}

func DeleteToken(key string) error {
	return redisClient.Del(redisCtx, key).Err()
}

// RegisterVote adds userID to the idea's voter set. Returns false when the
// user already voted. Only consulted when vote dedupe is enabled.
func RegisterVote(ideaID, userID string) (bool, error) {
	added, err := redisClient.SAdd(redisCtx, "idea_voters:"+ideaID, userID).Result()
	if err != nil {
		return false, err
	}
	return added == 1, nil
}

// RedisStore adapts the package-level helpers to the small store interfaces
// the auth and idea services accept, so tests can substitute in-memory fakes.
type RedisStore struct{}

func (RedisStore) Set(key, value string, ttl time.Duration) error { return SetToken(key, value, ttl) }
func (RedisStore) Get(key string) (string, error)                 { return GetToken(key) }
func (RedisStore) Delete(key string) error                        { return DeleteToken(key) }
func (RedisStore) Register(ideaID, userID string) (bool, error)   { return RegisterVote(ideaID, userID) }
