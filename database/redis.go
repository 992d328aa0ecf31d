package database

import (
	"context"
	"time"

	"api/config"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var REDIS *redis.Client

// InitRedis initializes the shared Redis client used for response caching.
// A cache outage is not fatal, handlers fall back to the database.
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := REDIS.Ping(ctx).Err(); err != nil {
		log.Warnf("Redis not reachable at %s: %v", config.RedisAddress, err)
	}
}
