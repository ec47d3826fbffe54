package initializers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"dashboard-approval-backend/config"
)

// InitRedis connects to redis when it is configured. Without it statistics are not cached
// and the event stream channel is not registered.
func InitRedis(ctx context.Context) *redis.Client {
	if config.Conf.Redis.URL == "" {
		log.Info("redis is not configured")
		return nil
	}
	opt, err := redis.ParseURL(config.Conf.Redis.URL)
	if err != nil {
		panic(err.Error())
	}
	rdb := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = rdb.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Error("redis ping failed")
	}
	log.Info("redis client initialized")
	return rdb
}
