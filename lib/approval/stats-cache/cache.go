package statscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	approvalapimodels "dashboard-approval-backend/models/api/approval"
)

const keyPrefix = "dashboard:approval-stats:"

type Provider interface {
	Get(ctx context.Context, scope string) (*approvalapimodels.Statistics, bool)
	Set(ctx context.Context, scope string, stats approvalapimodels.Statistics)
	Invalidate(ctx context.Context)
}

func NewInstance(rdb *redis.Client, ttl time.Duration) Provider {
	return &impl{
		rdb: rdb,
		ttl: ttl,
	}
}

type impl struct {
	rdb *redis.Client
	ttl time.Duration
}

func (i impl) Get(ctx context.Context, scope string) (*approvalapimodels.Statistics, bool) {
	raw, err := i.rdb.Get(ctx, keyPrefix+scope).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.WithError(err).Warn("statistics cache read failed")
		}
		return nil, false
	}
	stats := approvalapimodels.Statistics{}
	if err = json.Unmarshal(raw, &stats); err != nil {
		log.WithError(err).Warn("statistics cache entry is broken")
		return nil, false
	}
	return &stats, true
}

func (i impl) Set(ctx context.Context, scope string, stats approvalapimodels.Statistics) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err = i.rdb.Set(ctx, keyPrefix+scope, raw, i.ttl).Err(); err != nil {
		log.WithError(err).Warn("statistics cache write failed")
	}
}

func (i impl) Invalidate(ctx context.Context) {
	iter := i.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	keys := []string{}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.WithError(err).Warn("statistics cache scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := i.rdb.Del(ctx, keys...).Err(); err != nil {
		log.WithError(err).Warn("statistics cache invalidation failed")
	}
}
