package notify

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStreamChannel struct {
	rdb    *redis.Client
	stream string
}

// NewRedisStreamChannel appends events to a redis stream for downstream consumers.
func NewRedisStreamChannel(rdb *redis.Client, stream string) Channel {
	return redisStreamChannel{
		rdb:    rdb,
		stream: stream,
	}
}

func (c redisStreamChannel) Name() string {
	return "redis_stream"
}

func (c redisStreamChannel) Send(ctx context.Context, event Event) error {
	entityTypes := make([]string, 0, len(event.EntityTypes))
	for _, t := range event.EntityTypes {
		entityTypes = append(entityTypes, string(t))
	}
	return c.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: c.stream,
		Values: map[string]interface{}{
			"type":         string(event.Type),
			"campaign_id":  event.CampaignID,
			"submitted_by": event.SubmittedBy,
			"entity_types": strings.Join(entityTypes, ","),
			"timestamp":    event.Timestamp.UTC().Format(time.RFC3339),
		},
	}).Err()
}
