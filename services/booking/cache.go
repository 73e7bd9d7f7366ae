package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"stayhaven/utils"
)

// CalendarCache caches the default-window availability feed per apartment.
// A miss (or any backend error) just means the feed gets rebuilt.
type CalendarCache interface {
	GetFeed(ctx context.Context, apartmentID string) (*CalendarFeed, bool)
	SetFeed(ctx context.Context, apartmentID string, feed *CalendarFeed)
	Invalidate(ctx context.Context, apartmentID string)
}

// RedisCalendarCache stores feeds as JSON blobs with a short TTL. Writes to
// the calendar or the booking set invalidate eagerly; the TTL is the
// backstop for anything that slips past.
type RedisCalendarCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCalendarCache(client *redis.Client, ttl time.Duration) *RedisCalendarCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisCalendarCache{Client: client, TTL: ttl}
}

func calendarKey(apartmentID string) string {
	return fmt.Sprintf("calendar:%s", apartmentID)
}

func (c *RedisCalendarCache) GetFeed(ctx context.Context, apartmentID string) (*CalendarFeed, bool) {
	raw, err := c.Client.Get(ctx, calendarKey(apartmentID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("calendar cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var feed CalendarFeed
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, false
	}
	return &feed, true
}

func (c *RedisCalendarCache) SetFeed(ctx context.Context, apartmentID string, feed *CalendarFeed) {
	raw, err := json.Marshal(feed)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, calendarKey(apartmentID), raw, c.TTL).Err(); err != nil {
		utils.GetLogger().Warn("calendar cache write failed", zap.Error(err))
	}
}

func (c *RedisCalendarCache) Invalidate(ctx context.Context, apartmentID string) {
	if err := c.Client.Del(ctx, calendarKey(apartmentID)).Err(); err != nil {
		utils.GetLogger().Warn("calendar cache invalidation failed", zap.Error(err))
	}
}

var _ CalendarCache = (*RedisCalendarCache)(nil)
