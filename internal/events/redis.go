package events

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

const (
	DefaultRedisStream = "playshelf:favorites"
	redisWriteTimeout  = 2 * time.Second
)

type redisPublisher struct {
	cli    *redis.Client
	stream string
	maxLen int64
}

// NewRedis appends events to a redis stream as a single JSON "data" field.
func NewRedis(url, stream string, maxLen int64) dom.EventPublisher {
	opt, err := redis.ParseURL(url)
	if err != nil {
		logx.Errorf("events: redis parse url: %v; using noop", err)
		return NewNoop()
	}
	if stream == "" {
		stream = DefaultRedisStream
	}
	return newRedisPublisher(redis.NewClient(opt), stream, maxLen)
}

func newRedisPublisher(cli *redis.Client, stream string, maxLen int64) *redisPublisher {
	return &redisPublisher{cli: cli, stream: stream, maxLen: maxLen}
}

func (p *redisPublisher) Publish(ctx context.Context, evt dom.FavoriteChangeEvent) {
	b, err := Encode(evt)
	if err != nil {
		logx.WithContext(ctx).Errorf("events: encode favorite event: %v", err)
		return
	}
	threading.GoSafe(func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), redisWriteTimeout)
		defer cancel()
		if err := p.xadd(ctx, b); err != nil {
			logx.WithContext(ctx).Errorf("events: redis xadd for user %s game %d: %v", evt.UserID, evt.GameID, err)
		}
	})
}

func (p *redisPublisher) xadd(ctx context.Context, payload []byte) error {
	args := &redis.XAddArgs{Stream: p.stream, Values: map[string]any{"data": string(payload)}}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}
	return p.cli.XAdd(ctx, args).Err()
}

func (p *redisPublisher) Close() error { return p.cli.Close() }
