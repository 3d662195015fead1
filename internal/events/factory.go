package events

import (
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

type KafkaConf struct {
	Brokers []string `json:",optional"`
	Topic   string   `json:",default=favorite-games"`
}

type RedisConf struct {
	URL    string `json:",default=redis://localhost:6379/0"`
	Stream string `json:",default=playshelf:favorites"`
	MaxLen int64  `json:",default=1000000"`
}

// Config selects the publisher. Type is kafka, redis or noop.
type Config struct {
	Type  string `json:",default=noop,options=kafka|redis|noop"`
	Kafka KafkaConf
	Redis RedisConf
}

// New builds the configured publisher, falling back to noop for unknown types.
func New(c Config) dom.EventPublisher {
	switch strings.ToLower(strings.TrimSpace(c.Type)) {
	case "kafka":
		logx.Infof("events: kafka publisher enabled: brokers=%s topic=%s", strings.Join(c.Kafka.Brokers, ","), c.Kafka.Topic)
		return NewKafka(c.Kafka.Brokers, c.Kafka.Topic)
	case "redis":
		logx.Infof("events: redis publisher enabled: stream=%s", c.Redis.Stream)
		return NewRedis(c.Redis.URL, c.Redis.Stream, c.Redis.MaxLen)
	case "", "noop":
		return NewNoop()
	default:
		logx.Errorf("events: unsupported publisher type %q; using noop", c.Type)
		return NewNoop()
	}
}
