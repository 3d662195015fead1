package events

import (
	"context"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

const DefaultKafkaTopic = "favorite-games"

type kafkaPublisher struct {
	w *kafka.Writer
}

// NewKafka publishes to topic keyed by user id, so one user's events keep their order.
// The writer is async; failures surface only through its completion callback.
func NewKafka(brokers []string, topic string) dom.EventPublisher {
	if len(brokers) == 0 {
		logx.Infof("events: no kafka brokers configured; using noop")
		return NewNoop()
	}
	if topic == "" {
		topic = DefaultKafkaTopic
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err == nil {
				return
			}
			for _, m := range msgs {
				logx.Errorf("events: kafka delivery of %s to %s failed: %v", m.Key, topic, err)
			}
		},
	}
	return &kafkaPublisher{w: w}
}

func (p *kafkaPublisher) Publish(ctx context.Context, evt dom.FavoriteChangeEvent) {
	b, err := Encode(evt)
	if err != nil {
		logx.WithContext(ctx).Errorf("events: encode favorite event: %v", err)
		return
	}
	// Async writers return immediately; ctx cancellation must not drop the message.
	if err := p.w.WriteMessages(context.WithoutCancel(ctx), kafka.Message{Key: []byte(evt.UserID), Value: b}); err != nil {
		logx.WithContext(ctx).Errorf("events: kafka enqueue for user %s game %d: %v", evt.UserID, evt.GameID, err)
	}
}

func (p *kafkaPublisher) Close() error { return p.w.Close() }
