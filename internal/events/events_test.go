package events

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

func sampleEvent() dom.FavoriteChangeEvent {
	return dom.FavoriteChangeEvent{
		UserID:     "u1",
		GameID:     42,
		IsFavorite: true,
		Timestamp:  time.Date(2024, 5, 1, 12, 30, 0, 0, time.FixedZone("CEST", 2*3600)),
	}
}

func TestEncodeProducesValidMessage(t *testing.T) {
	b, err := Encode(sampleEvent())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.UserID != "u1" || m.GameID != 42 || !m.IsFavorite {
		t.Fatalf("unexpected message: %+v", m)
	}
	if m.Timestamp != "2024-05-01T10:30:00Z" {
		t.Fatalf("timestamp not normalized to UTC: %s", m.Timestamp)
	}
}

func TestEncodeRejectsEmptyUser(t *testing.T) {
	evt := sampleEvent()
	evt.UserID = ""
	if _, err := Encode(evt); err == nil {
		t.Fatalf("expected schema violation for empty user id")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		ok   bool
	}{
		{"complete", `{"userId":"u","gameId":1,"isFavorite":false,"timestamp":"2024-01-01T00:00:00Z"}`, true},
		{"missing flag", `{"userId":"u","gameId":1,"timestamp":"2024-01-01T00:00:00Z"}`, false},
		{"string game id", `{"userId":"u","gameId":"1","isFavorite":true,"timestamp":"2024-01-01T00:00:00Z"}`, false},
		{"extra field", `{"userId":"u","gameId":1,"isFavorite":true,"timestamp":"2024-01-01T00:00:00Z","x":1}`, false},
		{"bad timestamp", `{"userId":"u","gameId":1,"isFavorite":true,"timestamp":"yesterday"}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate([]byte(tc.doc))
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected violation")
			}
		})
	}
}

func TestFactoryFallsBackToNoop(t *testing.T) {
	for _, typ := range []string{"", "noop", "rabbit"} {
		if _, ok := New(Config{Type: typ}).(*Noop); !ok {
			t.Fatalf("type %q: expected noop publisher", typ)
		}
	}
	if _, ok := New(Config{Type: "kafka"}).(*Noop); !ok {
		t.Fatalf("kafka without brokers should degrade to noop")
	}
	if _, ok := New(Config{Type: "redis", Redis: RedisConf{URL: "::not a url"}}).(*Noop); !ok {
		t.Fatalf("redis with bad url should degrade to noop")
	}
}

func TestFactoryBuildsKafkaPublisher(t *testing.T) {
	p := New(Config{Type: "Kafka", Kafka: KafkaConf{Brokers: []string{"127.0.0.1:9092"}}})
	kp, ok := p.(*kafkaPublisher)
	if !ok {
		t.Fatalf("expected kafka publisher, got %T", p)
	}
	if kp.w.Topic != DefaultKafkaTopic || !kp.w.Async {
		t.Fatalf("unexpected writer config: topic=%s async=%v", kp.w.Topic, kp.w.Async)
	}
	_ = p.Close()
}

func TestMemoryRecordsInOrder(t *testing.T) {
	m := NewMemory()
	first := sampleEvent()
	second := sampleEvent()
	second.IsFavorite = false
	m.Publish(context.Background(), first)
	m.Publish(context.Background(), second)

	got := m.Events()
	if len(got) != 2 || !got[0].IsFavorite || got[1].IsFavorite {
		t.Fatalf("unexpected events: %+v", got)
	}
	got[0].UserID = "mutated"
	if m.Events()[0].UserID != "u1" {
		t.Fatalf("Events must return a copy")
	}
}

// Runs against a live server only when PLAYSHELF_TEST_REDIS_URL is set.
func TestRedisPublisherAppendsToStream(t *testing.T) {
	url := strings.TrimSpace(os.Getenv("PLAYSHELF_TEST_REDIS_URL"))
	if url == "" {
		t.Skip("PLAYSHELF_TEST_REDIS_URL not set; skip")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	cli := redis.NewClient(opt)
	stream := "playshelf:test:" + time.Now().Format("150405.000000")
	p := newRedisPublisher(cli, stream, 10)
	defer p.Close()
	defer cli.Del(context.Background(), stream)

	if err := p.xadd(context.Background(), []byte(`{"userId":"u1"}`)); err != nil {
		t.Fatalf("xadd: %v", err)
	}
	n, err := cli.XLen(context.Background(), stream).Result()
	if err != nil {
		t.Fatalf("xlen: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 stream entry, got %d", n)
	}
}
