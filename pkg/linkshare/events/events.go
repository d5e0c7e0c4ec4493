// Package events announces new group submissions to other services.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
)

// TypeGroupCreated is the event type sent after a group is stored
const TypeGroupCreated = "group.created"

// DefaultTopic is used when no topic is configured
const DefaultTopic = "linkshare.groups"

// Event is the message envelope
type Event struct {
	Type       string       `json:"type"`
	OccurredAt int64        `json:"occurredAt"`
	Group      models.Group `json:"group"`
}

// Publisher sends events. Publish errors are reported to the caller, who
// decides whether they matter.
type Publisher interface {
	GroupCreated(ctx context.Context, group models.Group) error
	Close() error
}

// NopPublisher drops every event
type NopPublisher struct{}

// GroupCreated does nothing
func (NopPublisher) GroupCreated(context.Context, models.Group) error { return nil }

// Close does nothing
func (NopPublisher) Close() error { return nil }

// messageWriter is the part of *kafka.Writer the publisher uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a Kafka topic keyed by group id
type KafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
}

// KafkaConfig holds the broker settings
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// NewKafkaPublisher creates a synchronous producer for cfg.Topic
func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher: no brokers configured")
	}
	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		AllowAutoTopicCreation: true,
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		WriteTimeout:           5 * time.Second,
	}
	return &KafkaPublisher{writer: w, now: time.Now}, nil
}

// GroupCreated publishes a group.created event
func (p *KafkaPublisher) GroupCreated(ctx context.Context, group models.Group) error {
	value, err := json.Marshal(Event{
		Type:       TypeGroupCreated,
		OccurredAt: p.now().Unix(),
		Group:      group,
	})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(group.ID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(TypeGroupCreated)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", TypeGroupCreated, err)
	}
	return nil
}

// Close flushes and closes the writer
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
