package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Schnee111/smart-city-monitoring-system/internal/broadcast"
	kafkago "github.com/segmentio/kafka-go"
)

const DefaultTopicPrefix = "energy.readings"

// Config selects the brokers and the topic namespace.
type Config struct {
	Brokers     []string
	TopicPrefix string
}

// messageWriter is the subset of *kafkago.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher maps broadcast topics onto two Kafka topics:
// "<prefix>.sensor" for per-sensor topics and "<prefix>.all" for the firehose.
// Messages are keyed by sensor id; the hash balancer keeps one sensor's
// readings on one partition, in order.
type Publisher struct {
	writer messageWriter
	prefix string
}

func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}

	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		Async:                  false,
	}

	slog.Info("[Kafka] Publisher configured", "brokers", cfg.Brokers, "topic_prefix", prefixOrDefault(cfg.TopicPrefix))
	return newPublisher(writer, cfg.TopicPrefix), nil
}

func newPublisher(writer messageWriter, prefix string) *Publisher {
	return &Publisher{writer: writer, prefix: prefixOrDefault(prefix)}
}

// Publish implements broadcast.Publisher.
func (p *Publisher) Publish(ctx context.Context, topic string, payload []byte) error {
	kind := broadcast.TopicKind(topic)
	if kind == broadcast.KindOther {
		return fmt.Errorf("kafka: unroutable topic %q", topic)
	}

	msg := kafkago.Message{
		Topic: p.prefix + "." + kind,
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "topic", Value: []byte(topic)},
		},
	}
	if key, ok := broadcast.PartitionKey(ctx); ok {
		msg.Key = []byte(key)
	} else if kind == broadcast.KindSensor {
		msg.Key = []byte(strings.TrimPrefix(topic, broadcast.SensorTopicPrefix))
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write to %s: %w", msg.Topic, err)
	}
	return nil
}

// Close flushes pending batches and closes broker connections.
func (p *Publisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}
	slog.Info("[Kafka] Publisher closed")
	return nil
}

func prefixOrDefault(prefix string) string {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		return DefaultTopicPrefix
	}
	return prefix
}
