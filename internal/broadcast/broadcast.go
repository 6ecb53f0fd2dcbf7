package broadcast

import (
	"context"
	"errors"
	"strings"
)

// Topics readings are published on. Subscribers pick one sensor or everything.
const (
	TopicAll          = "all"
	SensorTopicPrefix = "sensor:"

	KindAll    = "all"
	KindSensor = "sensor"
	KindOther  = "other"
)

// ErrClosed is returned by a transport that has been shut down.
var ErrClosed = errors.New("broadcast transport closed")

// Publisher is a pub/sub transport. Delivery is at-most-once: no acknowledgement,
// no replay for subscribers that were not connected.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// SensorTopic returns the per-sensor topic, "sensor:<id>".
func SensorTopic(sensorID string) string {
	return SensorTopicPrefix + sensorID
}

// TopicKind classifies a topic for metrics and routing: "sensor", "all" or "other".
func TopicKind(topic string) string {
	switch {
	case topic == TopicAll:
		return KindAll
	case strings.HasPrefix(topic, SensorTopicPrefix) && len(topic) > len(SensorTopicPrefix):
		return KindSensor
	default:
		return KindOther
	}
}

// ValidTopic reports whether a subscriber may ask for topic.
func ValidTopic(topic string) bool {
	return TopicKind(topic) != KindOther
}

type partitionKeyCtx struct{}

// WithPartitionKey attaches the key transports use to keep related messages
// in order (the sensor id). Transports without ordering ignore it.
func WithPartitionKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, partitionKeyCtx{}, key)
}

// PartitionKey returns the key set by WithPartitionKey, if any.
func PartitionKey(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(partitionKeyCtx{}).(string)
	return key, ok && key != ""
}

// Discard drops every message. Used when no transport is configured.
type Discard struct{}

func (Discard) Publish(context.Context, string, []byte) error { return nil }

// Multi publishes the same message to every transport, joining their errors.
// A failing transport does not stop the others.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, topic string, payload []byte) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, topic, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
