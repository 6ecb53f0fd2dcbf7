package broadcast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/Schnee111/smart-city-monitoring-system/internal/observability/metrics"
)

const DefaultPublishTimeout = 2 * time.Second

// Fanout notifies subscribers of a persisted reading: once on the sensor's
// topic and once on the "all" topic. Best effort: failures are logged and
// counted, never returned, so a broken transport cannot fail a write.
type Fanout struct {
	pub     Publisher
	codec   Codec
	timeout time.Duration
}

func NewFanout(pub Publisher, codec Codec, timeout time.Duration) *Fanout {
	if pub == nil {
		pub = Discard{}
	}
	if codec == nil {
		codec = JSONCodec{}
	}
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &Fanout{pub: pub, codec: codec, timeout: timeout}
}

// Publish encodes reading once and sends it to both topics.
func (f *Fanout) Publish(ctx context.Context, reading v1.Reading) {
	payload, err := f.codec.Encode(reading)
	if err != nil {
		slog.Error("[Fanout] Failed to encode reading",
			"sensor_id", reading.SensorID,
			"codec", f.codec.Name(),
			"error", err)
		metrics.FanoutFailed(KindSensor)
		metrics.FanoutFailed(KindAll)
		return
	}

	ctx = WithPartitionKey(ctx, reading.SensorID)
	f.publish(ctx, SensorTopic(reading.SensorID), payload)
	f.publish(ctx, TopicAll, payload)
}

func (f *Fanout) publish(ctx context.Context, topic string, payload []byte) {
	kind := TopicKind(topic)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if err := f.safePublish(ctx, topic, payload); err != nil {
		slog.Warn("[Fanout] Publish failed, subscribers miss this reading",
			"topic", topic,
			"error", err)
		metrics.FanoutFailed(kind)
		return
	}
	metrics.FanoutPublished(kind)
}

// safePublish turns a transport panic into an error.
func (f *Fanout) safePublish(ctx context.Context, topic string, payload []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("publisher panic: %v", r)
		}
	}()
	return f.pub.Publish(ctx, topic, payload)
}
