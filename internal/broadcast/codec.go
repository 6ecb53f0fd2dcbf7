package broadcast

import (
	"encoding/json"
	"fmt"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	CodecJSON     = "json"
	CodecProtobuf = "protobuf"
)

// Codec encodes a reading once per fanout; every topic gets the same bytes.
type Codec interface {
	Name() string
	// Binary reports whether payloads are binary frames rather than text.
	Binary() bool
	Encode(reading v1.Reading) ([]byte, error)
}

// NewCodec resolves a codec by name. Empty means JSON.
func NewCodec(name string) (Codec, error) {
	switch name {
	case "", CodecJSON:
		return JSONCodec{}, nil
	case CodecProtobuf:
		return ProtoCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown broadcast codec %q (want %q or %q)", name, CodecJSON, CodecProtobuf)
	}
}

// JSONCodec encodes the public ReadingResponse shape.
type JSONCodec struct{}

func (JSONCodec) Name() string { return CodecJSON }
func (JSONCodec) Binary() bool { return false }

func (JSONCodec) Encode(reading v1.Reading) ([]byte, error) {
	payload, err := json.Marshal(v1.NewReadingResponse(reading))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reading: %w", err)
	}
	return payload, nil
}

// ProtoCodec encodes a google.protobuf.Struct with the same field names as
// the JSON shape. Usage travels as a decimal string to stay exact.
type ProtoCodec struct{}

func (ProtoCodec) Name() string { return CodecProtobuf }
func (ProtoCodec) Binary() bool { return true }

func (ProtoCodec) Encode(reading v1.Reading) ([]byte, error) {
	ts := timestamppb.New(reading.RecordedAt)
	if err := ts.CheckValid(); err != nil {
		return nil, fmt.Errorf("recorded_at out of range: %w", err)
	}

	msg, err := structpb.NewStruct(map[string]interface{}{
		"sensor_id":   reading.SensorID,
		"event_date":  reading.EventDate.String(),
		"recorded_at": ts.AsTime().Format(time.RFC3339Nano),
		"usage":       reading.Usage.String(),
		"voltage":     reading.Voltage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build reading struct: %w", err)
	}

	payload, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reading proto: %w", err)
	}
	return payload, nil
}

// DecodeProto is the subscriber-side inverse of ProtoCodec.Encode.
func DecodeProto(payload []byte) (map[string]interface{}, error) {
	var msg structpb.Struct
	if err := proto.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reading proto: %w", err)
	}
	return msg.AsMap(), nil
}
