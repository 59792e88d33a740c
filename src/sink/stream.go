package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"webscaffold/src/model"
	"webscaffold/src/stream"
)

// StreamSink publishes records to the live websocket hub so operators can
// tail failures as they happen.
type StreamSink struct {
	hub *stream.Hub
}

func NewStreamSink(hub *stream.Hub) *StreamSink {
	return &StreamSink{hub: hub}
}

func (s *StreamSink) Record(_ context.Context, rec *model.FailureRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal failure record: %w", err)
	}
	s.hub.Broadcast(payload)
	return nil
}

func (s *StreamSink) Name() string { return "stream" }
