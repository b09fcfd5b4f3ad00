package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logOne(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsRecordEvent(t *testing.T) {
	entry := logOne(t, Event{
		Timestamp: time.Now(),
		SessionID: "sess-123",
		Direction: DirectionOut,
		Layer:     LayerRecord,
		ToID:      "proto::agent",
		FromID:    "proto::ctrl",
		Frame:     &FrameEvent{Size: 256, Data: []byte{0x01, 0x02}},
		Message: &MessageEvent{
			RecordType: "no_session_context",
			MsgID:      "42",
			MsgType:    "GET",
			Body:       "request",
		},
	})

	want := map[string]any{
		"msg":         "codec",
		"session_id":  "sess-123",
		"direction":   "OUT",
		"layer":       "RECORD",
		"category":    "MESSAGE",
		"to_id":       "proto::agent",
		"from_id":     "proto::ctrl",
		"frame_size":  float64(256),
		"record_type": "no_session_context",
		"msg_id":      "42",
		"msg_type":    "GET",
		"body":        "request",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("level: got %v, want DEBUG", entry["level"])
	}
}

func TestSlogAdapterLogsErrorEvent(t *testing.T) {
	entry := logOne(t, Event{
		SessionID: "sess-9",
		Direction: DirectionIn,
		Layer:     LayerMsg,
		Category:  CategoryError,
		Error: &ErrorEventData{
			Layer:   LayerMsg,
			Message: "failed to decode Msg: body is not set",
			Kind:    "unset",
			Field:   "msg_body",
		},
	})

	if entry["category"] != "ERROR" {
		t.Errorf("category: got %v, want ERROR", entry["category"])
	}
	if entry["error_kind"] != "unset" {
		t.Errorf("error_kind: got %v, want unset", entry["error_kind"])
	}
	if entry["error_field"] != "msg_body" {
		t.Errorf("error_field: got %v, want msg_body", entry["error_field"])
	}
	if _, ok := entry["msg_id"]; ok {
		t.Error("msg_id should be absent for error events")
	}
}

func TestSlogAdapterOmitsEmptyEndpoints(t *testing.T) {
	entry := logOne(t, Event{Layer: LayerMsg, Message: &MessageEvent{MsgID: "1", MsgType: "GET"}})

	for _, k := range []string{"to_id", "from_id", "source", "frame_size", "record_type"} {
		if _, ok := entry[k]; ok {
			t.Errorf("%s should be absent, got %v", k, entry[k])
		}
	}
}
