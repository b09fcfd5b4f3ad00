package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 2, 9, 30, 0, 123456789, time.UTC)
	original := Event{
		Timestamp: ts,
		SessionID: "sess-1",
		Direction: DirectionIn,
		Layer:     LayerRecord,
		Category:  CategoryMessage,
		ToID:      "proto::ctrl",
		FromID:    "proto::agent",
		Source:    "get.yaml",
		Frame:     &FrameEvent{Size: 4, Data: []byte{0x0a, 0x03, 0x31, 0x2e}},
		Message: &MessageEvent{
			RecordType: "no_session_context",
			MsgID:      "7",
			MsgType:    "GET_RESP",
			Body:       "response",
			JSON:       `{"version":"1.3"}`,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v (nanoseconds must survive)", decoded.Timestamp, ts)
	}
	if decoded.SessionID != original.SessionID || decoded.ToID != original.ToID || decoded.FromID != original.FromID {
		t.Errorf("ids mismatch: %+v", decoded)
	}
	if decoded.Source != "get.yaml" {
		t.Errorf("Source = %q", decoded.Source)
	}
	if decoded.Frame == nil || !bytes.Equal(decoded.Frame.Data, original.Frame.Data) {
		t.Errorf("Frame = %+v", decoded.Frame)
	}
	if decoded.Message == nil || *decoded.Message != *original.Message {
		t.Errorf("Message = %+v, want %+v", decoded.Message, original.Message)
	}
	if decoded.Error != nil {
		t.Errorf("Error = %+v, want nil", decoded.Error)
	}
}

func TestEventCBORErrorRoundTrip(t *testing.T) {
	original := Event{
		SessionID: "sess-2",
		Layer:     LayerMsg,
		Category:  CategoryError,
		Error:     &ErrorEventData{Layer: LayerMsg, Message: "boom", Kind: "malformed"},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if decoded.Error == nil || *decoded.Error != *original.Error {
		t.Errorf("Error = %+v, want %+v", decoded.Error, original.Error)
	}
	if decoded.Category != CategoryError {
		t.Errorf("Category = %v, want ERROR", decoded.Category)
	}
}

func TestEventCBORDeterministic(t *testing.T) {
	ev := Event{SessionID: "s", ToID: "a", FromID: "b", Message: &MessageEvent{MsgID: "1"}}
	a, err := EncodeEvent(ev)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeEvent(ev)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding is not deterministic")
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}
