package commands

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/usp-protocol/usp-go/pkg/log"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

const getDescription = `
record:
  to_id: proto::agent
  from_id: proto::ctrl
msg:
  msg_id: "42"
  get:
    param_paths: [Device.DeviceInfo.]
`

type captureLogger struct {
	events []log.Event
}

func (c *captureLogger) Log(ev log.Event) {
	c.events = append(c.events, ev)
}

func writeDescription(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "desc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"binary", FormatBinary, false},
		{"JSON", FormatJSON, false},
		{"c-str", FormatCString, false},
		{"c-array", FormatCArray, false},
		{"hex", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	path := writeDescription(t, getDescription)

	var bin bytes.Buffer
	if err := RunEncode(path, Options{Format: FormatBinary, Logger: quietLogger()}, &bin); err != nil {
		t.Fatalf("RunEncode failed: %v", err)
	}

	rec, err := usp.DecodeRecord(bin.Bytes())
	if err != nil {
		t.Fatalf("output is not a Record: %v", err)
	}
	if rec.ToID != "proto::agent" {
		t.Errorf("ToID = %q", rec.ToID)
	}

	var js bytes.Buffer
	if err := RunDecode(bin.Bytes(), Options{Format: FormatJSON, Logger: quietLogger()}, &js); err != nil {
		t.Fatalf("RunDecode failed: %v", err)
	}
	if !strings.Contains(js.String(), `"to_id": "proto::agent"`) {
		t.Errorf("unexpected JSON:\n%s", js.String())
	}
}

func TestEncodeMsgOnly(t *testing.T) {
	path := writeDescription(t, getDescription)

	var out bytes.Buffer
	if err := RunEncode(path, Options{Format: FormatBinary, Msg: true, Logger: quietLogger()}, &out); err != nil {
		t.Fatalf("RunEncode failed: %v", err)
	}

	m, err := usp.DecodeMsg(out.Bytes())
	if err != nil {
		t.Fatalf("output is not a Msg: %v", err)
	}
	if m.Header.MsgID != "42" || m.Header.MsgType != usp.MsgTypeGet {
		t.Errorf("header = %+v", m.Header)
	}
}

func TestEncodeTextFormats(t *testing.T) {
	path := writeDescription(t, getDescription)

	tests := []struct {
		format Format
		prefix string
	}{
		{FormatJSON, "{\n  \"version\": \"1.3\""},
		{FormatCString, "\"\\x0a\\x031.3"},
		{FormatCArray, "unsigned int pb_len = "},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var out bytes.Buffer
			if err := RunEncode(path, Options{Format: tt.format, Logger: quietLogger()}, &out); err != nil {
				t.Fatalf("RunEncode failed: %v", err)
			}
			if !strings.HasPrefix(out.String(), tt.prefix) {
				t.Errorf("output starts with %q, want %q", out.String()[:min(len(out.String()), 40)], tt.prefix)
			}
			if !strings.HasSuffix(out.String(), "\n") {
				t.Error("text output should end with a newline")
			}
		})
	}
}

func TestEncodeCapturesEvent(t *testing.T) {
	path := writeDescription(t, getDescription)
	capture := &captureLogger{}

	opts := Options{Format: FormatBinary, Capture: capture, SessionID: "sess", Source: "desc.yaml", Logger: quietLogger()}
	var out bytes.Buffer
	if err := RunEncode(path, opts, &out); err != nil {
		t.Fatalf("RunEncode failed: %v", err)
	}

	if len(capture.events) != 1 {
		t.Fatalf("got %d events, want 1", len(capture.events))
	}
	ev := capture.events[0]
	if ev.Direction != log.DirectionOut || ev.Layer != log.LayerRecord {
		t.Errorf("event = %v %v", ev.Direction, ev.Layer)
	}
	if ev.Source != "desc.yaml" || ev.SessionID != "sess" {
		t.Errorf("source/session = %q/%q", ev.Source, ev.SessionID)
	}
	if ev.Frame == nil || !bytes.Equal(ev.Frame.Data, out.Bytes()) {
		t.Error("captured frame differs from output")
	}
}

func TestEncodeInvalidDescription(t *testing.T) {
	path := writeDescription(t, "record: {to_id: a, type: uds_connect}\n")
	capture := &captureLogger{}

	err := RunEncode(path, Options{Capture: capture, Logger: quietLogger()}, io.Discard)
	if err == nil {
		t.Fatal("expected error for missing from_id")
	}
	if len(capture.events) != 1 || capture.events[0].Category != log.CategoryError {
		t.Fatalf("expected one error event, got %+v", capture.events)
	}
	if capture.events[0].Layer != log.LayerRecord {
		t.Errorf("Layer = %v, want RECORD", capture.events[0].Layer)
	}
	if capture.events[0].Error.Kind != "missing_field" {
		t.Errorf("Kind = %q", capture.events[0].Error.Kind)
	}
}

func TestDecodeErrorsAreCaptured(t *testing.T) {
	capture := &captureLogger{}
	data := []byte{0x0a, 0x09, 0x01}

	err := RunDecode(data, Options{Format: FormatJSON, Msg: true, Capture: capture, Logger: quietLogger()}, io.Discard)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if len(capture.events) != 1 {
		t.Fatalf("got %d events, want 1", len(capture.events))
	}
	ev := capture.events[0]
	if ev.Direction != log.DirectionIn || ev.Layer != log.LayerMsg || ev.Error == nil {
		t.Errorf("unexpected event %+v", ev)
	}
	if ev.Frame == nil || ev.Frame.Size != len(data) {
		t.Errorf("Frame = %+v", ev.Frame)
	}
}

func TestDecodeUnsetRecord(t *testing.T) {
	// version, to_id and from_id only
	data := []byte{0x0a, 0x03, '1', '.', '3', 0x12, 0x01, 'a', 0x1a, 0x01, 'b'}

	err := RunDecode(data, Options{Format: FormatJSON, Logger: quietLogger()}, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "record_type") {
		t.Errorf("err = %v, want record_type not set", err)
	}
}

func TestDecodeLogsNegotiatedVersion(t *testing.T) {
	tests := []struct {
		name   string
		agent  string
		expect string
	}{
		{"common", "1.1,1.2", "version=1.2"},
		{"none", "2.0", "protocol version negotiation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := usp.Msg{
				Header: usp.Header{MsgID: "gsp", MsgType: usp.MsgTypeGetSupportedProtoResp},
				Body:   usp.GetSupportedProtocolResp{AgentSupportedProtocolVersions: tt.agent},
			}
			var logs bytes.Buffer
			opts := Options{Format: FormatJSON, Msg: true, Logger: slog.New(slog.NewTextHandler(&logs, nil))}

			if err := RunDecode(usp.EncodeMsg(m), opts, io.Discard); err != nil {
				t.Fatalf("RunDecode failed: %v", err)
			}
			if !strings.Contains(logs.String(), tt.expect) {
				t.Errorf("log output %q does not contain %q", logs.String(), tt.expect)
			}
		})
	}
}

func TestWithCaptureWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ulog")
	desc := writeDescription(t, getDescription)

	err := WithCapture(path, func(capture log.Logger) error {
		return RunEncode(desc, Options{Capture: capture, Logger: quietLogger()}, io.Discard)
	})
	if err != nil {
		t.Fatalf("WithCapture failed: %v", err)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open capture: %v", err)
	}
	defer reader.Close()
	if _, err := reader.Next(); err != nil {
		t.Errorf("expected one captured event: %v", err)
	}
}

func TestWithCaptureReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	desc := writeDescription(t, getDescription)

	err := WithCapture("/dev/full", func(capture log.Logger) error {
		return RunEncode(desc, Options{Capture: capture, Logger: quietLogger()}, io.Discard)
	})
	if err == nil {
		t.Fatal("expected capture write failure")
	}
	if !strings.Contains(err.Error(), "failed to write capture file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWithCaptureReturnsRunError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ulog")
	desc := writeDescription(t, "msg: {msg_id: x}\n")

	err := WithCapture(path, func(capture log.Logger) error {
		return RunEncode(desc, Options{Capture: capture, Logger: quietLogger()}, io.Discard)
	})
	if err == nil || strings.Contains(err.Error(), "capture file") {
		t.Errorf("expected the description error, got %v", err)
	}
}
