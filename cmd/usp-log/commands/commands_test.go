package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/usp-protocol/usp-go/pkg/log"
)

var testTime = time.Date(2026, 3, 2, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ulog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func sampleEvents() []log.Event {
	return []log.Event{
		{
			Timestamp: testTime,
			SessionID: "5f0c1e2a-aaaa-bbbb-cccc-000000000001",
			Direction: log.DirectionOut,
			Layer:     log.LayerRecord,
			ToID:      "proto::agent",
			FromID:    "proto::ctrl",
			Source:    "get.yaml",
			Frame:     &log.FrameEvent{Size: 4, Data: []byte{0x0a, 0x03, 0x31, 0x2e}},
			Message: &log.MessageEvent{
				RecordType: "no_session_context",
				MsgID:      "42",
				MsgType:    "GET",
				Body:       "request",
				JSON:       `{"version":"1.3"}`,
			},
		},
		{
			Timestamp: testTime.Add(time.Second),
			SessionID: "5f0c1e2a-aaaa-bbbb-cccc-000000000001",
			Direction: log.DirectionIn,
			Layer:     log.LayerMsg,
			Category:  log.CategoryError,
			Frame:     &log.FrameEvent{Size: 2, Data: []byte{0xff, 0xff}},
			Error:     &log.ErrorEventData{Layer: log.LayerMsg, Message: "failed to decode Msg", Kind: "malformed"},
		},
		{
			Timestamp: testTime.Add(2 * time.Second),
			SessionID: "9d9d9d9d-0000",
			Direction: log.DirectionIn,
			Layer:     log.LayerMsg,
			Message:   &log.MessageEvent{MsgID: "7", MsgType: "GET_RESP", Body: "response"},
		},
	}
}

func TestFormatRecordEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0], false)
	output := buf.String()

	for _, want := range []string{
		"2026-03-02T10:15:32.123456Z",
		"[sess:5f0c1e2a]",
		"OUT RECORD GET",
		"proto::ctrl -> proto::agent",
		"Source: get.yaml",
		"Record: no_session_context",
		"MsgID: 42 (request)",
		"Size: 4 bytes",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Data:") || strings.Contains(output, "JSON:") {
		t.Errorf("non-verbose output shows data:\n%s", output)
	}
}

func TestFormatVerbose(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0], true)
	output := buf.String()

	if !strings.Contains(output, "Data: 0a03312e") {
		t.Errorf("missing frame data in:\n%s", output)
	}
	if !strings.Contains(output, `JSON: {"version":"1.3"}`) {
		t.Errorf("missing JSON in:\n%s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[1], false)
	output := buf.String()

	for _, want := range []string{"IN  MSG Error", "Message: failed to decode Msg", "Kind: malformed"} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in:\n%s", want, output)
		}
	}
}

func TestRunViewFilters(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	opts := FilterOptions{Direction: "in", Category: "message"}
	filter, err := opts.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	if err := RunView(path, filter, false, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "GET_RESP") {
		t.Errorf("expected GET_RESP event, got:\n%s", output)
	}
	if strings.Contains(output, "OUT RECORD") || strings.Contains(output, "Error") {
		t.Errorf("filtered events leaked into output:\n%s", output)
	}
}

func TestFilterOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts FilterOptions
	}{
		{"layer", FilterOptions{Layer: "transport"}},
		{"direction", FilterOptions{Direction: "sideways"}},
		{"category", FilterOptions{Category: "state"}},
		{"time-start", FilterOptions{TimeStart: "yesterday"}},
		{"time-end", FilterOptions{TimeEnd: "2026-13-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.opts.Build(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "filtered.ulog")

	count, err := RunFilter(path, outPath, log.Filter{EndpointID: "proto::agent"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	reader, err := log.NewReader(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if event.Message == nil || event.Message.MsgID != "42" {
		t.Errorf("unexpected event %+v", event)
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestRunFilterReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	path := createTestLogFile(t, sampleEvents())

	count, err := RunFilter(path, "/dev/full", log.Filter{})
	if err == nil {
		t.Fatalf("RunFilter succeeded writing %d events to a full device", count)
	}
	if !strings.Contains(err.Error(), "failed to write output file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExportJSONL(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if first["ToID"] != "proto::agent" {
		t.Errorf("ToID = %v", first["ToID"])
	}
}

func TestExportCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(csvHeader, ",") {
		t.Errorf("header = %v", rows[0])
	}
	want := []string{"2026-03-02T10:15:32.123456Z", "5f0c1e2a-aaaa-bbbb-cccc-000000000001", "OUT", "RECORD", "MESSAGE",
		"proto::agent", "proto::ctrl", "no_session_context", "42", "GET", "4", ""}
	if strings.Join(rows[1], ",") != strings.Join(want, ",") {
		t.Errorf("row 1 = %v\nwant    %v", rows[1], want)
	}
	if rows[2][11] != "failed to decode Msg" {
		t.Errorf("error column = %q", rows[2][11])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, nil)
	if err := RunExport(path, "xml", filepath.Join(t.TempDir(), "x")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestStats(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if stats.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d", stats.TotalEvents)
	}
	if stats.Bytes != 6 {
		t.Errorf("Bytes = %d, want 6", stats.Bytes)
	}
	if stats.Errors != 1 {
		t.Errorf("Errors = %d", stats.Errors)
	}
	if len(stats.Sessions) != 2 {
		t.Errorf("Sessions = %d", len(stats.Sessions))
	}
	if stats.EventsByMsgType["GET"] != 1 || stats.EventsByMsgType["GET_RESP"] != 1 {
		t.Errorf("EventsByMsgType = %v", stats.EventsByMsgType)
	}
	if stats.EventsByLayer[log.LayerMsg] != 2 {
		t.Errorf("EventsByLayer = %v", stats.EventsByLayer)
	}

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()
	for _, want := range []string{"Total Events: 3", "RECORD:", "no_session_context:", "GET_RESP:", "Sessions: 2", "[5f0c1e2a] 2 events", "Errors: 1"} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in:\n%s", want, output)
		}
	}
}

func TestStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
