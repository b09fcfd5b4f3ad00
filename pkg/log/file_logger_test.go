package log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func readAll(t *testing.T, path string) []Event {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read capture file: %v", err)
	}
	dec := NewDecoder(bytes.NewReader(data))
	var events []Event
	for {
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			break
		}
		events = append(events, ev)
	}
	return events
}

func TestFileLoggerWritesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ulog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	logger.Log(Event{
		Timestamp: time.Now(),
		SessionID: "sess-1",
		Direction: DirectionOut,
		Layer:     LayerRecord,
		ToID:      "proto::agent",
		Frame:     &FrameEvent{Size: 3, Data: []byte{1, 2, 3}},
	})
	logger.Close()

	events := readAll(t, path)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].ToID != "proto::agent" {
		t.Errorf("ToID = %q, want %q", events[0].ToID, "proto::agent")
	}
	if events[0].Frame == nil || !bytes.Equal(events[0].Frame.Data, []byte{1, 2, 3}) {
		t.Errorf("Frame = %+v, want data 010203", events[0].Frame)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ulog")

	for _, id := range []string{"sess-1", "sess-2"} {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(Event{Timestamp: time.Now(), SessionID: id})
		logger.Close()
	}

	events := readAll(t, path)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].SessionID != "sess-1" || events[1].SessionID != "sess-2" {
		t.Errorf("sessions = %q, %q", events[0].SessionID, events[1].SessionID)
	}
}

func TestFileLoggerConcurrentWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ulog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				logger.Log(Event{Timestamp: time.Now(), SessionID: fmt.Sprintf("sess-%d", i)})
			}
		}()
	}
	wg.Wait()
	if got := logger.Written(); got != writers*perWriter {
		t.Errorf("Written() = %d, want %d", got, writers*perWriter)
	}
	logger.Close()

	if got := len(readAll(t, path)); got != writers*perWriter {
		t.Errorf("got %d events, want %d", got, writers*perWriter)
	}
}

func TestFileLoggerCloseTwice(t *testing.T) {
	logger, err := NewFileLogger(filepath.Join(t.TempDir(), "run.ulog"))
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// ignored after close
	logger.Log(Event{SessionID: "late"})
}

func TestFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "run.ulog"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
