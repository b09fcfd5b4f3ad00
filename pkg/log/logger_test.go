package log

import "testing"

func TestNoopLoggerAcceptsAnyEvent(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
	logger.Log(Event{Frame: &FrameEvent{Size: 1}, Message: &MessageEvent{MsgID: "1"}})
	logger.Log(Event{Category: CategoryError, Error: &ErrorEventData{Message: "x"}})
}

func TestLoggerFunc(t *testing.T) {
	var got []string
	logger := LoggerFunc(func(e Event) { got = append(got, e.SessionID) })

	logger.Log(Event{SessionID: "a"})
	logger.Log(Event{SessionID: "b"})

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestMultiLoggerFansOut(t *testing.T) {
	var a, b []Event
	multi := NewMultiLogger(
		LoggerFunc(func(e Event) { a = append(a, e) }),
		nil,
		NoopLogger{},
		LoggerFunc(func(e Event) { b = append(b, e) }),
	)

	multi.Log(Event{SessionID: "s1"})
	multi.Log(Event{SessionID: "s2"})

	for i, events := range [][]Event{a, b} {
		if len(events) != 2 {
			t.Fatalf("logger %d: got %d events, want 2", i, len(events))
		}
		if events[1].SessionID != "s2" {
			t.Errorf("logger %d: second SessionID = %q", i, events[1].SessionID)
		}
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	NewMultiLogger().Log(Event{SessionID: "nobody"})
}
