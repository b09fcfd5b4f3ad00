package log

// Logger receives capture events. Implementations must be safe for
// concurrent use and should not block the caller for long.
type Logger interface {
	Log(event Event)
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(Event)

// Log calls f(event).
func (f LoggerFunc) Log(event Event) { f(event) }

// NoopLogger discards all events. The zero value is ready to use.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// MultiLogger fans each event out to several loggers in order, typically a
// FileLogger plus a SlogAdapter.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger returns a MultiLogger over loggers. Nil entries are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log sends event to every logger.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var (
	_ Logger = NoopLogger{}
	_ Logger = LoggerFunc(nil)
	_ Logger = (*MultiLogger)(nil)
)
