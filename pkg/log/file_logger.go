package log

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends capture events to a file. It is safe for concurrent use.
//
// Encoding failures do not interrupt the caller; the first one is kept and
// returned by Close.
type FileLogger struct {
	mu      sync.Mutex
	file    *os.File
	buf     *bufio.Writer
	enc     *cbor.Encoder
	written int
	err     error
	closed  bool
}

// NewFileLogger opens path for appending, creating it with mode 0644 if
// needed.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	buf := bufio.NewWriter(f)
	return &FileLogger{file: f, buf: buf, enc: NewEncoder(buf)}, nil
}

// Log appends event. Calls after Close are ignored.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if err := l.enc.Encode(event); err != nil {
		if l.err == nil {
			l.err = fmt.Errorf("failed to encode event: %w", err)
		}
		return
	}
	l.written++
}

// Written returns the number of events encoded so far.
func (l *FileLogger) Written() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.written
}

// Close flushes and closes the file. Closing twice is a no-op.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if err := l.buf.Flush(); err != nil && l.err == nil {
		l.err = fmt.Errorf("failed to flush capture file: %w", err)
	}
	if err := l.file.Close(); err != nil && l.err == nil {
		l.err = err
	}
	return l.err
}

var _ Logger = (*FileLogger)(nil)
