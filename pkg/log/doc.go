// Package log captures codec activity as structured events.
//
// Every Record or Msg that is encoded or decoded can be recorded as an
// Event: the raw bytes, the identifying header fields and any error. This
// is separate from operational logging (slog). A capture is a complete
// machine-readable trace that can be replayed or inspected later with
// usp-log.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	capture := log.NewSlogAdapter(slog.Default())
//
//	// For test runs: write to a capture file
//	capture, _ := log.NewFileLogger("run.ulog")
//
//	// Both
//	capture := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
//	capture.Log(log.RecordEvent(session, log.DirectionOut, rec, data))
//
// # Event Layers
//
//   - Record: the transport envelope (RecordEvent)
//   - Msg: a message without envelope (MsgEvent)
//
// Failures at either layer are captured with ErrorEvent.
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with the .ulog
// extension.
package log
