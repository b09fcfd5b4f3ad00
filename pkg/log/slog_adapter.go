package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	if event.ToID != "" {
		attrs = append(attrs, slog.String("to_id", event.ToID))
	}
	if event.FromID != "" {
		attrs = append(attrs, slog.String("from_id", event.FromID))
	}
	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}
	if event.Frame != nil {
		attrs = append(attrs,
			slog.Int("frame_size", event.Frame.Size),
			slog.Bool("truncated", event.Frame.Truncated),
		)
	}

	switch {
	case event.Message != nil:
		if event.Message.RecordType != "" {
			attrs = append(attrs, slog.String("record_type", event.Message.RecordType))
		}
		if event.Message.MsgID != "" {
			attrs = append(attrs,
				slog.String("msg_id", event.Message.MsgID),
				slog.String("msg_type", event.Message.MsgType),
				slog.String("body", event.Message.Body),
			)
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Kind != "" {
			attrs = append(attrs, slog.String("error_kind", event.Error.Kind))
		}
		if event.Error.Field != "" {
			attrs = append(attrs, slog.String("error_field", event.Error.Field))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "codec", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
