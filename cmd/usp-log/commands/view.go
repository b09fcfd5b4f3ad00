package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/usp-protocol/usp-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event, verbose bool) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	label := "Unknown"
	switch {
	case event.Error != nil:
		label = "Error"
	case event.Message != nil && event.Message.MsgType != "":
		label = event.Message.MsgType
	case event.Message != nil && event.Message.RecordType != "":
		label = event.Message.RecordType
	}

	fmt.Fprintf(w, "%s [sess:%s] %-3s %s %s\n", ts, shortenID(event.SessionID),
		event.Direction.String(), event.Layer.String(), label)

	if event.FromID != "" || event.ToID != "" {
		fmt.Fprintf(w, "  %s -> %s\n", event.FromID, event.ToID)
	}
	if event.Source != "" {
		fmt.Fprintf(w, "  Source: %s\n", event.Source)
	}

	switch {
	case event.Message != nil:
		formatMessageDetails(w, event.Message, verbose)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}
	if event.Frame != nil {
		formatFrameDetails(w, event.Frame, verbose)
	}

	fmt.Fprintln(w)
}

func formatFrameDetails(w io.Writer, frame *log.FrameEvent, verbose bool) {
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	if verbose && len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
		if frame.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatMessageDetails(w io.Writer, msg *log.MessageEvent, verbose bool) {
	if msg.RecordType != "" && msg.MsgType != "" {
		fmt.Fprintf(w, "  Record: %s\n", msg.RecordType)
	}
	if msg.MsgID != "" {
		fmt.Fprintf(w, "  MsgID: %s (%s)\n", msg.MsgID, msg.Body)
	}
	if verbose && msg.JSON != "" {
		fmt.Fprintf(w, "  JSON: %s\n", msg.JSON)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Kind != "" {
		fmt.Fprintf(w, "  Kind: %s\n", err.Kind)
	}
	if err.Field != "" {
		fmt.Fprintf(w, "  Field: %s\n", err.Field)
	}
}

// RunView prints every event matching filter. Verbose output adds the frame
// bytes and the JSON rendering.
func RunView(path string, filter log.Filter, verbose bool, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event, verbose)
	}
}
