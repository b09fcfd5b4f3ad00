package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/usp-protocol/usp-go/pkg/describe"
	"github.com/usp-protocol/usp-go/pkg/log"
	"github.com/usp-protocol/usp-go/pkg/usp"
	"github.com/usp-protocol/usp-go/pkg/version"
)

// Options configures encode and decode.
type Options struct {
	Format Format
	// Msg selects the bare Msg instead of the Record.
	Msg bool

	// Capture receives one event per value handled. Nil disables capture.
	Capture   log.Logger
	SessionID string
	// Source names the input in capture events.
	Source string

	// Logger is the operational logger. Nil means slog.Default().
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// sink returns the capture logger with Source filled in.
func (o *Options) sink() log.Logger {
	if o.Capture == nil {
		return log.NoopLogger{}
	}
	return log.LoggerFunc(func(ev log.Event) {
		ev.Source = o.Source
		o.Capture.Log(ev)
	})
}

func (o *Options) capture(ev log.Event) {
	o.sink().Log(ev)
}

// logNegotiation reports the version this module would agree on with the
// peer named in a supported-protocol exchange.
func (o *Options) logNegotiation(m usp.Msg) {
	var controller, agent string
	switch body := m.Body.(type) {
	case usp.GetSupportedProtocol:
		controller, agent = body.ControllerSupportedProtocolVersions, version.SupportedList()
	case usp.GetSupportedProtocolResp:
		controller, agent = version.SupportedList(), body.AgentSupportedProtocolVersions
	default:
		return
	}

	v, err := version.Negotiate(controller, agent)
	if err != nil {
		o.logger().Warn("protocol version negotiation failed", "msg_id", m.Header.MsgID, "error", err)
		return
	}
	o.logger().Info("negotiated protocol version", "msg_id", m.Header.MsgID, "version", v.String())
}

// RunEncode loads the description at path, encodes the described value and
// writes it to w in opts.Format.
func RunEncode(path string, opts Options, w io.Writer) error {
	res, err := describe.Load(path)
	if err != nil {
		var le *describe.LoadError
		layer := log.LayerMsg
		if errors.As(err, &le) && le.Message == "invalid record" {
			layer = log.LayerRecord
		}
		opts.capture(log.ErrorEvent(opts.SessionID, log.DirectionOut, layer, err, nil))
		return err
	}
	return encode(res, opts, w)
}

func encode(res *describe.Result, opts Options, w io.Writer) error {
	var out []byte
	var err error

	switch {
	case opts.Msg || res.Record == nil:
		if res.Msg == nil {
			return fmt.Errorf("description has no msg section")
		}
		m := *res.Msg
		opts.capture(log.MsgEvent(opts.SessionID, log.DirectionOut, m, usp.EncodeMsg(m)))
		opts.logger().Debug("encoded msg", "msg_id", m.Header.MsgID, "msg_type", m.Header.MsgType.String())
		opts.logNegotiation(m)
		out, err = RenderMsg(m, opts.Format)
	default:
		r := *res.Record
		opts.capture(log.RecordEvent(opts.SessionID, log.DirectionOut, r, usp.EncodeRecord(r)))
		opts.logger().Debug("encoded record", "to_id", r.ToID, "from_id", r.FromID,
			"record_type", usp.RecordTypeName(r.RecordType))
		out, err = RenderRecord(r, opts.Format)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// RunDecode decodes data as a Record (or a Msg with opts.Msg) and writes
// it to w in opts.Format.
func RunDecode(data []byte, opts Options, w io.Writer) error {
	var out []byte

	if opts.Msg {
		m, err := usp.DecodeMsg(data)
		if err != nil {
			opts.capture(log.ErrorEvent(opts.SessionID, log.DirectionIn, log.LayerMsg, err, data))
			return err
		}
		opts.capture(log.MsgEvent(opts.SessionID, log.DirectionIn, m, data))
		opts.logger().Debug("decoded msg", "msg_id", m.Header.MsgID, "msg_type", m.Header.MsgType.String())
		opts.logNegotiation(m)
		if out, err = RenderMsg(m, opts.Format); err != nil {
			return err
		}
	} else {
		r, err := usp.DecodeRecord(data)
		if err != nil {
			opts.capture(log.ErrorEvent(opts.SessionID, log.DirectionIn, log.LayerRecord, err, data))
			return err
		}
		opts.capture(log.RecordEvent(opts.SessionID, log.DirectionIn, r, data))
		opts.logger().Debug("decoded record", "to_id", r.ToID, "from_id", r.FromID,
			"record_type", usp.RecordTypeName(r.RecordType))
		if out, err = RenderRecord(r, opts.Format); err != nil {
			return err
		}
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// WithCapture opens the capture file at path, passes it to fn and closes it.
// Buffered events are flushed on close, so a capture failure is returned
// even when fn succeeds.
func WithCapture(path string, fn func(capture log.Logger) error) error {
	fl, err := log.NewFileLogger(path)
	if err != nil {
		return fmt.Errorf("failed to create capture file: %w", err)
	}

	if err := fn(fl); err != nil {
		fl.Close()
		return err
	}
	if err := fl.Close(); err != nil {
		return fmt.Errorf("failed to write capture file: %w", err)
	}
	return nil
}
