package log

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/usp-protocol/usp-go/pkg/builder"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// MaxFrameData is the number of raw bytes kept in a FrameEvent.
const MaxFrameData = 4096

// Event represents one captured codec operation.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups the events of one tool run (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction is DirectionOut for encoding and DirectionIn for decoding.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// ToID and FromID are the endpoint IDs of a Record.
	ToID   string `cbor:"6,keyasint,omitempty"`
	FromID string `cbor:"7,keyasint,omitempty"`

	// Source names the input, e.g. a description file.
	Source string `cbor:"8,keyasint,omitempty"`

	Frame   *FrameEvent     `cbor:"10,keyasint,omitempty"`
	Message *MessageEvent   `cbor:"11,keyasint,omitempty"`
	Error   *ErrorEventData `cbor:"14,keyasint,omitempty"`
}

// Direction indicates whether bytes were produced or consumed.
type Direction uint8

const (
	// DirectionIn marks decoded input.
	DirectionIn Direction = 0
	// DirectionOut marks encoded output.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which protocol layer the event belongs to.
type Layer uint8

const (
	// LayerRecord is the Record envelope.
	LayerRecord Layer = 0
	// LayerMsg is a bare Msg.
	LayerMsg Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerRecord:
		return "RECORD"
	case LayerMsg:
		return "MSG"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a successfully handled value.
	CategoryMessage Category = 0
	// CategoryError indicates a failure.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent holds the wire bytes of a Record or Msg.
type FrameEvent struct {
	// Size is the full encoded size in bytes.
	Size int `cbor:"1,keyasint"`

	// Data is the raw bytes, truncated to MaxFrameData.
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// MessageEvent summarizes a decoded or encoded value.
type MessageEvent struct {
	// RecordType is the record_type member name, empty for bare messages.
	RecordType string `cbor:"1,keyasint,omitempty"`

	// MsgID and MsgType come from the Msg header when a Msg is available.
	MsgID   string `cbor:"2,keyasint,omitempty"`
	MsgType string `cbor:"3,keyasint,omitempty"`

	// Body is "request", "response" or "error".
	Body string `cbor:"4,keyasint,omitempty"`

	// JSON is the compact JSON rendering of the value.
	JSON string `cbor:"5,keyasint,omitempty"`
}

// ErrorEventData captures a codec or builder failure.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Kind is "malformed", "unset", "missing_field" or "invalid_value"
	// when the error is one of the typed codec or builder errors.
	Kind string `cbor:"3,keyasint,omitempty"`

	// Field names the offending field, if known.
	Field string `cbor:"4,keyasint,omitempty"`
}

func newFrame(data []byte) *FrameEvent {
	if data == nil {
		return nil
	}
	f := &FrameEvent{Size: len(data), Data: data}
	if len(data) > MaxFrameData {
		f.Data = data[:MaxFrameData]
		f.Truncated = true
	}
	return f
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func msgSummary(m usp.Msg) *MessageEvent {
	ev := &MessageEvent{
		MsgID:   m.Header.MsgID,
		MsgType: m.Header.MsgType.String(),
	}
	if m.Body != nil {
		ev.Body = m.Body.MsgType().Kind().String()
	}
	return ev
}

// RecordEvent describes an encoded or decoded Record. data may be nil.
func RecordEvent(sessionID string, dir Direction, r usp.Record, data []byte) Event {
	ev := &MessageEvent{JSON: compactJSON(r)}
	if r.RecordType != nil {
		ev.RecordType = usp.RecordTypeName(r.RecordType)
	}
	if m, err := r.Msg(); err == nil {
		s := msgSummary(m)
		ev.MsgID, ev.MsgType, ev.Body = s.MsgID, s.MsgType, s.Body
	}
	return Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Direction: dir,
		Layer:     LayerRecord,
		Category:  CategoryMessage,
		ToID:      r.ToID,
		FromID:    r.FromID,
		Frame:     newFrame(data),
		Message:   ev,
	}
}

// MsgEvent describes an encoded or decoded Msg. data may be nil.
func MsgEvent(sessionID string, dir Direction, m usp.Msg, data []byte) Event {
	ev := msgSummary(m)
	ev.JSON = compactJSON(m)
	return Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Direction: dir,
		Layer:     LayerMsg,
		Category:  CategoryMessage,
		Frame:     newFrame(data),
		Message:   ev,
	}
}

// ErrorEvent describes a failure at layer. Typed decode and build errors
// contribute their kind and field.
func ErrorEvent(sessionID string, dir Direction, layer Layer, err error, data []byte) Event {
	ed := &ErrorEventData{Layer: layer, Message: err.Error()}

	var de *usp.DecodeError
	var be *builder.BuildError
	switch {
	case errors.As(err, &de):
		ed.Kind = de.Kind.String()
		ed.Field = de.Field
	case errors.As(err, &be):
		ed.Field = be.Field
		ed.Kind = "missing_field"
		if errors.Is(err, builder.ErrInvalidValue) {
			ed.Kind = "invalid_value"
		}
	}

	return Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Direction: dir,
		Layer:     layer,
		Category:  CategoryError,
		Frame:     newFrame(data),
		Error:     ed,
	}
}
