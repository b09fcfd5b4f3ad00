package render

import (
	"encoding/json"
	"fmt"

	"github.com/usp-protocol/usp-go/pkg/usp"
)

// SerializationError reports a value that could not be rendered.
type SerializationError struct {
	Type  string
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Type, e.Cause)
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}

// RecordJSON renders r as JSON indented by two spaces. A NoSessionContext
// payload holding a valid Msg is rendered as that Msg.
func RecordJSON(r usp.Record) (string, error) {
	return indent("Record", r)
}

// MsgJSON renders m as JSON indented by two spaces.
func MsgJSON(m usp.Msg) (string, error) {
	return indent("Msg", m)
}

// BodyJSON renders a body the way it appears inside a Msg, e.g.
// {"request": {"get": {...}}}.
func BodyJSON(body usp.Body) (string, error) {
	m := usp.Msg{Body: body}
	if body != nil {
		m.Header.MsgType = body.MsgType()
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", &SerializationError{Type: "Body", Cause: err}
	}
	var wrapper struct {
		Body json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return "", &SerializationError{Type: "Body", Cause: err}
	}
	return indent("Body", wrapper.Body)
}

func indent(typ string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", &SerializationError{Type: typ, Cause: err}
	}
	return string(data), nil
}
