package usp

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protowire"
)

// Msg is a USP message: a header plus exactly one body.
//
// Wire encoding:
//
//	1: header  Header
//	2: body    { 1: request | 2: response | 3: error }
type Msg struct {
	Header Header `json:"header"`
	Body   Body   `json:"-"`
}

// Header identifies a message.
//
// Wire encoding:
//
//	1: msg_id    string
//	2: msg_type  MsgType
type Header struct {
	MsgID   string  `json:"msg_id"`
	MsgType MsgType `json:"msg_type"`
}

// BodyKind is the top-level branch of the body oneof.
type BodyKind uint8

const (
	BodyRequest BodyKind = iota
	BodyResponse
	BodyError
)

// String returns the protobuf field name of the branch.
func (k BodyKind) String() string {
	switch k {
	case BodyRequest:
		return "request"
	case BodyResponse:
		return "response"
	case BodyError:
		return "error"
	default:
		return "unknown"
	}
}

// Kind returns the body branch a message type belongs to.
func (t MsgType) Kind() BodyKind {
	switch t {
	case MsgTypeError:
		return BodyError
	case MsgTypeGetResp, MsgTypeSetResp, MsgTypeOperateResp, MsgTypeAddResp,
		MsgTypeDeleteResp, MsgTypeGetSupportedDMResp, MsgTypeGetInstancesResp,
		MsgTypeNotifyResp, MsgTypeGetSupportedProtoResp, MsgTypeRegisterResp,
		MsgTypeDeregisterResp:
		return BodyResponse
	default:
		return BodyRequest
	}
}

// Body is the payload of a Msg: one of the request types (Get, Set, ...),
// one of the response types (GetResp, SetResp, ...) or Error.
type Body interface {
	member
	// MsgType returns the header type implied by the body.
	MsgType() MsgType
	marshal() []byte
}

// memberNumbers holds the field number of each request and response type
// inside the Request and Response messages.
var memberNumbers = map[MsgType]protowire.Number{
	MsgTypeGet:                   1,
	MsgTypeGetSupportedDM:        2,
	MsgTypeGetInstances:          3,
	MsgTypeSet:                   4,
	MsgTypeAdd:                   5,
	MsgTypeDelete:                6,
	MsgTypeOperate:               7,
	MsgTypeNotify:                8,
	MsgTypeGetSupportedProto:     9,
	MsgTypeRegister:              10,
	MsgTypeDeregister:            11,
	MsgTypeGetResp:               1,
	MsgTypeGetSupportedDMResp:    2,
	MsgTypeGetInstancesResp:      3,
	MsgTypeSetResp:               4,
	MsgTypeAddResp:               5,
	MsgTypeDeleteResp:            6,
	MsgTypeOperateResp:           7,
	MsgTypeNotifyResp:            8,
	MsgTypeGetSupportedProtoResp: 9,
	MsgTypeRegisterResp:          10,
	MsgTypeDeregisterResp:        11,
}

type bodyParser func([]byte) (Body, error)

func asBody[T Body](parse func([]byte) (T, error)) bodyParser {
	return func(b []byte) (Body, error) {
		v, err := parse(b)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var requestParsers = map[protowire.Number]bodyParser{
	1:  asBody(parseGet),
	2:  asBody(parseGetSupportedDM),
	3:  asBody(parseGetInstances),
	4:  asBody(parseSet),
	5:  asBody(parseAdd),
	6:  asBody(parseDelete),
	7:  asBody(parseOperate),
	8:  asBody(parseNotify),
	9:  asBody(parseGetSupportedProtocol),
	10: asBody(parseRegister),
	11: asBody(parseDeregister),
}

var responseParsers = map[protowire.Number]bodyParser{
	1:  asBody(parseGetResp),
	2:  asBody(parseGetSupportedDMResp),
	3:  asBody(parseGetInstancesResp),
	4:  asBody(parseSetResp),
	5:  asBody(parseAddResp),
	6:  asBody(parseDeleteResp),
	7:  asBody(parseOperateResp),
	8:  asBody(parseNotifyResp),
	9:  asBody(parseGetSupportedProtocolResp),
	10: asBody(parseRegisterResp),
	11: asBody(parseDeregisterResp),
}

func (m Msg) marshal() []byte {
	var h []byte
	h = appendString(h, 1, m.Header.MsgID)
	h = appendEnum(h, 2, int32(m.Header.MsgType))

	b := appendMessage(nil, 1, h)
	if m.Body != nil {
		b = appendMessage(b, 2, marshalBody(m.Body))
	}
	return b
}

// marshalBody encodes the Body message wrapping body.
func marshalBody(body Body) []byte {
	t := body.MsgType()
	switch t.Kind() {
	case BodyError:
		return appendMessage(nil, 3, body.marshal())
	case BodyResponse:
		return appendMessage(nil, 2, appendMessage(nil, memberNumbers[t], body.marshal()))
	default:
		return appendMessage(nil, 1, appendMessage(nil, memberNumbers[t], body.marshal()))
	}
}

func parseMsg(b []byte) (Msg, error) {
	var m Msg
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Header, err = sub(f, parseHeader)
		case 2:
			m.Body, err = sub(f, parseBody)
		}
		return err
	})
	if err != nil {
		return Msg{}, err
	}
	if m.Body == nil {
		return Msg{}, unset("Msg", "body")
	}
	return m, nil
}

func parseHeader(b []byte) (Header, error) {
	var h Header
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			h.MsgID, err = f.str()
		case 2:
			var v int32
			v, err = f.enum()
			h.MsgType = MsgType(v)
		}
		return err
	})
	return h, err
}

// parseBody decodes the Body message. A body that selects nothing yields a
// nil Body; a request or response that selects nothing is an error.
func parseBody(b []byte) (Body, error) {
	var body Body
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			body, err = sub(f, func(b []byte) (Body, error) {
				return parseMember(b, "Request", "req_type", requestParsers)
			})
		case 2:
			body, err = sub(f, func(b []byte) (Body, error) {
				return parseMember(b, "Response", "resp_type", responseParsers)
			})
		case 3:
			body, err = sub[Body](f, asBody(parseError))
		}
		return err
	})
	return body, err
}

func parseMember(b []byte, typ, oneof string, parsers map[protowire.Number]bodyParser) (Body, error) {
	var body Body
	err := walkFields(b, func(f field) error {
		parse, ok := parsers[f.num]
		if !ok {
			return nil
		}
		var err error
		body, err = sub[Body](f, parse)
		return err
	})
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, unset(typ, oneof)
	}
	return body, nil
}

// MarshalJSON renders the body as {"request": {"get": {...}}},
// {"response": {...}} or {"error": {...}}.
func (m Msg) MarshalJSON() ([]byte, error) {
	type plain Msg
	return json.Marshal(struct {
		plain
		Body any `json:"body"`
	}{plain(m), bodyJSON(m.Body)})
}

func bodyJSON(body Body) any {
	if body == nil {
		return nil
	}
	inner := oneofJSON(body)
	if k := body.MsgType().Kind(); k != BodyError {
		return map[string]any{k.String(): inner}
	}
	return inner
}
