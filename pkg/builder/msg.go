package builder

import "github.com/usp-protocol/usp-go/pkg/usp"

// MsgBuilder builds a usp.Msg. msg_id and body are required; msg_type is
// derived from the body.
type MsgBuilder struct {
	id   string
	body usp.Body
}

// NewMsgBuilder returns an empty MsgBuilder.
func NewMsgBuilder() *MsgBuilder {
	return &MsgBuilder{}
}

// WithMsgID sets the message ID. Required.
func (b *MsgBuilder) WithMsgID(id string) *MsgBuilder {
	b.id = id
	return b
}

// WithBody sets the body. The header's msg_type follows from it.
func (b *MsgBuilder) WithBody(body usp.Body) *MsgBuilder {
	b.body = body
	return b
}

// Build returns the Msg, or a BuildError when msg_id or the body is missing.
func (b *MsgBuilder) Build() (usp.Msg, error) {
	if b.id == "" {
		return usp.Msg{}, missing("Msg", "msg_id")
	}
	if b.body == nil {
		return usp.Msg{}, missing("Msg", "body")
	}
	return usp.Msg{
		Header: usp.Header{MsgID: b.id, MsgType: b.body.MsgType()},
		Body:   b.body,
	}, nil
}
