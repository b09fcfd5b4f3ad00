package builder

import (
	"github.com/usp-protocol/usp-go/pkg/usp"
	"github.com/usp-protocol/usp-go/pkg/version"
)

// RecordBuilder builds a usp.Record. to_id, from_id and a record type are
// required; version defaults to the current protocol version.
type RecordBuilder struct {
	r usp.Record
}

// NewRecordBuilder returns a builder with version set to version.Current and
// no record type.
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{r: usp.Record{
		Version:    version.Current,
		RecordType: usp.RecordTypeUnset{},
	}}
}

// WithVersion overrides the protocol version, e.g. "1.2".
func (b *RecordBuilder) WithVersion(v string) *RecordBuilder {
	b.r.Version = v
	return b
}

// WithToID sets the receiving endpoint ID. Required.
func (b *RecordBuilder) WithToID(id string) *RecordBuilder {
	b.r.ToID = id
	return b
}

// WithFromID sets the sending endpoint ID. Required.
func (b *RecordBuilder) WithFromID(id string) *RecordBuilder {
	b.r.FromID = id
	return b
}

// WithPayloadSecurity sets payload_security.
func (b *RecordBuilder) WithPayloadSecurity(s usp.PayloadSecurity) *RecordBuilder {
	b.r.PayloadSecurity = s
	return b
}

// WithPayloadSecurityName sets payload_security from "PLAINTEXT" or "TLS12".
func (b *RecordBuilder) WithPayloadSecurityName(name string) (*RecordBuilder, error) {
	s, err := usp.ParsePayloadSecurity(name)
	if err != nil {
		return nil, invalid("Record", err)
	}
	b.r.PayloadSecurity = s
	return b, nil
}

// WithMACSignature sets the MAC signature. The slice is copied.
func (b *RecordBuilder) WithMACSignature(sig []byte) *RecordBuilder {
	b.r.MACSignature = cloneBytes(sig)
	return b
}

// WithSenderCert sets the DER encoded sender certificate. The slice is copied.
func (b *RecordBuilder) WithSenderCert(cert []byte) *RecordBuilder {
	b.r.SenderCert = cloneBytes(cert)
	return b
}

// AsNoSessionContextRecord carries an encoded Msg outside a session.
func (b *RecordBuilder) AsNoSessionContextRecord(payload []byte) *RecordBuilder {
	b.r.RecordType = usp.NoSessionContext{Payload: cloneBytes(payload)}
	return b
}

// AsSessionContextRecord carries payload segments of a session. Use
// SessionContextBuilder to assemble sc.
func (b *RecordBuilder) AsSessionContextRecord(sc usp.SessionContext) *RecordBuilder {
	sc.Payload = clonePayload(sc.Payload)
	b.r.RecordType = sc
	return b
}

// AsWebSocketConnectRecord selects the websocket_connect record type.
func (b *RecordBuilder) AsWebSocketConnectRecord() *RecordBuilder {
	b.r.RecordType = usp.WebSocketConnect{}
	return b
}

// AsMQTTConnectRecord declares an MQTT connection. version must be "V3_1_1"
// or "V5".
func (b *RecordBuilder) AsMQTTConnectRecord(version, subscribedTopic string) (*RecordBuilder, error) {
	v, err := usp.ParseMQTTVersion(version)
	if err != nil {
		return nil, invalid("MQTTConnect", err)
	}
	b.r.RecordType = usp.MQTTConnect{Version: v, SubscribedTopic: subscribedTopic}
	return b, nil
}

// AsSTOMPConnectRecord declares a STOMP connection. version must be "V1_2".
func (b *RecordBuilder) AsSTOMPConnectRecord(version, subscribedDestination string) (*RecordBuilder, error) {
	v, err := usp.ParseSTOMPVersion(version)
	if err != nil {
		return nil, invalid("STOMPConnect", err)
	}
	b.r.RecordType = usp.STOMPConnect{Version: v, SubscribedDestination: subscribedDestination}
	return b, nil
}

// AsDisconnectRecord selects the disconnect record type.
func (b *RecordBuilder) AsDisconnectRecord(reason string, reasonCode uint32) *RecordBuilder {
	b.r.RecordType = usp.Disconnect{Reason: reason, ReasonCode: reasonCode}
	return b
}

// AsUDSConnectRecord selects the uds_connect record type.
func (b *RecordBuilder) AsUDSConnectRecord() *RecordBuilder {
	b.r.RecordType = usp.UDSConnect{}
	return b
}

// Build returns the record or the first missing required field.
func (b *RecordBuilder) Build() (usp.Record, error) {
	switch {
	case b.r.ToID == "":
		return usp.Record{}, missing("Record", "to_id")
	case b.r.FromID == "":
		return usp.Record{}, missing("Record", "from_id")
	}
	if _, ok := b.r.RecordType.(usp.RecordTypeUnset); ok || b.r.RecordType == nil {
		return usp.Record{}, missing("Record", "record_type")
	}
	return b.r, nil
}

// SessionContextBuilder builds the session_context record type.
type SessionContextBuilder struct {
	sc usp.SessionContext
}

// NewSessionContextBuilder starts a session context for the given session and
// sequence IDs.
func NewSessionContextBuilder(sessionID, sequenceID uint64) *SessionContextBuilder {
	return &SessionContextBuilder{sc: usp.SessionContext{SessionID: sessionID, SequenceID: sequenceID}}
}

// WithExpectedID sets the next sequence ID expected from the peer.
func (b *SessionContextBuilder) WithExpectedID(id uint64) *SessionContextBuilder {
	b.sc.ExpectedID = id
	return b
}

// WithRetransmitID asks the peer to resend the record with this sequence ID.
func (b *SessionContextBuilder) WithRetransmitID(id uint64) *SessionContextBuilder {
	b.sc.RetransmitID = id
	return b
}

// WithPayloadSARState sets the segmentation state of the payload.
func (b *SessionContextBuilder) WithPayloadSARState(s usp.PayloadSARState) *SessionContextBuilder {
	b.sc.PayloadSARState = s
	return b
}

// WithPayloadrecSARState sets the segmentation state of the payload record.
func (b *SessionContextBuilder) WithPayloadrecSARState(s usp.PayloadSARState) *SessionContextBuilder {
	b.sc.PayloadrecSARState = s
	return b
}

// AddPayload appends one payload segment.
func (b *SessionContextBuilder) AddPayload(segment []byte) *SessionContextBuilder {
	b.sc.Payload = append(b.sc.Payload, append([]byte{}, segment...))
	return b
}

// Build returns the session context. It never fails.
func (b *SessionContextBuilder) Build() (usp.SessionContext, error) {
	sc := b.sc
	sc.Payload = clonePayload(sc.Payload)
	return sc, nil
}

// clonePayload deep-copies payload segments. Empty segments stay non-nil as
// they do after decoding.
func clonePayload(p [][]byte) [][]byte {
	if len(p) == 0 {
		return nil
	}
	out := make([][]byte, len(p))
	for i, seg := range p {
		out[i] = append([]byte{}, seg...)
	}
	return out
}
