package usp

import (
	"encoding/json"
	"fmt"
)

// Record is the USP transport envelope.
//
// Wire encoding:
//
//	1: version           string
//	2: to_id             string
//	3: from_id           string
//	4: payload_security  PayloadSecurity
//	5: mac_signature     bytes
//	6: sender_cert       bytes
//	7-13: record_type    oneof, see RecordType
type Record struct {
	Version         string          `json:"version"`
	ToID            string          `json:"to_id"`
	FromID          string          `json:"from_id"`
	PayloadSecurity PayloadSecurity `json:"payload_security"`
	MACSignature    []byte          `json:"mac_signature,omitempty"`
	SenderCert      []byte          `json:"sender_cert,omitempty"`
	RecordType      RecordType      `json:"-"`
}

// RecordType is the record_type oneof of a Record. It is one of
// NoSessionContext, SessionContext, WebSocketConnect, MQTTConnect,
// STOMPConnect, Disconnect, UDSConnect or RecordTypeUnset.
type RecordType interface {
	member
	isRecordType()
}

// RecordTypeUnset marks a Record that selects no record type. It is never
// produced by a successful DecodeRecord.
type RecordTypeUnset struct{}

// NoSessionContext carries a single encoded Msg outside of any session.
type NoSessionContext struct {
	Payload []byte `json:"payload,omitempty"`
}

// SessionContext carries payload segments of an end-to-end session.
// Sequencing and segmentation are left to the caller.
type SessionContext struct {
	SessionID          uint64          `json:"session_id"`
	SequenceID         uint64          `json:"sequence_id"`
	ExpectedID         uint64          `json:"expected_id"`
	RetransmitID       uint64          `json:"retransmit_id"`
	PayloadSARState    PayloadSARState `json:"payload_sar_state"`
	PayloadrecSARState PayloadSARState `json:"payloadrec_sar_state"`
	Payload            [][]byte        `json:"payload,omitempty"`
}

// WebSocketConnect declares a WebSocket connection.
type WebSocketConnect struct{}

// MQTTConnect declares an MQTT connection and the topic the sender
// listens on.
type MQTTConnect struct {
	Version         MQTTVersion `json:"version"`
	SubscribedTopic string      `json:"subscribed_topic"`
}

// STOMPConnect declares a STOMP connection and the destination the sender
// listens on.
type STOMPConnect struct {
	Version               STOMPVersion `json:"version"`
	SubscribedDestination string       `json:"subscribed_destination"`
}

// Disconnect announces that the sender is closing the connection.
type Disconnect struct {
	Reason     string `json:"reason"`
	ReasonCode uint32 `json:"reason_code"`
}

// UDSConnect declares a Unix domain socket connection.
type UDSConnect struct{}

func (RecordTypeUnset) isRecordType()  {}
func (NoSessionContext) isRecordType() {}
func (SessionContext) isRecordType()   {}
func (WebSocketConnect) isRecordType() {}
func (MQTTConnect) isRecordType()      {}
func (STOMPConnect) isRecordType()     {}
func (Disconnect) isRecordType()       {}
func (UDSConnect) isRecordType()       {}

func (RecordTypeUnset) memberName() string  { return "" }
func (NoSessionContext) memberName() string { return "no_session_context" }
func (SessionContext) memberName() string   { return "session_context" }
func (WebSocketConnect) memberName() string { return "websocket_connect" }
func (MQTTConnect) memberName() string      { return "mqtt_connect" }
func (STOMPConnect) memberName() string     { return "stomp_connect" }
func (Disconnect) memberName() string       { return "disconnect" }
func (UDSConnect) memberName() string       { return "uds_connect" }

// Msg decodes the Msg carried by the record. Only NoSessionContext records
// and unsegmented SessionContext records carry a complete Msg.
func (r Record) Msg() (Msg, error) {
	switch rt := r.RecordType.(type) {
	case NoSessionContext:
		return DecodeMsg(rt.Payload)
	case SessionContext:
		if rt.PayloadSARState != SARStateNone || len(rt.Payload) != 1 {
			return Msg{}, fmt.Errorf("session context payload is segmented (%s, %d parts)", rt.PayloadSARState, len(rt.Payload))
		}
		return DecodeMsg(rt.Payload[0])
	default:
		return Msg{}, fmt.Errorf("record type %T carries no message", r.RecordType)
	}
}

func (r Record) marshal() []byte {
	var b []byte
	b = appendString(b, 1, r.Version)
	b = appendString(b, 2, r.ToID)
	b = appendString(b, 3, r.FromID)
	b = appendEnum(b, 4, int32(r.PayloadSecurity))
	b = appendBytes(b, 5, r.MACSignature)
	b = appendBytes(b, 6, r.SenderCert)

	switch rt := r.RecordType.(type) {
	case NoSessionContext:
		b = appendMessage(b, 7, appendBytes(nil, 2, rt.Payload))
	case SessionContext:
		b = appendMessage(b, 8, rt.marshal())
	case WebSocketConnect:
		b = appendMessage(b, 9, nil)
	case MQTTConnect:
		var m []byte
		m = appendEnum(m, 1, int32(rt.Version))
		m = appendString(m, 2, rt.SubscribedTopic)
		b = appendMessage(b, 10, m)
	case STOMPConnect:
		var m []byte
		m = appendEnum(m, 1, int32(rt.Version))
		m = appendString(m, 2, rt.SubscribedDestination)
		b = appendMessage(b, 11, m)
	case Disconnect:
		var m []byte
		m = appendString(m, 1, rt.Reason)
		m = appendFixed32(m, 2, rt.ReasonCode)
		b = appendMessage(b, 12, m)
	case UDSConnect:
		b = appendMessage(b, 13, nil)
	}
	return b
}

func (s SessionContext) marshal() []byte {
	var b []byte
	b = appendUint64(b, 1, s.SessionID)
	b = appendUint64(b, 2, s.SequenceID)
	b = appendUint64(b, 3, s.ExpectedID)
	b = appendUint64(b, 4, s.RetransmitID)
	b = appendEnum(b, 5, int32(s.PayloadSARState))
	b = appendEnum(b, 6, int32(s.PayloadrecSARState))
	for _, p := range s.Payload {
		b = appendMessage(b, 7, p)
	}
	return b
}

func parseRecord(b []byte) (Record, error) {
	r := Record{RecordType: RecordTypeUnset{}}
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.Version, err = f.str()
		case 2:
			r.ToID, err = f.str()
		case 3:
			r.FromID, err = f.str()
		case 4:
			var v int32
			v, err = f.enum()
			r.PayloadSecurity = PayloadSecurity(v)
		case 5:
			r.MACSignature, err = f.bytes()
		case 6:
			r.SenderCert, err = f.bytes()
		case 7:
			r.RecordType, err = sub(f, parseNoSessionContext)
		case 8:
			r.RecordType, err = sub(f, parseSessionContext)
		case 9:
			_, err = f.message()
			r.RecordType = WebSocketConnect{}
		case 10:
			r.RecordType, err = sub(f, parseMQTTConnect)
		case 11:
			r.RecordType, err = sub(f, parseSTOMPConnect)
		case 12:
			r.RecordType, err = sub(f, parseDisconnect)
		case 13:
			_, err = f.message()
			r.RecordType = UDSConnect{}
		}
		return err
	})
	return r, err
}

func parseNoSessionContext(b []byte) (NoSessionContext, error) {
	var n NoSessionContext
	err := walkFields(b, func(f field) error {
		var err error
		if f.num == 2 {
			n.Payload, err = f.bytes()
		}
		return err
	})
	return n, err
}

func parseSessionContext(b []byte) (SessionContext, error) {
	var s SessionContext
	err := walkFields(b, func(f field) error {
		var err error
		var v int32
		switch f.num {
		case 1:
			s.SessionID, err = f.varint()
		case 2:
			s.SequenceID, err = f.varint()
		case 3:
			s.ExpectedID, err = f.varint()
		case 4:
			s.RetransmitID, err = f.varint()
		case 5:
			v, err = f.enum()
			s.PayloadSARState = PayloadSARState(v)
		case 6:
			v, err = f.enum()
			s.PayloadrecSARState = PayloadSARState(v)
		case 7:
			var p []byte
			if p, err = f.message(); err == nil {
				s.Payload = append(s.Payload, append([]byte{}, p...))
			}
		}
		return err
	})
	return s, err
}

func parseMQTTConnect(b []byte) (MQTTConnect, error) {
	var m MQTTConnect
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			var v int32
			v, err = f.enum()
			m.Version = MQTTVersion(v)
		case 2:
			m.SubscribedTopic, err = f.str()
		}
		return err
	})
	return m, err
}

func parseSTOMPConnect(b []byte) (STOMPConnect, error) {
	var s STOMPConnect
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			var v int32
			v, err = f.enum()
			s.Version = STOMPVersion(v)
		case 2:
			s.SubscribedDestination, err = f.str()
		}
		return err
	})
	return s, err
}

func parseDisconnect(b []byte) (Disconnect, error) {
	var d Disconnect
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			d.Reason, err = f.str()
		case 2:
			d.ReasonCode, err = f.fixed32()
		}
		return err
	})
	return d, err
}

// MarshalJSON renders the record with its record_type as a tagged object.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	return json.Marshal(struct {
		plain
		RecordType any `json:"record_type"`
	}{plain(r), oneofJSON(r.RecordType)})
}

// MarshalJSON renders the payload as the Msg it carries, falling back to
// base64 when the payload is not a valid Msg.
func (n NoSessionContext) MarshalJSON() ([]byte, error) {
	if msg, err := DecodeMsg(n.Payload); err == nil {
		return json.Marshal(struct {
			Payload Msg `json:"payload"`
		}{msg})
	}
	type plain NoSessionContext
	return json.Marshal(plain(n))
}

// RecordTypeName returns the protobuf member name of rt, e.g. "disconnect",
// or "" when no record type is selected.
func RecordTypeName(rt RecordType) string {
	if rt == nil {
		return ""
	}
	return rt.memberName()
}
