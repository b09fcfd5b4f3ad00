// Package usp defines the data model and protobuf wire format of the User
// Services Platform (USP) protocol.
//
// A Record is the transport envelope. Its record_type selects either a
// connection-level declaration (WebSocket, MQTT, STOMP, UDS, Disconnect) or
// a payload carrier (NoSessionContext, SessionContext) holding an encoded Msg.
// A Msg pairs a Header with exactly one Body: a request, a response or an
// Error.
//
// # Values
//
// Values are plain Go structs and are treated as immutable once built.
// Construct them with package builder, or decode them with DecodeRecord and
// DecodeMsg. Empty repeated fields, maps and byte slices are always nil so
// that decode(encode(v)) is deep-equal to v.
//
// # Oneofs
//
// Protobuf oneofs map to sealed interfaces (RecordType, Body,
// AddOperStatus, ...). RecordTypeUnset is the explicit "nothing selected"
// member of RecordType; decoding a Record that selects nothing fails with a
// DecodeError of kind DecodeUnset.
//
// # Wire Encoding
//
// Encoding follows proto3 presence rules: zero scalars, empty strings and
// empty repeated fields are omitted, map entries are written in key order and
// oneof members are always written. The same value always encodes to the
// same bytes.
package usp
