package usp

// EncodeRecord returns the protobuf wire encoding of r. Encoding is
// deterministic: map entries are written in key order.
func EncodeRecord(r Record) []byte {
	return r.marshal()
}

// EncodeMsg returns the protobuf wire encoding of m.
func EncodeMsg(m Msg) []byte {
	return m.marshal()
}

// EncodeBody returns the wire encoding of the Body message wrapping body,
// i.e. field 2 of a Msg without the tag.
func EncodeBody(body Body) []byte {
	if body == nil {
		return nil
	}
	return marshalBody(body)
}

// DecodeRecord parses a Record. A record that selects no record type is
// rejected with a DecodeUnset error.
func DecodeRecord(b []byte) (Record, error) {
	r, err := parseRecord(b)
	if err != nil {
		return Record{}, malformed("Record", err)
	}
	if _, ok := r.RecordType.(RecordTypeUnset); ok {
		return Record{}, unset("Record", "record_type")
	}
	return r, nil
}

// DecodeMsg parses a Msg. The body and its request or response member
// must be set.
func DecodeMsg(b []byte) (Msg, error) {
	m, err := parseMsg(b)
	if err != nil {
		return Msg{}, malformed("Msg", err)
	}
	return m, nil
}

// DecodeBody parses the Body message produced by EncodeBody.
func DecodeBody(b []byte) (Body, error) {
	body, err := parseBody(b)
	if err != nil {
		return nil, malformed("Body", err)
	}
	if body == nil {
		return nil, unset("Body", "msg_body")
	}
	return body, nil
}
