package usp

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// field is one decoded protobuf field. Scalars land in val, length-delimited
// payloads in buf (aliasing the input).
type field struct {
	num protowire.Number
	typ protowire.Type
	val uint64
	buf []byte
}

// walkFields calls fn for every field in b. Groups are skipped.
func walkFields(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.val, n = protowire.ConsumeVarint(b)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			f.val = uint64(v)
		case protowire.Fixed64Type:
			f.val, n = protowire.ConsumeFixed64(b)
		case protowire.BytesType:
			f.buf, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func (f field) expect(typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("field %d: wire type %d, want %d", f.num, f.typ, typ)
	}
	return nil
}

func (f field) str() (string, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return "", err
	}
	if !utf8.Valid(f.buf) {
		return "", fmt.Errorf("field %d: invalid UTF-8", f.num)
	}
	return string(f.buf), nil
}

// bytes returns a copy of the payload, nil when empty.
func (f field) bytes() ([]byte, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return nil, err
	}
	if len(f.buf) == 0 {
		return nil, nil
	}
	return slices.Clone(f.buf), nil
}

func (f field) message() ([]byte, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return nil, err
	}
	return f.buf, nil
}

func (f field) fixed32() (uint32, error) {
	if err := f.expect(protowire.Fixed32Type); err != nil {
		return 0, err
	}
	return uint32(f.val), nil
}

func (f field) varint() (uint64, error) {
	if err := f.expect(protowire.VarintType); err != nil {
		return 0, err
	}
	return f.val, nil
}

func (f field) boolean() (bool, error) {
	if err := f.expect(protowire.VarintType); err != nil {
		return false, err
	}
	return protowire.DecodeBool(f.val), nil
}

func (f field) enum() (int32, error) {
	if err := f.expect(protowire.VarintType); err != nil {
		return 0, err
	}
	return int32(f.val), nil
}

// addString appends s to *dst, keeping nil for the empty state.
func (f field) addString(dst *[]string) error {
	s, err := f.str()
	if err != nil {
		return err
	}
	*dst = append(*dst, s)
	return nil
}

// mapEntry decodes a map<string, string> entry into *dst.
func (f field) mapEntry(dst *map[string]string) error {
	b, err := f.message()
	if err != nil {
		return err
	}
	var k, v string
	err = walkFields(b, func(e field) error {
		var err error
		switch e.num {
		case 1:
			k, err = e.str()
		case 2:
			v, err = e.str()
		}
		return err
	})
	if err != nil {
		return err
	}
	if *dst == nil {
		*dst = make(map[string]string)
	}
	(*dst)[k] = v
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendEnum(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendFixed32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, v)
}

// appendMessage always writes the field, even for an empty message, so that
// oneof members and singular sub-messages keep their presence.
func appendMessage(b []byte, num protowire.Number, m []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m)
}

// appendStrings writes every element, including empty strings.
func appendStrings(b []byte, num protowire.Number, ss []string) []byte {
	for _, s := range ss {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	return b
}

// appendStringMap writes map entries ordered by key.
func appendStringMap(b []byte, num protowire.Number, m map[string]string) []byte {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		var entry []byte
		entry = appendString(entry, 1, k)
		entry = appendString(entry, 2, m[k])
		b = appendMessage(b, num, entry)
	}
	return b
}

// sub decodes a singular sub-message field with parse.
func sub[T any](f field, parse func([]byte) (T, error)) (T, error) {
	b, err := f.message()
	if err != nil {
		var zero T
		return zero, err
	}
	return parse(b)
}

// addSub decodes a repeated sub-message element and appends it to *dst.
func addSub[T any](dst *[]T, f field, parse func([]byte) (T, error)) error {
	v, err := sub(f, parse)
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}
