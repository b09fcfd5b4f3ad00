package usp

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by DecodeError.
var (
	ErrMalformed = errors.New("malformed protobuf data")
	ErrUnset     = errors.New("required oneof is unset")
)

// DecodeErrorKind distinguishes corrupt input from valid but empty input.
type DecodeErrorKind uint8

const (
	// DecodeMalformed covers truncated data, bad tags, wrong wire types and
	// invalid UTF-8.
	DecodeMalformed DecodeErrorKind = iota
	// DecodeUnset means the bytes parsed but a mandatory oneof selected nothing.
	DecodeUnset
)

// String returns the kind name.
func (k DecodeErrorKind) String() string {
	switch k {
	case DecodeMalformed:
		return "malformed"
	case DecodeUnset:
		return "unset"
	default:
		return "unknown"
	}
}

// DecodeError reports why bytes could not be turned into a value.
type DecodeError struct {
	Kind DecodeErrorKind
	// Type is the message being decoded, e.g. "Record" or "Msg".
	Type string
	// Field names the oneof for DecodeUnset errors.
	Field string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Kind == DecodeUnset {
		return fmt.Sprintf("failed to decode %s: %s is not set", e.Type, e.Field)
	}
	return fmt.Sprintf("failed to decode %s: %v", e.Type, e.Cause)
}

// Unwrap returns the cause.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func malformed(typ string, err error) *DecodeError {
	if de, ok := err.(*DecodeError); ok {
		return de
	}
	return &DecodeError{Kind: DecodeMalformed, Type: typ, Cause: fmt.Errorf("%w: %w", ErrMalformed, err)}
}

func unset(typ, field string) *DecodeError {
	return &DecodeError{Kind: DecodeUnset, Type: typ, Field: field, Cause: ErrUnset}
}
