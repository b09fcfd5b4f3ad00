package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/usp-protocol/usp-go/pkg/usp"
)

// Sentinel errors wrapped by BuildError.
var (
	ErrMissingField = errors.New("required field not set")
	ErrInvalidValue = errors.New("value not in legal set")
)

// BuildError reports why a value could not be built.
type BuildError struct {
	// Type is the message being built, e.g. "Record" or "Notify".
	Type string
	// Field is the protobuf name of the offending field.
	Field string
	// Value and Legal are set for values outside a closed set.
	Value string
	Legal []string
}

// Error names the type and field, and for invalid values the legal set.
func (e *BuildError) Error() string {
	if e.Legal != nil {
		return fmt.Sprintf("%s.%s: invalid value %q, expected one of %s",
			e.Type, e.Field, e.Value, strings.Join(e.Legal, ", "))
	}
	return fmt.Sprintf("%s.%s: required field not set", e.Type, e.Field)
}

// Unwrap returns ErrInvalidValue or ErrMissingField.
func (e *BuildError) Unwrap() error {
	if e.Legal != nil {
		return ErrInvalidValue
	}
	return ErrMissingField
}

func missing(typ, field string) *BuildError {
	return &BuildError{Type: typ, Field: field}
}

// invalid converts an enum parse failure into a BuildError. The usp Parse
// functions fail only with *usp.EnumError.
func invalid(typ string, err error) *BuildError {
	ee := err.(*usp.EnumError)
	return &BuildError{Type: typ, Field: ee.Enum, Value: ee.Value, Legal: ee.Legal}
}
