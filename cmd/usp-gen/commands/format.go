// Package commands implements the usp-gen CLI commands.
package commands

import (
	"fmt"
	"strings"

	"github.com/usp-protocol/usp-go/pkg/render"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// Format selects how a value is written.
type Format int

const (
	FormatBinary Format = iota
	FormatJSON
	FormatCString
	FormatCArray
)

var formatNames = []string{"binary", "json", "c-str", "c-array"}

func (f Format) String() string {
	if int(f) < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat parses a --format value (case-insensitive).
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("invalid format: %s (must be %s)", s, strings.Join(formatNames, ", "))
}

// RenderRecord writes r in format f. Text formats end with a newline.
func RenderRecord(r usp.Record, f Format) ([]byte, error) {
	switch f {
	case FormatBinary:
		return usp.EncodeRecord(r), nil
	case FormatJSON:
		s, err := render.RecordJSON(r)
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	case FormatCString:
		return []byte(render.RecordCString(r)), nil
	case FormatCArray:
		return []byte(render.RecordCArray(r)), nil
	default:
		return nil, fmt.Errorf("unsupported format %s", f)
	}
}

// RenderMsg writes m in format f. Text formats end with a newline.
func RenderMsg(m usp.Msg, f Format) ([]byte, error) {
	switch f {
	case FormatBinary:
		return usp.EncodeMsg(m), nil
	case FormatJSON:
		s, err := render.MsgJSON(m)
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	case FormatCString:
		return []byte(render.MsgCString(m)), nil
	case FormatCArray:
		return []byte(render.MsgCArray(m)), nil
	default:
		return nil, fmt.Errorf("unsupported format %s", f)
	}
}
