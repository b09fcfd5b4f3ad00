package render

import (
	"fmt"
	"strings"

	"github.com/usp-protocol/usp-go/pkg/usp"
)

const bytesPerLine = 8

// isPlain reports whether c is printed verbatim inside a C string literal.
func isPlain(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte(" .!()',*[]=<>-_", c) >= 0
}

// isPreview reports whether c is shown in the comment next to a C array
// line. The set is the string set plus the double quote.
func isPreview(c byte) bool {
	return isPlain(c) || c == '"'
}

// CString renders b as a double-quoted C string literal followed by a
// newline. Bytes outside a conservative printable set become \xHH.
func CString(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b)*2 + 3)
	sb.WriteByte('"')
	for _, c := range b {
		if isPlain(c) {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	sb.WriteString("\"\n")
	return sb.String()
}

// CArray renders b as a C array definition named pb with its length in
// pb_len. Each line holds eight bytes and a preview comment.
func CArray(b []byte) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "unsigned int pb_len = %d;\n", len(b))
	sb.WriteString("const char pb[] = {\n")

	for off := 0; off < len(b); off += bytesPerLine {
		line := b[off:min(off+bytesPerLine, len(b))]

		sb.WriteString("  ")
		for _, c := range line {
			fmt.Fprintf(&sb, "0x%02x, ", c)
		}
		sb.WriteString(strings.Repeat("      ", bytesPerLine-len(line)))

		sb.WriteString("/* ")
		for _, c := range line {
			if isPreview(c) {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('_')
			}
		}
		sb.WriteString(" */\n")
	}

	sb.WriteString("};\n")
	return sb.String()
}

// RecordCString encodes r and renders it with CString.
func RecordCString(r usp.Record) string {
	return CString(usp.EncodeRecord(r))
}

// RecordCArray encodes r and renders it with CArray.
func RecordCArray(r usp.Record) string {
	return CArray(usp.EncodeRecord(r))
}

// MsgCString encodes m and renders it with CString.
func MsgCString(m usp.Msg) string {
	return CString(usp.EncodeMsg(m))
}

// MsgCArray encodes m and renders it with CArray.
func MsgCArray(m usp.Msg) string {
	return CArray(usp.EncodeMsg(m))
}
