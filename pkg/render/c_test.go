package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/usp-protocol/usp-go/pkg/usp"
)

func TestCString(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, "\"\"\n"},
		{"plain", []byte("Device.X()"), "\"Device.X()\"\n"},
		{"punctuation", []byte(" .!()',*[]=<>-_"), "\" .!()',*[]=<>-_\"\n"},
		{"quote escaped", []byte(`a"b`), "\"a\\x22b\"\n"},
		{"control bytes", []byte{0x00, 0x0a, 0xff}, "\"\\x00\\x0a\\xff\"\n"},
		{"colon and slash", []byte("proto::a/b"), "\"proto\\x3a\\x3aa\\x2fb\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CString(tt.in))
		})
	}
}

func TestCArray(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "unsigned int pb_len = 0;\nconst char pb[] = {\n};\n", CArray(nil))
	})

	t.Run("short line padded", func(t *testing.T) {
		want := "unsigned int pb_len = 4;\n" +
			"const char pb[] = {\n" +
			"  0x48, 0x69, 0x22, 0x00, " + strings.Repeat(" ", 24) + "/* Hi\"_ */\n" +
			"};\n"
		assert.Equal(t, want, CArray([]byte("Hi\"\x00")))
	})

	t.Run("full and partial lines", func(t *testing.T) {
		want := "unsigned int pb_len = 9;\n" +
			"const char pb[] = {\n" +
			"  0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, /* 01234567 */\n" +
			"  0x3a, " + strings.Repeat(" ", 42) + "/* _ */\n" +
			"};\n"
		assert.Equal(t, want, CArray([]byte("01234567:")))
	})
}

func TestPreviewColumnAligned(t *testing.T) {
	out := CArray([]byte("abcdefghijk"))
	lines := strings.Split(strings.TrimSuffix(out, "};\n"), "\n")
	var cols []int
	for _, l := range lines {
		if i := strings.Index(l, "/*"); i >= 0 {
			cols = append(cols, i)
		}
	}
	assert.Len(t, cols, 2)
	assert.Equal(t, cols[0], cols[1])
}

func TestRecordAndMsgLiterals(t *testing.T) {
	r := usp.Record{
		Version:    "1.3",
		ToID:       "proto::to",
		FromID:     "proto::from",
		RecordType: usp.Disconnect{Reason: "Bye"},
	}
	data := usp.EncodeRecord(r)
	assert.Equal(t, CString(data), RecordCString(r))
	assert.Equal(t, CArray(data), RecordCArray(r))
	assert.True(t, strings.HasPrefix(RecordCString(r), "\"\\x0a\\x031.3\\x12\\x09proto\\x3a\\x3ato"))

	m := usp.Msg{Header: usp.Header{MsgID: "1", MsgType: usp.MsgTypeGet}, Body: usp.Get{ParamPaths: []string{"Device."}}}
	assert.Equal(t, CString(usp.EncodeMsg(m)), MsgCString(m))
	assert.Equal(t, CArray(usp.EncodeMsg(m)), MsgCArray(m))
}
