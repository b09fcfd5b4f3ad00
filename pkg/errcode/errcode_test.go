package errcode

import (
	"math"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{7000, "Message failed"},
		{7003, "Internal error"},
		{7016, "Object does not exist"},
		{7031, "Path already registered"},
		{7104, "Invalid Record value"},
		{7800, "Vendor specific"},
		{7999, "Vendor specific"},
		{7799, ""},
		{8000, ""},
		{0, ""},
		{7032, ""},
	}

	for _, tt := range tests {
		if got := Text(tt.code); got != tt.want {
			t.Errorf("Text(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestMessage(t *testing.T) {
	if got := Message(7004, ""); got != "Invalid arguments" {
		t.Errorf("Message with empty text = %q", got)
	}
	if got := Message(7004, "bad arg"); got != "bad arg" {
		t.Errorf("Message with explicit text = %q", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want uint32
	}{
		{"zero", 0, 0},
		{"in range", 7016, 7016},
		{"max uint32", math.MaxUint32, math.MaxUint32},
		{"negative", -1, InternalError},
		{"too large", math.MaxUint32 + 1, InternalError},
		{"min int64", math.MinInt64, InternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
