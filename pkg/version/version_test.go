package version

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		major uint16
		minor uint16
	}{
		{"1.0", 1, 0},
		{"1.1", 1, 1},
		{"2.0", 2, 0},
		{"10.23", 10, 23},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v.Major != tt.major {
				t.Errorf("Major = %d, want %d", v.Major, tt.major)
			}
			if v.Minor != tt.minor {
				t.Errorf("Minor = %d, want %d", v.Minor, tt.minor)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"1",
		"abc",
		"1.0.0",
		"1.x",
		"-1.0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestSpecVersion_MajorMinor(t *testing.T) {
	v, err := Parse("1.0")
	if err != nil {
		t.Fatal(err)
	}
	if v.Major != 1 {
		t.Errorf("Major = %d, want 1", v.Major)
	}
	if v.Minor != 0 {
		t.Errorf("Minor = %d, want 0", v.Minor)
	}
}

func TestSpecVersion_String(t *testing.T) {
	v, err := Parse("1.3")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "1.3" {
		t.Errorf("String() = %q, want %q", v.String(), "1.3")
	}

	v2, err := Parse("10.23")
	if err != nil {
		t.Fatal(err)
	}
	if v2.String() != "10.23" {
		t.Errorf("String() = %q, want %q", v2.String(), "10.23")
	}
}

func TestCompatible_SameMajor(t *testing.T) {
	v1, _ := Parse("1.0")
	v2, _ := Parse("1.1")

	if !v1.Compatible(v2) {
		t.Error("1.0 should be compatible with 1.1")
	}
	if !v2.Compatible(v1) {
		t.Error("1.1 should be compatible with 1.0")
	}
}

func TestCompatible_DifferentMajor(t *testing.T) {
	v1, _ := Parse("1.0")
	v2, _ := Parse("2.0")

	if v1.Compatible(v2) {
		t.Error("1.0 should NOT be compatible with 2.0")
	}
	if v2.Compatible(v1) {
		t.Error("2.0 should NOT be compatible with 1.0")
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0", "1.1", true},
		{"1.3", "1.2", false},
		{"1.9", "2.0", true},
		{"2.0", "1.9", false},
		{"1.2", "1.2", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"<"+tt.b, func(t *testing.T) {
			a, _ := Parse(tt.a)
			b, _ := Parse(tt.b)
			if got := a.Less(b); got != tt.want {
				t.Errorf("%s.Less(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	vs, err := ParseList("1.0, 1.1,1.3")
	if err != nil {
		t.Fatalf("ParseList returned error: %v", err)
	}
	if len(vs) != 3 {
		t.Fatalf("ParseList returned %d versions, want 3", len(vs))
	}
	if got := FormatList(vs); got != "1.0,1.1,1.3" {
		t.Errorf("FormatList = %q, want %q", got, "1.0,1.1,1.3")
	}

	for _, bad := range []string{"", "1.0,,1.1", "1.0,x"} {
		if _, err := ParseList(bad); err == nil {
			t.Errorf("ParseList(%q) should return error", bad)
		}
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name       string
		controller string
		agent      string
		want       string
		wantErr    bool
	}{
		{"highest common", "1.0,1.1,1.2", "1.1,1.2,1.3", "1.2", false},
		{"single", "1.3", "1.0,1.3", "1.3", false},
		{"unordered", "1.3,1.0", "1.0,1.3", "1.3", false},
		{"disjoint", "1.0", "1.3", "", true},
		{"malformed", "one", "1.3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Negotiate(tt.controller, tt.agent)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Negotiate error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("Negotiate = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSupportedList(t *testing.T) {
	if got := SupportedList(); got != "1.0,1.1,1.2,1.3" {
		t.Errorf("SupportedList() = %q", got)
	}
}

func TestCurrent(t *testing.T) {
	v, err := Parse(Current)
	if err != nil {
		t.Fatalf("Parse(Current) returned error: %v", err)
	}
	if v.Major != 1 || v.Minor != 3 {
		t.Errorf("Current version = %s, want 1.3", v)
	}
	if Supported[len(Supported)-1] != Current {
		t.Errorf("Current %s is not the newest supported version", Current)
	}
}
