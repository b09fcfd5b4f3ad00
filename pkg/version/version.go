// Package version provides USP protocol version parsing, comparison and
// negotiation over the comma separated lists carried by GetSupportedProtocol.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the protocol version written into Records by default.
const Current = "1.3"

// Supported lists every protocol version this library can encode, oldest first.
var Supported = []string{"1.0", "1.1", "1.2", "1.3"}

// SpecVersion represents a parsed "major.minor" protocol version.
type SpecVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (SpecVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return SpecVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return SpecVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return SpecVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return SpecVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v SpecVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v SpecVersion) Compatible(other SpecVersion) bool {
	return v.Major == other.Major
}

// Less reports whether v is older than other.
func (v SpecVersion) Less(other SpecVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// ParseList parses a comma separated version list such as "1.0,1.1, 1.3".
// Whitespace around entries is ignored; empty entries are an error.
func ParseList(s string) ([]SpecVersion, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty version list")
	}

	var out []SpecVersion
	for _, part := range strings.Split(s, ",") {
		v, err := Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatList joins versions into the comma separated wire form.
func FormatList(versions []SpecVersion) string {
	parts := make([]string, len(versions))
	for i, v := range versions {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

// SupportedList returns Supported in wire form.
func SupportedList() string {
	return strings.Join(Supported, ",")
}

// Negotiate returns the highest version present in both lists.
func Negotiate(controller, agent string) (SpecVersion, error) {
	cv, err := ParseList(controller)
	if err != nil {
		return SpecVersion{}, fmt.Errorf("controller versions: %w", err)
	}
	av, err := ParseList(agent)
	if err != nil {
		return SpecVersion{}, fmt.Errorf("agent versions: %w", err)
	}

	var best SpecVersion
	found := false
	for _, c := range cv {
		for _, a := range av {
			if c == a && (!found || best.Less(c)) {
				best = c
				found = true
			}
		}
	}
	if !found {
		return SpecVersion{}, fmt.Errorf("no common version between %q and %q", controller, agent)
	}
	return best, nil
}
