package usp

// member is implemented by every oneof member. memberName is the protobuf
// field name used as the JSON tag; an empty name marks the unset member.
type member interface {
	memberName() string
}

// oneofJSON wraps a oneof member as {"name": value}, or nil (rendered as
// null) when nothing is selected.
func oneofJSON(m member) any {
	if m == nil || m.memberName() == "" {
		return nil
	}
	return map[string]any{m.memberName(): m}
}
