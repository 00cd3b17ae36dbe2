package values

// Text is an optional string. The zero value is absent, which keeps "never set"
// apart from "set to the empty string".
type Text struct {
	value string
	set   bool
}

// Some returns a present Text holding s (s may be empty)
func Some(s string) Text {
	return Text{value: s, set: true}
}

// None returns an absent Text
func None() Text {
	return Text{}
}

// TextFromPtr maps nil to absent and anything else to a present value
func TextFromPtr(s *string) Text {
	if s == nil {
		return None()
	}
	return Some(*s)
}

// Get returns the value and whether it is present
func (t Text) Get() (string, bool) {
	return t.value, t.set
}

// IsSet reports whether a value is present
func (t Text) IsSet() bool {
	return t.set
}

// String returns the value, "" when absent
func (t Text) String() string {
	return t.value
}
