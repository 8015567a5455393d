package object

import "fmt"

// String wraps string and implements the Object interface.
type String struct {
	value string
}

// NewString returns a *String with the given value.
func NewString(value string) *String {
	return &String{value: value}
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) Inspect() string {
	return fmt.Sprintf("%q", s.value)
}

func (s *String) Value() string {
	return s.value
}

func (s *String) Interface() interface{} {
	return s.value
}

func (s *String) String() string {
	return s.value
}

func (s *String) Equals(other Object) bool {
	otherStr, ok := other.(*String)
	return ok && s.value == otherStr.value
}
