package object

import "strconv"

// Bool wraps bool and implements the Object interface. Use the True and
// False singletons rather than constructing new values.
type Bool struct {
	value bool
}

// NewBool returns the singleton for the given bool value.
func NewBool(value bool) *Bool {
	if value {
		return True
	}
	return False
}

func (b *Bool) Type() Type {
	return BOOL
}

func (b *Bool) Inspect() string {
	return strconv.FormatBool(b.value)
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) Interface() interface{} {
	return b.value
}

func (b *Bool) String() string {
	return b.Inspect()
}

func (b *Bool) Equals(other Object) bool {
	otherBool, ok := other.(*Bool)
	return ok && b.value == otherBool.value
}
