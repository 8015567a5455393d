package object

import "context"

// BuiltinFunction is the signature of a Go function exposed to Mithra
// programs. Arguments arrive already evaluated, left to right.
type BuiltinFunction func(ctx context.Context, args ...Object) (Object, error)

// Builtin wraps a Go function and implements the Object interface.
type Builtin struct {
	name string
	fn   BuiltinFunction
}

// NewBuiltin returns a *Builtin with the given name and function.
func NewBuiltin(name string, fn BuiltinFunction) *Builtin {
	return &Builtin{name: name, fn: fn}
}

func (b *Builtin) Type() Type {
	return BUILTIN
}

func (b *Builtin) Inspect() string {
	return "builtin " + b.name
}

func (b *Builtin) Name() string {
	return b.name
}

// Call invokes the wrapped Go function.
func (b *Builtin) Call(ctx context.Context, args ...Object) (Object, error) {
	return b.fn(ctx, args...)
}

func (b *Builtin) Interface() interface{} {
	return b.Inspect()
}

func (b *Builtin) String() string {
	return b.Inspect()
}

func (b *Builtin) Equals(other Object) bool {
	otherB, ok := other.(*Builtin)
	return ok && b == otherB
}
