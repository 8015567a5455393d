package evaluator

import (
	"context"

	"github.com/mithra-lang/mithra/object"
)

// DefaultBuiltins returns the builtin functions available to every program
// unless disabled: add, sub, mul, div and len.
func DefaultBuiltins() []*object.Builtin {
	return []*object.Builtin{
		object.NewBuiltin("add", builtinAdd),
		object.NewBuiltin("sub", builtinSub),
		object.NewBuiltin("mul", builtinMul),
		object.NewBuiltin("div", builtinDiv),
		object.NewBuiltin("len", builtinLen),
	}
}

func builtinAdd(ctx context.Context, args ...object.Object) (object.Object, error) {
	return numericOp("add", args,
		func(x, y int64) int64 { return x + y },
		func(x, y float64) float64 { return x + y })
}

func builtinSub(ctx context.Context, args ...object.Object) (object.Object, error) {
	return numericOp("sub", args,
		func(x, y int64) int64 { return x - y },
		func(x, y float64) float64 { return x - y })
}

func builtinMul(ctx context.Context, args ...object.Object) (object.Object, error) {
	return numericOp("mul", args,
		func(x, y int64) int64 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// builtinDiv implements true division: the result is always a float, and a
// zero divisor is a runtime error rather than an infinity.
func builtinDiv(ctx context.Context, args ...object.Object) (object.Object, error) {
	if len(args) != 2 {
		return nil, NewArityError("div", 2, len(args))
	}
	x, ok := asFloat(args[0])
	if !ok {
		return nil, NewTypeError("div() expected a number (%s given)", args[0].Type())
	}
	y, ok := asFloat(args[1])
	if !ok {
		return nil, NewTypeError("div() expected a number (%s given)", args[1].Type())
	}
	if y == 0 {
		return nil, NewZeroDivisionError()
	}
	return object.NewFloat(x / y), nil
}

func builtinLen(ctx context.Context, args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, NewArityError("len", 1, len(args))
	}
	switch arg := args[0].(type) {
	case *object.String:
		return object.NewInt(int64(len([]rune(arg.Value())))), nil
	case *object.List:
		return object.NewInt(int64(arg.Len())), nil
	}
	return nil, NewTypeError("len() expected a string or list (%s given)", args[0].Type())
}

// numericOp applies a binary arithmetic operation with the usual promotion:
// two ints yield an int, anything involving a float yields a float.
func numericOp(
	name string,
	args []object.Object,
	intOp func(x, y int64) int64,
	floatOp func(x, y float64) float64,
) (object.Object, error) {
	if len(args) != 2 {
		return nil, NewArityError(name, 2, len(args))
	}
	left, right := args[0], args[1]
	if l, ok := left.(*object.Int); ok {
		if r, ok := right.(*object.Int); ok {
			return object.NewInt(intOp(l.Value(), r.Value())), nil
		}
	}
	x, ok := asFloat(left)
	if !ok {
		return nil, NewTypeError("%s() expected a number (%s given)", name, left.Type())
	}
	y, ok := asFloat(right)
	if !ok {
		return nil, NewTypeError("%s() expected a number (%s given)", name, right.Type())
	}
	return object.NewFloat(floatOp(x, y)), nil
}

func asFloat(obj object.Object) (float64, bool) {
	switch obj := obj.(type) {
	case *object.Int:
		return float64(obj.Value()), true
	case *object.Float:
		return obj.Value(), true
	}
	return 0, false
}
