// Package object provides the runtime value types produced by evaluating
// Mithra programs.
//
// Callers usually type assert an object.Object to a concrete type:
//
//	switch obj := obj.(type) {
//	case *object.Int:
//		// use obj.Value()
//	case *object.Float:
//		// use obj.Value()
//	}
//
// The Type() method may also be used to get the type name as a string.
package object

// Type of an object as a string.
type Type string

// Type constants
const (
	BOOL     Type = "bool"
	BUILTIN  Type = "builtin"
	FLOAT    Type = "float"
	FUNCTION Type = "function"
	INT      Type = "int"
	LIST     Type = "list"
	NIL      Type = "nil"
	STRING   Type = "string"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all Mithra runtime values implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the object.
	Inspect() string

	// Interface converts the object to a native Go value.
	Interface() interface{}

	// Equals returns true if the given object is equal to this object.
	Equals(other Object) bool
}
