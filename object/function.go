package object

import "github.com/mithra-lang/mithra/ast"

// Function is a user-defined Mithra function registered by evaluating a
// function definition. It holds the definition's AST; the evaluator runs the
// body in a fresh environment whose parent is the global environment, so
// functions see their parameters and global bindings but never the caller's
// locals.
type Function struct {
	name   string
	params []string
	body   []ast.Node
}

// NewFunction returns a *Function for the given definition.
func NewFunction(name string, params []string, body []ast.Node) *Function {
	return &Function{name: name, params: params, body: body}
}

func (f *Function) Type() Type {
	return FUNCTION
}

func (f *Function) Inspect() string {
	return "function " + f.name
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) Params() []string {
	return f.params
}

func (f *Function) Body() []ast.Node {
	return f.body
}

// Arity returns the number of parameters the function declares.
func (f *Function) Arity() int {
	return len(f.params)
}

func (f *Function) Interface() interface{} {
	return f.Inspect()
}

func (f *Function) String() string {
	return f.Inspect()
}

func (f *Function) Equals(other Object) bool {
	otherFn, ok := other.(*Function)
	return ok && f == otherFn
}
