package ast

import "strings"

// Var is an expression node that refers to a variable by name. The name is
// resolved against the environment at evaluation time, not at parse time.
type Var struct {
	Name string
}

func (x *Var) exprNode() {}

func (x *Var) String() string { return x.Name }

// Assign is an expression node that binds the value of an expression to a
// variable name in the innermost scope.
type Assign struct {
	Name  string
	Value Node
}

func (x *Assign) exprNode() {}

func (x *Assign) String() string { return x.Name + " = " + x.Value.String() }

// Func is an expression node that defines a named function. Parameter names
// must be pairwise distinct; the evaluator enforces this when the definition
// is registered. The function's result is the result of its last body
// expression.
type Func struct {
	Name   string
	Params []string
	Body   []Node
}

func (x *Func) exprNode() {}

func (x *Func) String() string {
	body := make([]string, 0, len(x.Body))
	for _, expr := range x.Body {
		body = append(body, expr.String())
	}
	return x.Name + "(" + strings.Join(x.Params, ", ") + ") = " + strings.Join(body, "; ")
}

// Call is an expression node that invokes a named function with argument
// expressions, evaluated left to right at call time.
type Call struct {
	Name string
	Args []Node
}

func (x *Call) exprNode() {}

func (x *Call) String() string {
	args := make([]string, 0, len(x.Args))
	for _, arg := range x.Args {
		args = append(args, arg.String())
	}
	return x.Name + "(" + strings.Join(args, ", ") + ")"
}
