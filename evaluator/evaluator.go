// Package evaluator walks a Mithra AST and produces runtime values.
//
// One Evaluator owns one global environment and one function table for the
// lifetime of a program run. Each function call evaluates its body in a new
// environment whose parent is the global environment, so a function sees its
// parameters and global bindings but never the caller's locals.
package evaluator

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/mithra-lang/mithra/ast"
	"github.com/mithra-lang/mithra/object"
)

// Option is a configuration function for an Evaluator.
type Option func(*Evaluator)

// WithoutDefaultBuiltins creates an Evaluator with an empty function table.
func WithoutDefaultBuiltins() Option {
	return func(e *Evaluator) {
		e.functions = make(map[string]object.Object)
	}
}

// Evaluator walks an AST against a global environment and a function table.
// An Evaluator is not safe for concurrent use; run independent programs on
// independent Evaluators.
type Evaluator struct {
	global    *Environment
	functions map[string]object.Object
}

// New returns an Evaluator with the default builtins registered.
func New(options ...Option) *Evaluator {
	e := &Evaluator{
		global:    NewEnvironment(nil),
		functions: make(map[string]object.Object),
	}
	for _, b := range DefaultBuiltins() {
		e.functions[b.Name()] = b
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// RegisterBuiltin adds a builtin function to the function table, replacing
// any function of the same name.
func (e *Evaluator) RegisterBuiltin(b *object.Builtin) {
	e.functions[b.Name()] = b
}

// GlobalEnvironment returns the evaluator's global environment.
func (e *Evaluator) GlobalEnvironment() *Environment {
	return e.global
}

// Evaluate runs every top-level expression of the program in order against
// the shared global environment. It returns the results of all non-definition
// expressions; function definitions are registered but contribute no result
// entry. The first error aborts evaluation with no partial results.
func (e *Evaluator) Evaluate(ctx context.Context, program *ast.Program) ([]object.Object, error) {
	var results []object.Object
	for _, stmt := range program.Stmts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := e.eval(ctx, stmt, e.global)
		if err != nil {
			return nil, err
		}
		if _, isDefinition := stmt.(*ast.Func); isDefinition {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

func (e *Evaluator) eval(ctx context.Context, node ast.Node, env *Environment) (object.Object, error) {
	switch node := node.(type) {
	case *ast.Int:
		return object.NewInt(node.Value), nil
	case *ast.Float:
		return object.NewFloat(node.Value), nil
	case *ast.String:
		return object.NewString(node.Value), nil
	case *ast.Bool:
		return object.NewBool(node.Value), nil
	case *ast.List:
		return e.evalList(ctx, node, env)
	case *ast.Var:
		value, ok := env.Get(node.Name)
		if !ok {
			return nil, NewUnboundVariableError(node.Name)
		}
		return value, nil
	case *ast.Assign:
		value, err := e.eval(ctx, node.Value, env)
		if err != nil {
			return nil, err
		}
		env.Set(node.Name, value)
		return value, nil
	case *ast.Func:
		if err := e.registerFunction(node); err != nil {
			return nil, err
		}
		return object.Nil, nil
	case *ast.Call:
		return e.evalCall(ctx, node, env)
	}
	return nil, fmt.Errorf("evaluator: unsupported node type %T", node)
}

func (e *Evaluator) evalList(ctx context.Context, node *ast.List, env *Environment) (object.Object, error) {
	items := make([]object.Object, 0, len(node.Items))
	for _, item := range node.Items {
		value, err := e.eval(ctx, item, env)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	return object.NewList(items), nil
}

// registerFunction validates a definition and adds it to the function table,
// replacing any function of the same name. Validation failures for duplicate
// parameters and an empty body are reported together.
func (e *Evaluator) registerFunction(node *ast.Func) error {
	var result *multierror.Error
	seen := make(map[string]bool, len(node.Params))
	for _, param := range node.Params {
		if seen[param] {
			result = multierror.Append(result, fmt.Errorf(
				"invalid definition: duplicate parameter %q in %s()", param, node.Name))
		}
		seen[param] = true
	}
	if len(node.Body) == 0 {
		result = multierror.Append(result, fmt.Errorf(
			"invalid definition: %s() has an empty body", node.Name))
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	e.functions[node.Name] = object.NewFunction(node.Name, node.Params, node.Body)
	return nil
}

func (e *Evaluator) evalCall(ctx context.Context, node *ast.Call, env *Environment) (object.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fn, ok := e.functions[node.Name]
	if !ok {
		return nil, NewUndefinedFunctionError(node.Name)
	}

	// Arguments are evaluated in the caller's environment, left to right.
	args := make([]object.Object, 0, len(node.Args))
	for _, arg := range node.Args {
		value, err := e.eval(ctx, arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	switch fn := fn.(type) {
	case *object.Builtin:
		return fn.Call(ctx, args...)
	case *object.Function:
		return e.callFunction(ctx, fn, args)
	}
	return nil, NewUndefinedFunctionError(node.Name)
}

func (e *Evaluator) callFunction(ctx context.Context, fn *object.Function, args []object.Object) (object.Object, error) {
	if len(args) != fn.Arity() {
		return nil, NewArityError(fn.Name(), fn.Arity(), len(args))
	}
	if len(fn.Body()) == 0 {
		return nil, NewEmptyBodyError(fn.Name())
	}

	local := NewEnvironment(e.global)
	for i, param := range fn.Params() {
		local.Set(param, args[i])
	}

	var result object.Object
	for _, expr := range fn.Body() {
		value, err := e.eval(ctx, expr, local)
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}
