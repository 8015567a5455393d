// Package mithra implements the Mithra interpreted language: a backtracking
// parser-combinator front end that turns source text into an abstract syntax
// tree, and a tree-walking evaluator that runs the tree against an
// environment of lexical scopes.
//
// Evaluate a program and receive the results of its top-level expressions:
//
//	results, err := mithra.Eval(ctx, `x = 5
//	y = add(mul(x, 2), 3)`)
//
// Parsing and evaluation are two strictly sequential phases; use Parse
// directly to inspect the AST without running it.
package mithra

import (
	"context"

	"github.com/mithra-lang/mithra/ast"
	"github.com/mithra-lang/mithra/evaluator"
	"github.com/mithra-lang/mithra/object"
	"github.com/mithra-lang/mithra/parser"
)

// Option configures a Mithra parse or evaluation.
type Option func(*options)

type options struct {
	filename        string
	withoutBuiltins bool
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithFilename sets the filename for the source code being evaluated.
// It is used in syntax error positions.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithoutDefaultBuiltins evaluates the program with an empty function table:
// no add, sub, mul, div or len.
func WithoutDefaultBuiltins() Option {
	return func(o *options) {
		o.withoutBuiltins = true
	}
}

// Parse turns Mithra source text into an AST without evaluating it.
func Parse(ctx context.Context, source string, opts ...Option) (*ast.Program, error) {
	o := collectOptions(opts...)
	var parserOpts []parser.Option
	if o.filename != "" {
		parserOpts = append(parserOpts, parser.WithFilename(o.filename))
	}
	return parser.Parse(ctx, source, parserOpts...)
}

// Run evaluates a parsed program and returns the results of its top-level
// non-definition expressions as native Go values, in source order.
func Run(ctx context.Context, program *ast.Program, opts ...Option) ([]any, error) {
	o := collectOptions(opts...)
	var evalOpts []evaluator.Option
	if o.withoutBuiltins {
		evalOpts = append(evalOpts, evaluator.WithoutDefaultBuiltins())
	}
	results, err := evaluator.New(evalOpts...).Evaluate(ctx, program)
	if err != nil {
		return nil, err
	}
	return nativeValues(results), nil
}

// Eval is a convenience function that parses and runs source code. It is
// equivalent to Parse() followed by Run().
func Eval(ctx context.Context, source string, opts ...Option) ([]any, error) {
	program, err := Parse(ctx, source, opts...)
	if err != nil {
		return nil, err
	}
	return Run(ctx, program, opts...)
}

func nativeValues(results []object.Object) []any {
	values := make([]any, 0, len(results))
	for _, result := range results {
		values = append(values, result.Interface())
	}
	return values
}
