// Package parser turns Mithra source text into an abstract syntax tree.
//
// The grammar is built directly from parser combinators over characters;
// there is no separate lexer pass. Grammar rules are named functions rather
// than inlined closures so that the mutual recursion between expressions and
// the rules that contain sub-expressions (calls containing expressions
// containing calls) is directly expressible.
package parser

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/mithra-lang/mithra/ast"
	"github.com/mithra-lang/mithra/combinator"
	"github.com/mithra-lang/mithra/cursor"
)

// Option is a configuration function for the parser.
type Option func(*config)

type config struct {
	filename string
}

// WithFilename sets the filename reported in syntax error positions.
func WithFilename(filename string) Option {
	return func(c *config) {
		c.filename = filename
	}
}

// Parse the provided input as Mithra source code and return the AST.
//
// Top-level expressions are separated by newlines or commas. Parsing fails
// if no grammar rule matches, or if unconsumed input remains after the last
// top-level expression. The returned error is a *SyntaxError pointing at the
// furthest position any rule reached before backtracking.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}
	c := cursor.NewWithFilename(input, cfg.filename)

	skipLayout(c)
	if c.Exhausted() {
		return &ast.Program{}, nil
	}

	stmt, ok := parseStatement(c)
	if !ok {
		return nil, newSyntaxError(c)
	}
	stmts := []ast.Node{stmt}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := statementSep(c); !ok {
			break
		}
		if c.Exhausted() {
			break
		}
		stmt, ok := parseStatement(c)
		if !ok {
			return nil, newSyntaxError(c)
		}
		stmts = append(stmts, stmt)
	}

	skipLayout(c)
	if !c.Exhausted() {
		return nil, newSyntaxError(c)
	}
	return &ast.Program{Stmts: stmts}, nil
}

// Keywords may not be used as variable, parameter or function names.
var keywords = map[string]bool{
	"true":  true,
	"false": true,
}

var (
	digits = combinator.TakeWhile1(unicode.IsDigit)

	// identifier is a letter followed by zero or more letters and digits.
	// The scan consumes one rune past the identifier to find its end, so
	// it is step-back corrected.
	identifier = combinator.Run(combinator.StepBack(scanIdentifier))

	comma     = symbol(",")
	semicolon = symbol(";")
	equals    = symbol("=")

	// floatParts recognizes digits '.' digits.
	floatParts = combinator.Seq2(digits, combinator.Seq2(combinator.Rune('.'), digits))

	// stringBody recognizes a double-quoted string. Escape sequences are
	// not supported; any rune other than the closing quote is taken
	// verbatim. An unterminated string is a no-match.
	stringBody = combinator.Between(
		combinator.Rune('"'),
		combinator.Many(combinator.Match(func(r rune) bool { return r != '"' })),
		combinator.Rune('"'),
	)

	// paramName is an identifier usable as a parameter or variable name.
	paramName = combinator.Run(func(c *cursor.Cursor) (string, bool) {
		name, ok := identifier(c)
		if !ok || keywords[name] {
			return "", false
		}
		return name, true
	})

	// statementSep separates top-level expressions: a newline or a comma,
	// with any surrounding blank space.
	statementSep = combinator.Run(func(c *cursor.Cursor) (string, bool) {
		skipSpaces(c)
		r := c.Next()
		if r != '\n' && r != ',' {
			return "", false
		}
		skipLayout(c)
		return string(r), true
	})
)

func scanIdentifier(c *cursor.Cursor) (string, bool) {
	var sb strings.Builder
	r := c.Next()
	if r == cursor.EOF || !unicode.IsLetter(r) {
		return "", false
	}
	sb.WriteRune(r)
	for {
		r = c.Next()
		if r == cursor.EOF || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String(), true
}

// symbol matches a literal with any spaces around it.
func symbol(s string) combinator.Parser[string] {
	lit := combinator.Literal(s)
	return combinator.Run(func(c *cursor.Cursor) (string, bool) {
		skipSpaces(c)
		if _, ok := lit(c); !ok {
			return "", false
		}
		skipSpaces(c)
		return s, true
	})
}

// skipSpaces consumes spaces and tabs, but not newlines: newlines separate
// top-level expressions.
func skipSpaces(c *cursor.Cursor) {
	for {
		r := c.Next()
		if r != ' ' && r != '\t' && r != '\r' {
			c.Retreat()
			return
		}
	}
}

// skipLayout consumes spaces, tabs and newlines.
func skipLayout(c *cursor.Cursor) {
	for {
		r := c.Next()
		if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
			c.Retreat()
			return
		}
	}
}

// parseStatement recognizes one top-level expression. More specific rules
// come first: a function definition and an assignment both start with an
// identifier, and a bare expression would otherwise swallow the name.
func parseStatement(c *cursor.Cursor) (ast.Node, bool) {
	return combinator.Choice(parseFunction, parseAssignment, parseExpr)(c)
}

// parseBodyStatement recognizes one expression inside a function body.
// Function definitions do not nest.
func parseBodyStatement(c *cursor.Cursor) (ast.Node, bool) {
	return combinator.Choice(parseAssignment, parseExpr)(c)
}

// parseExpr recognizes any expression usable in value position. Float is
// tried before int so that "1.5" is not read as the int 1 with ".5" left
// over; call is tried before variable so that "f(1)" is not read as the
// variable f.
func parseExpr(c *cursor.Cursor) (ast.Node, bool) {
	return combinator.Choice(
		parseFloat,
		parseInt,
		parseString,
		parseBool,
		parseList,
		parseCall,
		parseVariable,
	)(c)
}

func parseInt(c *cursor.Cursor) (ast.Node, bool) {
	lit, ok := digits(c)
	if !ok {
		return nil, false
	}
	value, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, false
	}
	return &ast.Int{Value: value}, true
}

func parseFloat(c *cursor.Cursor) (ast.Node, bool) {
	parts, ok := floatParts(c)
	if !ok {
		return nil, false
	}
	value, err := strconv.ParseFloat(parts.First+"."+parts.Second.Second, 64)
	if err != nil {
		return nil, false
	}
	return &ast.Float{Value: value}, true
}

func parseString(c *cursor.Cursor) (ast.Node, bool) {
	runes, ok := stringBody(c)
	if !ok {
		return nil, false
	}
	return &ast.String{Value: string(runes)}, true
}

func parseBool(c *cursor.Cursor) (ast.Node, bool) {
	p := combinator.Run(func(c *cursor.Cursor) (ast.Node, bool) {
		name, ok := identifier(c)
		if !ok {
			return nil, false
		}
		switch name {
		case "true":
			return &ast.Bool{Value: true}, true
		case "false":
			return &ast.Bool{Value: false}, true
		}
		return nil, false
	})
	return p(c)
}

func parseVariable(c *cursor.Cursor) (ast.Node, bool) {
	name, ok := paramName(c)
	if !ok {
		return nil, false
	}
	return &ast.Var{Name: name}, true
}

// parseList recognizes a bracketed, comma-separated list of expressions.
// SepBy requires at least one item, so the empty list is a special case:
// a closing bracket immediately after the opening bracket.
func parseList(c *cursor.Cursor) (ast.Node, bool) {
	p := combinator.Run(func(c *cursor.Cursor) (ast.Node, bool) {
		if _, ok := combinator.Rune('[')(c); !ok {
			return nil, false
		}
		skipSpaces(c)
		if _, ok := combinator.Rune(']')(c); ok {
			return &ast.List{}, true
		}
		items, ok := combinator.SepBy[ast.Node, string](parseExpr, comma)(c)
		if !ok {
			return nil, false
		}
		skipSpaces(c)
		if _, ok := combinator.Rune(']')(c); !ok {
			return nil, false
		}
		return &ast.List{Items: items}, true
	})
	return p(c)
}

// parseCall recognizes name(arg, ...). The opening paren must immediately
// follow the name. A zero-argument call is the same special case as the
// empty list.
func parseCall(c *cursor.Cursor) (ast.Node, bool) {
	p := combinator.Run(func(c *cursor.Cursor) (ast.Node, bool) {
		name, ok := paramName(c)
		if !ok {
			return nil, false
		}
		if _, ok := combinator.Rune('(')(c); !ok {
			return nil, false
		}
		skipSpaces(c)
		if _, ok := combinator.Rune(')')(c); ok {
			return &ast.Call{Name: name}, true
		}
		args, ok := combinator.SepBy[ast.Node, string](parseExpr, comma)(c)
		if !ok {
			return nil, false
		}
		skipSpaces(c)
		if _, ok := combinator.Rune(')')(c); !ok {
			return nil, false
		}
		return &ast.Call{Name: name, Args: args}, true
	})
	return p(c)
}

// parseAssignment recognizes name = expr.
func parseAssignment(c *cursor.Cursor) (ast.Node, bool) {
	p := combinator.Run(func(c *cursor.Cursor) (ast.Node, bool) {
		name, ok := paramName(c)
		if !ok {
			return nil, false
		}
		if _, ok := equals(c); !ok {
			return nil, false
		}
		value, ok := parseExpr(c)
		if !ok {
			return nil, false
		}
		return &ast.Assign{Name: name, Value: value}, true
	})
	return p(c)
}

// parseFunction recognizes name(param, ...) = expr; expr; ...
//
// Body expressions are separated by semicolons, not commas, so that a comma
// after the body starts the next top-level expression.
func parseFunction(c *cursor.Cursor) (ast.Node, bool) {
	p := combinator.Run(func(c *cursor.Cursor) (ast.Node, bool) {
		name, ok := paramName(c)
		if !ok {
			return nil, false
		}
		if _, ok := combinator.Rune('(')(c); !ok {
			return nil, false
		}
		skipSpaces(c)
		var params []string
		if _, ok := combinator.Rune(')')(c); !ok {
			params, ok = combinator.SepBy[string, string](paramName, comma)(c)
			if !ok {
				return nil, false
			}
			skipSpaces(c)
			if _, ok := combinator.Rune(')')(c); !ok {
				return nil, false
			}
		}
		if _, ok := equals(c); !ok {
			return nil, false
		}
		body, ok := combinator.SepBy[ast.Node, string](parseBodyStatement, semicolon)(c)
		if !ok {
			return nil, false
		}
		return &ast.Func{Name: name, Params: params, Body: body}, true
	})
	return p(c)
}
