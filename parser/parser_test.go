package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithra-lang/mithra/ast"
)

func parseOne(t *testing.T, input string) ast.Node {
	t.Helper()
	program, err := Parse(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, program.Stmts, 1)
	return program.Stmts[0]
}

func TestParseInt(t *testing.T) {
	require.Equal(t, &ast.Int{Value: 1234}, parseOne(t, "1234"))
	require.Equal(t, &ast.Int{Value: 0}, parseOne(t, "0"))
}

func TestParseFloat(t *testing.T) {
	require.Equal(t, &ast.Float{Value: 3.25}, parseOne(t, "3.25"))
	require.Equal(t, &ast.Float{Value: 0.5}, parseOne(t, "0.5"))
}

func TestParseString(t *testing.T) {
	require.Equal(t, &ast.String{Value: "hello world"}, parseOne(t, `"hello world"`))
	require.Equal(t, &ast.String{Value: ""}, parseOne(t, `""`))
}

func TestParseBool(t *testing.T) {
	require.Equal(t, &ast.Bool{Value: true}, parseOne(t, "true"))
	require.Equal(t, &ast.Bool{Value: false}, parseOne(t, "false"))
}

func TestParseVariable(t *testing.T) {
	require.Equal(t, &ast.Var{Name: "x"}, parseOne(t, "x"))
	require.Equal(t, &ast.Var{Name: "counter2"}, parseOne(t, "counter2"))
}

func TestParseList(t *testing.T) {
	require.Equal(t, &ast.List{}, parseOne(t, "[]"))
	require.Equal(t,
		&ast.List{Items: []ast.Node{
			&ast.Int{Value: 1},
			&ast.Int{Value: 2},
			&ast.Int{Value: 3},
		}},
		parseOne(t, "[1, 2, 3]"))
}

func TestParseNestedList(t *testing.T) {
	require.Equal(t,
		&ast.List{Items: []ast.Node{
			&ast.Int{Value: 1},
			&ast.List{Items: []ast.Node{&ast.Int{Value: 2}, &ast.Int{Value: 3}}},
			&ast.String{Value: "x"},
		}},
		parseOne(t, `[1, [2, 3], "x"]`))
}

func TestParseAssignment(t *testing.T) {
	require.Equal(t,
		&ast.Assign{Name: "x", Value: &ast.Int{Value: 5}},
		parseOne(t, "x = 5"))
}

func TestParseCall(t *testing.T) {
	require.Equal(t, &ast.Call{Name: "f"}, parseOne(t, "f()"))
	require.Equal(t,
		&ast.Call{Name: "add", Args: []ast.Node{&ast.Var{Name: "x"}, &ast.Int{Value: 2}}},
		parseOne(t, "add(x, 2)"))
}

func TestParseNestedCall(t *testing.T) {
	// Expression parsing is recursive: calls contain expressions which
	// contain calls, to arbitrary depth.
	want := &ast.Assign{Name: "y", Value: &ast.Call{Name: "add", Args: []ast.Node{
		&ast.Call{Name: "mul", Args: []ast.Node{&ast.Var{Name: "x"}, &ast.Int{Value: 2}}},
		&ast.Call{Name: "add", Args: []ast.Node{
			&ast.Int{Value: 1},
			&ast.Call{Name: "sub", Args: []ast.Node{&ast.Int{Value: 3}, &ast.Int{Value: 4}}},
		}},
	}}}
	require.Equal(t, want, parseOne(t, "y = add(mul(x, 2), add(1, sub(3, 4)))"))
}

func TestParseFunction(t *testing.T) {
	require.Equal(t,
		&ast.Func{Name: "f", Params: []string{"a"}, Body: []ast.Node{&ast.Var{Name: "a"}}},
		parseOne(t, "f(a) = a"))
}

func TestParseFunctionZeroParams(t *testing.T) {
	require.Equal(t,
		&ast.Func{Name: "f", Body: []ast.Node{&ast.Int{Value: 1}}},
		parseOne(t, "f() = 1"))
}

func TestParseFunctionMultiExprBody(t *testing.T) {
	want := &ast.Func{Name: "f", Params: []string{"a", "b"}, Body: []ast.Node{
		&ast.Assign{Name: "x", Value: &ast.Call{Name: "add", Args: []ast.Node{
			&ast.Var{Name: "a"}, &ast.Var{Name: "b"},
		}}},
		&ast.Call{Name: "mul", Args: []ast.Node{&ast.Var{Name: "x"}, &ast.Int{Value: 2}}},
	}}
	require.Equal(t, want, parseOne(t, "f(a, b) = x = add(a, b); mul(x, 2)"))
}

func TestParseProgramNewlineSeparated(t *testing.T) {
	program, err := Parse(context.Background(), "x = 5\ny = mul(x, 2)\n\nz = div(y, 5)\n")
	require.NoError(t, err)
	require.Len(t, program.Stmts, 3)
}

func TestParseProgramCommaSeparated(t *testing.T) {
	program, err := Parse(context.Background(), "x = 5, f(a) = a, f(10)")
	require.NoError(t, err)
	require.Len(t, program.Stmts, 3)
	require.IsType(t, &ast.Assign{}, program.Stmts[0])
	require.IsType(t, &ast.Func{}, program.Stmts[1])
	require.IsType(t, &ast.Call{}, program.Stmts[2])
}

func TestParseEmptyProgram(t *testing.T) {
	for _, input := range []string{"", "\n", "  \n\t\n"} {
		program, err := Parse(context.Background(), input)
		require.NoError(t, err)
		require.Empty(t, program.Stmts)
	}
}

func TestParseKeywordIsNotAVariable(t *testing.T) {
	node := parseOne(t, "true")
	require.IsType(t, &ast.Bool{}, node)
}

func TestParseErrorUnexpectedCharacter(t *testing.T) {
	_, err := Parse(context.Background(), "x = $")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, `unexpected character '$'`, syntaxErr.Message())
	require.Equal(t, 1, syntaxErr.Position().LineNumber())
	require.Equal(t, 5, syntaxErr.Position().ColumnNumber())
	require.Equal(t, "x = $", syntaxErr.SourceLine())
}

func TestParseErrorReportsFurthestPosition(t *testing.T) {
	// The assignment rule reaches the '?' on line 2 before backtracking;
	// the error points there, not at the start of the failed statement.
	_, err := Parse(context.Background(), "x = 1\ny = ?")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, 2, syntaxErr.Position().LineNumber())
	require.Equal(t, 5, syntaxErr.Position().ColumnNumber())
}

func TestParseErrorLeftoverInput(t *testing.T) {
	_, err := Parse(context.Background(), "f(1) )")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestParseErrorUnterminatedString(t *testing.T) {
	_, err := Parse(context.Background(), `x = "oops`)
	require.Error(t, err)
}

func TestParseWithFilename(t *testing.T) {
	_, err := Parse(context.Background(), "x = $", WithFilename("prog.mith"))
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, "prog.mith", syntaxErr.Position().File)
	require.Contains(t, syntaxErr.Error(), "prog.mith:1:5")
}

func TestParseContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, "x = 1\ny = 2")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFriendlyErrorMessage(t *testing.T) {
	_, err := Parse(context.Background(), "x = $")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	msg := syntaxErr.FriendlyErrorMessage()
	require.Contains(t, msg, "x = $")
	require.Contains(t, msg, "^")
}

func TestRoundTrip(t *testing.T) {
	// Printing an AST and reparsing it yields a structurally equal AST.
	sources := []string{
		"42",
		"3.25",
		`"hello"`,
		"true",
		"[]",
		`[1, [2.5, "x"], false]`,
		"x = 5",
		"f()",
		"add(x, 2)",
		"y = add(mul(x, 2), add(1, sub(3, 4)))",
		"f(a, b) = x = add(a, b); mul(x, 2)",
		"x = 5\nf(a) = a\nf(10)",
	}
	for _, source := range sources {
		program, err := Parse(context.Background(), source)
		require.NoError(t, err, source)

		reparsed, err := Parse(context.Background(), program.String())
		require.NoError(t, err, source)
		require.Equal(t, program, reparsed, source)
	}
}
