package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralStrings(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Int{Value: 42}, "42"},
		{&Float{Value: 3.25}, "3.25"},
		{&Float{Value: 2}, "2.0"},
		{&String{Value: "hello"}, `"hello"`},
		{&Bool{Value: true}, "true"},
		{&Bool{Value: false}, "false"},
		{&List{}, "[]"},
		{&List{Items: []Node{&Int{Value: 1}, &String{Value: "x"}}}, `[1, "x"]`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.node.String())
	}
}

func TestExpressionStrings(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Var{Name: "x"}, "x"},
		{&Assign{Name: "x", Value: &Int{Value: 5}}, "x = 5"},
		{&Call{Name: "f"}, "f()"},
		{
			&Call{Name: "add", Args: []Node{&Var{Name: "x"}, &Int{Value: 2}}},
			"add(x, 2)",
		},
		{
			&Func{Name: "f", Params: []string{"a", "b"}, Body: []Node{
				&Assign{Name: "x", Value: &Call{Name: "add", Args: []Node{&Var{Name: "a"}, &Var{Name: "b"}}}},
				&Var{Name: "x"},
			}},
			"f(a, b) = x = add(a, b); x",
		},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.node.String())
	}
}

func TestProgramString(t *testing.T) {
	program := &Program{Stmts: []Node{
		&Assign{Name: "x", Value: &Int{Value: 5}},
		&Call{Name: "mul", Args: []Node{&Var{Name: "x"}, &Int{Value: 2}}},
	}}
	require.Equal(t, "x = 5\nmul(x, 2)", program.String())
}

func TestNestedCallString(t *testing.T) {
	// y = add(mul(x, 2), add(1, sub(3, 4)))
	node := &Assign{Name: "y", Value: &Call{Name: "add", Args: []Node{
		&Call{Name: "mul", Args: []Node{&Var{Name: "x"}, &Int{Value: 2}}},
		&Call{Name: "add", Args: []Node{
			&Int{Value: 1},
			&Call{Name: "sub", Args: []Node{&Int{Value: 3}, &Int{Value: 4}}},
		}},
	}}}
	require.Equal(t, "y = add(mul(x, 2), add(1, sub(3, 4)))", node.String())
}
