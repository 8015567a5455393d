package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Int is an expression node that holds an integer literal.
type Int struct {
	Value int64
}

func (x *Int) exprNode() {}

func (x *Int) String() string { return strconv.FormatInt(x.Value, 10) }

// Float is an expression node that holds a floating point literal.
type Float struct {
	Value float64
}

func (x *Float) exprNode() {}

func (x *Float) String() string {
	s := strconv.FormatFloat(x.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// String is an expression node that holds a string literal.
type String struct {
	Value string
}

func (x *String) exprNode() {}

func (x *String) String() string { return fmt.Sprintf("%q", x.Value) }

// Bool is an expression node that holds a boolean literal.
type Bool struct {
	Value bool
}

func (x *Bool) exprNode() {}

func (x *Bool) String() string { return strconv.FormatBool(x.Value) }

// List is an expression node that builds a list from its element
// expressions. Elements need not share a type.
type List struct {
	Items []Node
}

func (x *List) exprNode() {}

func (x *List) String() string {
	elements := make([]string, 0, len(x.Items))
	for _, el := range x.Items {
		elements = append(elements, el.String())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}
