package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Print renders a single expression as the Lisp-like S-expression form
// of spec.md §4.2. It is the AST analogue of the teacher's
// PrintingVisitor in main.go, generalized from a tree-dump to the
// exact textual grammar `parse` mode must emit.
func Print(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return printLiteral(n.Value)
	case *Group:
		return parenthesize("group", Print(n.Inner))
	case *Unary:
		return parenthesize(n.Op.Lexeme, Print(n.Operand))
	case *Binary:
		return parenthesize(n.Op.Lexeme, Print(n.Left), Print(n.Right))
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return parenthesize("=", n.Name.Lexeme, Print(n.RHS))
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func parenthesize(head string, parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(head)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	b.WriteByte(')')
	return b.String()
}

// printLiteral renders a Literal node's value per spec.md §4.2. Numbers
// always print with a ".0" suffix when integral — the deliberate
// asymmetry with the evaluator's print representation (internal/value),
// documented in DESIGN.md.
func printLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatFloat(val, 'f', 1, 64)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
