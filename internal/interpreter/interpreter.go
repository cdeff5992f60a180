/*
Package interpreter implements the Lox tree-walking evaluator: AST →
runtime values, dispatched by a type switch over internal/ast nodes,
generalizing the teacher's Evaluator.Eval (eval/eval_expressions.go)
down to Lox's six expression and four statement variants.

Where the teacher recovers from panics at the CLI boundary, this
package returns errors explicitly (spec.md §9's result/either
discipline) — the first non-nil *RuntimeError aborts evaluation and
the driver maps it to exit code 70.
*/
package interpreter

import (
	"fmt"
	"io"

	"github.com/niinpatel/lox-interpreter/internal/ast"
	"github.com/niinpatel/lox-interpreter/internal/environment"
	"github.com/niinpatel/lox-interpreter/internal/value"
)

// RuntimeError is the single error kind evaluation can produce: a type
// mismatch or an undefined variable (spec.md §4.4), carrying the
// source line of the operator or identifier that failed.
type RuntimeError struct {
	Line int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return e.Msg
}

// Interpreter holds the evaluation state: the current environment frame
// and the writer `print` statements write to (spec.md §5: no other
// shared mutable state exists).
type Interpreter struct {
	env    *environment.Environment
	Writer io.Writer
}

// New creates an Interpreter with a fresh global environment.
func New(w io.Writer) *Interpreter {
	return &Interpreter{env: environment.New(nil), Writer: w}
}

// EvalExpression evaluates a single expression in the global
// environment — the entry point used by `evaluate` mode.
func (in *Interpreter) EvalExpression(e ast.Expr) (value.Value, error) {
	return in.eval(e)
}

// Run executes a full statement list in source order — the entry point
// used by `run` mode.
func (in *Interpreter) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) eval(e ast.Expr) (value.Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil
	case *ast.Group:
		return in.eval(n.Inner)
	case *ast.Unary:
		return in.evalUnary(n)
	case *ast.Binary:
		return in.evalBinary(n)
	case *ast.Variable:
		return in.evalVariable(n)
	case *ast.Assign:
		return in.evalAssign(n)
	default:
		return nil, fmt.Errorf("unsupported expression node %T", e)
	}
}

func (in *Interpreter) exec(s ast.Stmt) error {
	switch n := s.(type) {
	case *ast.ExprStmt:
		_, err := in.eval(n.Expression)
		return err
	case *ast.PrintStmt:
		return in.execPrint(n)
	case *ast.VarDecl:
		return in.execVarDecl(n)
	case *ast.Block:
		return in.execBlock(n)
	default:
		return fmt.Errorf("unsupported statement node %T", s)
	}
}

func literalValue(v interface{}) value.Value {
	switch val := v.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Bool(val)
	case float64:
		return value.Number(val)
	case string:
		return value.String(val)
	default:
		return value.Nil{}
	}
}

func (in *Interpreter) execPrint(n *ast.PrintStmt) error {
	v, err := in.eval(n.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.Writer, v.String())
	return nil
}

func (in *Interpreter) execVarDecl(n *ast.VarDecl) error {
	var v value.Value = value.Nil{}
	if n.Initializer != nil {
		var err error
		v, err = in.eval(n.Initializer)
		if err != nil {
			return err
		}
	}
	in.env.Define(n.Name.Lexeme, v)
	return nil
}

// execBlock pushes a fresh frame, runs Statements in order, then
// restores the enclosing frame — spec.md §3's "exiting a Block restores
// the exact set of scope frames that existed on entry". Restoring
// happens even when an error is returned: the process terminates on
// runtime error regardless (spec.md §4.4), so the restore here exists
// for the invariant's sake, not because execution continues past it.
func (in *Interpreter) execBlock(n *ast.Block) error {
	previous := in.env
	in.env = environment.New(previous)
	defer func() { in.env = previous }()

	for _, stmt := range n.Statements {
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evalVariable(n *ast.Variable) (value.Value, error) {
	v, ok := in.env.Get(n.Name.Lexeme)
	if !ok {
		return nil, in.undefinedVariable(n.Name.Line, n.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalAssign(n *ast.Assign) (value.Value, error) {
	v, err := in.eval(n.RHS)
	if err != nil {
		return nil, err
	}
	if !in.env.Assign(n.Name.Lexeme, v) {
		return nil, in.undefinedVariable(n.Name.Line, n.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) undefinedVariable(line int, name string) error {
	return &RuntimeError{Line: line, Msg: fmt.Sprintf("Undefined variable '%s'.", name)}
}
