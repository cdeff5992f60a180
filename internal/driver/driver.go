/*
Package driver wires the scanner, parser, and evaluator together per
CLI mode and formats their output, generalizing the teacher's
runFile/executeFileWithRecovery pair (main/main.go) into explicit
result/error returns instead of panic/recover, per spec.md §9.

The CLI argument parsing and file reading themselves stay in cmd/lox —
spec.md §1 calls both "out of scope: trivially reimplemented". This
package is the boundary: it takes a source string and a mode name and
produces exactly the (stdout text, stderr text, exit code) triple
spec.md §1 describes.
*/
package driver

import (
	"fmt"
	"io"

	"github.com/niinpatel/lox-interpreter/internal/ast"
	"github.com/niinpatel/lox-interpreter/internal/interpreter"
	"github.com/niinpatel/lox-interpreter/internal/lexer"
	"github.com/niinpatel/lox-interpreter/internal/parser"
)

// Exit codes, per spec.md §6.
const (
	ExitSuccess  = 0
	ExitUsage    = 1
	ExitSyntax   = 65
	ExitRuntime  = 70
)

// Mode names accepted on the command line.
const (
	ModeTokenize = "tokenize"
	ModeParse    = "parse"
	ModeEvaluate = "evaluate"
	ModeRun      = "run"
)

// Run dispatches source through the stage(s) mode requires, writing the
// stage-specific textual artifact of spec.md §6 to stdout and any
// diagnostics to stderr, and returns the process exit code.
func Run(mode string, source string, stdout, stderr io.Writer) int {
	switch mode {
	case ModeTokenize:
		return runTokenize(source, stdout, stderr)
	case ModeParse:
		return runParse(source, stdout, stderr)
	case ModeEvaluate:
		return runEvaluate(source, stdout, stderr)
	case ModeRun:
		return runProgram(source, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", mode)
		return ExitUsage
	}
}

func runTokenize(source string, stdout, stderr io.Writer) int {
	tokens, errs := lexer.ScanTokens(source)
	for _, tok := range tokens {
		fmt.Fprintln(stdout, tok.String())
	}
	for _, e := range errs {
		fmt.Fprintf(stderr, "[line %d] Error: %s\n", e.Line, e.Msg)
	}
	if len(errs) > 0 {
		return ExitSyntax
	}
	return ExitSuccess
}

func runParse(source string, stdout, stderr io.Writer) int {
	expr, code := parseExpression(source, stderr)
	if code != ExitSuccess {
		return code
	}
	fmt.Fprintln(stdout, ast.Print(expr))
	return ExitSuccess
}

func runEvaluate(source string, stdout, stderr io.Writer) int {
	expr, code := parseExpression(source, stderr)
	if code != ExitSuccess {
		return code
	}
	in := interpreter.New(stdout)
	result, err := in.EvalExpression(expr)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitRuntime
	}
	fmt.Fprintln(stdout, result.String())
	return ExitSuccess
}

func runProgram(source string, stdout, stderr io.Writer) int {
	tokens, errs := lexer.ScanTokens(source)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(stderr, "[line %d] Error: %s\n", e.Line, e.Msg)
		}
		return ExitSyntax
	}

	stmts, err := parser.ParseStatements(tokens)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitSyntax
	}

	in := interpreter.New(stdout)
	if err := in.Run(stmts); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitRuntime
	}
	return ExitSuccess
}

// parseExpression scans then parses a single expression, the shared
// prefix of `parse` and `evaluate` mode.
func parseExpression(source string, stderr io.Writer) (ast.Expr, int) {
	tokens, errs := lexer.ScanTokens(source)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(stderr, "[line %d] Error: %s\n", e.Line, e.Msg)
		}
		return nil, ExitSyntax
	}

	expr, err := parser.ParseExpression(tokens)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return nil, ExitSyntax
	}
	return expr, ExitSuccess
}
