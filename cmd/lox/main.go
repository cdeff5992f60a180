/*
Command lox is the CLI entry point for the Lox interpreter: it reads a
mode and a filename from os.Args, reads the file, and hands the source
to internal/driver, mirroring the teacher's main/main.go manual
os.Args dispatch (no flag-parsing library — the grammar here is a
fixed two-positional-argument form, not a flag set).
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/niinpatel/lox-interpreter/internal/driver"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run implements the CLI contract of spec.md §6 against injectable
// argv/stdout/stderr, so cmd/lox stays testable without forking a
// process.
func run(argv []string, stdout, stderr io.Writer) int {
	if len(argv) < 3 {
		fmt.Fprintln(stderr, "Usage: ./lox <tokenize|parse|evaluate|run> <filename>")
		return driver.ExitUsage
	}

	mode := argv[1]
	filename := argv[2]

	contents, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file '%s': %v\n", filename, err)
		return driver.ExitUsage
	}

	return driver.Run(mode, string(contents), stdout, stderr)
}
