// Command igboc runs the Igbo toy language interpreter against a single
// source file. It reads the file, tokenizes, parses, and evaluates it,
// printing PRINT_STMT output to standard output and every diagnostic to
// standard error, matching the exact CLI contract of spec.md §6.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Neche-Stephen/igbo-programming-language/diagnostics"
	"github.com/Neche-Stephen/igbo-programming-language/eval"
	"github.com/Neche-Stephen/igbo-programming-language/lexer"
	"github.com/Neche-Stephen/igbo-programming-language/parser"
)

// version is the interpreter's own release string, reported by
// --version. It has no bearing on the language being interpreted.
const version = "v1.0.0"

var redColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds and executes the root command, returning the process exit
// code rather than calling os.Exit directly so it stays testable.
func run(args []string) int {
	exitCode := 0

	root := &cobra.Command{
		Use:           "igboc program.igbo",
		Short:         "Run an Igbo-keyword program",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, a []string) error {
			exitCode = runFile(a[0])
			return nil
		},
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		// cobra's own Args validation failed (wrong arg count): the spec
		// mandates this exact usage line regardless of cobra's message.
		fmt.Fprintln(os.Stderr, "Usage: igboc program.igbo")
		return 1
	}
	return exitCode
}

// runFile reads and executes one source file, returning the process
// exit code: 0 on completion (even with reported diagnostics), 1 if the
// file cannot be opened or read.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: Could not read file: %s\n", path)
		return 1
	}

	reporter := diagnostics.New(os.Stderr)

	lx := lexer.New(string(source), reporter)
	tokens := lx.Tokenize()

	p := parser.New(tokens, reporter)
	root := p.Parse()

	ev := eval.New(os.Stdout, reporter)
	ev.Run(root)

	return 0
}
