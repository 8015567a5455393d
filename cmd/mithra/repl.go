package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/mithra-lang/mithra/evaluator"
	"github.com/mithra-lang/mithra/parser"
)

// runRepl reads one line at a time and evaluates it against a single
// evaluator, so variable bindings and function definitions persist across
// lines. Entered lines are appended to ~/.mithra_history.
func runRepl(ctx context.Context, out io.Writer, useColor bool) error {
	prompt := color.New(color.FgCyan)
	if !useColor {
		prompt.DisableColor()
	}
	fmt.Fprintf(out, "mithra %s - use exit to quit\n", version)

	history := openHistory()
	if history != nil {
		defer history.Close()
	}

	eval := evaluator.New()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt.Fprint(out, ">> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		if history != nil {
			fmt.Fprintln(history, line)
		}

		program, err := parser.Parse(ctx, line)
		if err != nil {
			printError(out, err, useColor)
			continue
		}
		results, err := eval.Evaluate(ctx, program)
		if err != nil {
			printError(out, err, useColor)
			continue
		}
		for _, result := range results {
			fmt.Fprintln(out, result.Inspect())
		}
	}
}

func openHistory() *os.File {
	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(home, ".mithra_history"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil
	}
	return f
}
