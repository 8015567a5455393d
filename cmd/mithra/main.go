// Command mithra runs Mithra programs from a file, a string, or stdin, and
// starts a REPL when invoked interactively.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithra-lang/mithra"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mithra [file]",
		Short:         "Run Mithra programs",
		Long:          "Mithra is a small interpreted language built on parser combinators.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runHandler,
	}
	cmd.Flags().StringP("code", "c", "", "Code to evaluate")
	cmd.Flags().Bool("stdin", false, "Read code from stdin")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("timing", false, "Show execution time")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	viper.SetEnvPrefix("mithra")
	viper.AutomaticEnv()
	for _, name := range []string{"output", "no-color", "timing", "verbose"} {
		_ = viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}

func runHandler(cmd *cobra.Command, args []string) error {
	logger := newLogger(viper.GetBool("verbose"))
	useColor := !viper.GetBool("no-color") && isatty.IsTerminal(os.Stderr.Fd())

	source, filename, err := getSource(cmd, args)
	if err != nil {
		return err
	}
	if source == "" && filename == "" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return runRepl(cmd.Context(), os.Stdout, useColor)
		}
		return errors.New("no input: pass a file, --code, or --stdin")
	}

	var opts []mithra.Option
	if filename != "" {
		opts = append(opts, mithra.WithFilename(filename))
	}

	start := time.Now()
	program, err := mithra.Parse(cmd.Context(), source, opts...)
	if err != nil {
		printError(os.Stderr, err, useColor)
		return err
	}
	logger.Debug().
		Dur("elapsed", time.Since(start)).
		Int("statements", len(program.Stmts)).
		Msg("parse complete")

	evalStart := time.Now()
	results, err := mithra.Run(cmd.Context(), program, opts...)
	if err != nil {
		printError(os.Stderr, err, useColor)
		return err
	}
	logger.Debug().
		Dur("elapsed", time.Since(evalStart)).
		Int("results", len(results)).
		Msg("evaluation complete")

	for _, result := range results {
		output, err := formatValue(result, viper.GetString("output"), useColor)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	if viper.GetBool("timing") {
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", time.Since(start))
	}
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func getSource(cmd *cobra.Command, args []string) (source, filename string, err error) {
	code, _ := cmd.Flags().GetString("code")
	useStdin, _ := cmd.Flags().GetBool("stdin")

	count := 0
	if code != "" {
		count++
	}
	if useStdin {
		count++
	}
	if len(args) > 0 {
		count++
	}
	if count > 1 {
		return "", "", errors.New("multiple input sources specified")
	}

	switch {
	case code != "":
		return code, "", nil
	case useStdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "stdin", nil
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}
	return "", "", nil
}

// printError prints a friendly multi-line message for errors that carry one,
// and a plain one-liner otherwise.
func printError(w io.Writer, err error, useColor bool) {
	header := color.New(color.FgRed, color.Bold)
	if !useColor {
		header.DisableColor()
	}
	if friendly, ok := err.(interface{ FriendlyErrorMessage() string }); ok {
		header.Fprintln(w, "error")
		fmt.Fprintln(w, friendly.FriendlyErrorMessage())
		return
	}
	header.Fprint(w, "error: ")
	fmt.Fprintln(w, err.Error())
}
