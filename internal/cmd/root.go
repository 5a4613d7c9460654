// Package cmd implements the lcsub command line.
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Execute runs the command line with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	return run(args, stdout, stderr, newOptions())
}

func run(args []string, stdout, stderr io.Writer, opts *options) int {
	root := rootCmd(opts)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}

		fmt.Fprintln(stderr, "Error:", err)

		return 1
	}

	return 0
}

func rootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "lcsub",
		Short: "Extract practice-problem solutions and render problem descriptions",
		Long: `lcsub isolates the submittable part of a local solution file and renders
HTML problem descriptions as readable markdown-flavoured text.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		DisableAutoGenTag: true,
	}

	root.AddCommand(extractCmd(opts), renderCmd(opts), checkCmd(opts))

	return root
}

// exitError carries the exit status of a checked command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("command exited with %d", e.code)
}

func checkargs(cmd *cobra.Command, args []string) error {
	if n := cmd.ArgsLenAtDash(); n >= 0 {
		args = args[:n]
	}

	if len(args) > 1 {
		return fmt.Errorf("%w: %d", errTooManyArgs, len(args))
	}

	return nil
}

var errTooManyArgs = errors.New("too many file arguments")
