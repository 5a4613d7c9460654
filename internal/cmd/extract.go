package cmd

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/ezerfernandes/lcsub/internal/extract"
	"github.com/spf13/cobra"
)

//go:embed help/extract.md
var extractHelp string

func extractCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "extract [flags] [filename]",
		Aliases: []string{"x"},
		Short:   "Print the solution block of a source file",
		Long:    extractHelp,
		Args:    checkargs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			opts.createStatus(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := solution(source(args), opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.String())

			return nil
		},

		DisableAutoGenTag: true,
	}

	extractFlags(cmd, opts)
	quietFlag(cmd, opts)

	return cmd
}

// preset resolves the language preset, overridden by explicit patterns.
func preset(opts *options) (extract.Preset, error) {
	p, err := extract.Lookup(opts.lang)
	if err != nil {
		return p, err
	}

	if len(opts.opener) != 0 {
		if p.Opener, err = extract.ParsePattern(opts.opener); err != nil {
			return p, fmt.Errorf("opener: %w", err)
		}
	}

	if len(opts.terminators) != 0 {
		if p.Terminators, err = extract.ParsePatterns(opts.terminators); err != nil {
			return p, fmt.Errorf("terminator: %w", err)
		}
	}

	return p, nil
}

func solution(filename string, opts *options) (extract.Result, error) {
	src, err := opts.read(filename)
	if err != nil {
		return extract.Result{}, err
	}

	p, err := preset(opts)
	if err != nil {
		return extract.Result{}, err
	}

	res, err := extract.Solution(string(src), p, opts.region)
	if err != nil {
		return res, err
	}

	switch {
	case !res.Found && opts.strict:
		return res, fmt.Errorf("%s: %w", filename, errNoSolution)
	case !res.Found:
		opts.status("warning: no solution block found in %s, using the first %d line(s)\n", filename, len(res.Lines))
	case !res.Closed:
		opts.status("warning: solution block in %s is not closed\n", filename)
	}

	return res, nil
}

var errNoSolution = errors.New("no solution block found")
