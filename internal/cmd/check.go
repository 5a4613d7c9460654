package cmd

import (
	"context"
	_ "embed"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

//go:embed help/check.md
var checkHelp string

func checkCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "check [flags] [filename] -- command",
		Aliases: []string{"c"},
		Short:   "Run a command on the extracted solution",
		Long:    checkHelp,
		Args:    checkargs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			opts.createStatus(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, args := script(cmd, args)
			if len(scr) == 0 {
				return errMissingCommand
			}

			if !cmd.Flag("dir").Changed {
				dir, err := os.MkdirTemp("", "lcsub-check-")
				if err != nil {
					return err
				}

				opts.dir = dir

				if !opts.keep {
					defer os.RemoveAll(dir)
				}
			}

			return checkRun(cmd.Context(), source(args), opts, scr, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},

		DisableAutoGenTag: true,
	}

	dirFlag(cmd, opts)
	extractFlags(cmd, opts)
	quietFlag(cmd, opts)

	cmd.Flags().BoolVarP(&opts.keep, "keep", "k", false, "don't remove the temporary directory")

	return cmd
}

// script splits args at "--" into the file arguments and the command text.
func script(cmd *cobra.Command, args []string) (string, []string) {
	n := cmd.ArgsLenAtDash()
	if n < 0 {
		return "", args
	}

	return strings.Join(args[n:], " "), args[:n]
}

func checkRun(ctx context.Context, filename string, opts *options, scr string, stdout, stderr io.Writer) error {
	res, err := solution(filename, opts)
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(opts.dir)
	if err != nil {
		return err
	}

	p, err := preset(opts)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "solution"+p.Ext)

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(res.String()+"\n"), fileMode); err != nil {
		return err
	}

	expanded := strings.ReplaceAll(scr, "{}", path)
	expanded = strings.ReplaceAll(expanded, "{dir}", dir)
	expanded = strings.ReplaceAll(expanded, "{lang}", opts.lang)

	opts.status("--- %s : %d line(s) : %s ---\n", filepath.Base(filename), len(res.Lines), path)

	code, err := runCommand(ctx, expanded, dir, stdout, stderr)
	if err != nil {
		return err
	}

	if code != 0 {
		return &exitError{code: code}
	}

	return nil
}

func runCommand(ctx context.Context, command, dir string, stdout, stderr io.Writer) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.Dir(dir), interp.StdIO(nil, stdout, stderr))
	if err != nil {
		return -1, err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	err = runner.Run(ctx, file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}

var errMissingCommand = errors.New("command is required after '--'")
