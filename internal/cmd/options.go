package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet  bool
	status statusFunc

	readFile func(name string) ([]byte, error)
	stdin    io.Reader

	lang        string
	opener      string
	terminators string
	region      string
	strict      bool

	dir  string
	keep bool

	blocks    bool
	blockLang []string
	filter    filterFunc
}

func newOptions() *options {
	return &options{ //nolint:exhaustruct
		readFile: os.ReadFile,
		stdin:    os.Stdin,
		status:   func(string, ...interface{}) {},
	}
}

func (opts *options) createStatus(out io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(out, format, args...)
	}
}

// read returns the contents of filename, or of standard input for "-".
func (opts *options) read(filename string) ([]byte, error) {
	if filename == "-" {
		return io.ReadAll(opts.stdin)
	}

	return opts.readFile(filename)
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
}

func dirFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "working directory for the extracted solution (default: a new temporary directory)")
}

func extractFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "rust", "language preset selecting opener and terminators")
	cmd.Flags().StringVar(&opts.opener, "opener", "", "pattern of the solution's first line, as kind:text")
	cmd.Flags().StringVar(&opts.terminators, "terminator", "", "shell-quoted list of patterns ending the search, as kind:text")
	cmd.Flags().StringVar(&opts.region, "region", "solution", "name of a #region overriding pattern extraction (empty disables)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when no solution block is found")
}

// source returns the input file named by args, standard input by default.
func source(args []string) string {
	if len(args) == 0 {
		return "-"
	}

	return args[0]
}
