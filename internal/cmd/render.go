package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezerfernandes/lcsub/internal/markup"
	"github.com/ezerfernandes/lcsub/internal/mdcode"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func renderCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "render [flags] [filename]",
		Aliases: []string{"r"},
		Short:   "Render an HTML problem description as text",
		Long: `Render an HTML problem description as markdown-flavoured text.

Paragraphs, emphasis, inline code, code blocks, lists, headings and links are
formatted; other elements contribute their text only. A code block's fence
carries the language named by a "language-x" class or a lang attribute.

With --blocks, the fenced code blocks of the rendered text are listed instead;
--block-lang restricts the list to languages matching the given globs.`,
		Args: checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			var err error

			opts.filter, err = filter(opts.blockLang)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := opts.read(source(args))
			if err != nil {
				return err
			}

			text, err := markup.Description(string(src))
			if err != nil {
				return err
			}

			if opts.blocks {
				return listBlocks(cmd.OutOrStdout(), []byte(text), opts)
			}

			fmt.Fprint(cmd.OutOrStdout(), text)

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVarP(&opts.blocks, "blocks", "b", false, "list fenced code blocks of the rendered text")
	cmd.Flags().StringSliceVar(&opts.blockLang, "block-lang", nil, "only list blocks whose language matches one of these globs")
	quietFlag(cmd, opts)

	return cmd
}

func listBlocks(out io.Writer, text []byte, opts *options) error {
	tbl := table.New("#", "Lang", "Lines", "First line").WithWriter(out)
	count := 0

	err := walk(text, func(block *mdcode.Block) error {
		count++

		first, _, _ := strings.Cut(string(block.Code), "\n")
		tbl.AddRow(count, block.Lang, fmt.Sprintf("%d-%d", block.StartLine, block.EndLine), first)

		return nil
	}, opts.filter)
	if err != nil {
		return err
	}

	if count == 0 {
		opts.status("no code blocks\n")

		return nil
	}

	tbl.Print()

	return nil
}
