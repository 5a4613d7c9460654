package mdcode

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`\s*(\w+)\s*(.*)\s*`)

// Walker is a callback invoked for each fenced code block of a document.
// Returning an error stops the walk.
type Walker func(block *Block) error

// Walk parses a markdown document and calls walker for every fenced code
// block, in document order.
func Walk(source []byte, walker Walker) error {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	return ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Kind() != ast.KindFencedCodeBlock {
			return ast.WalkContinue, nil
		}

		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block, err := newBlock(fcb, source)
		if err != nil {
			return ast.WalkStop, err
		}

		if err := walker(block); err != nil {
			return ast.WalkStop, err
		}

		return ast.WalkSkipChildren, nil
	})
}

func newBlock(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	block := &Block{Code: code(fcb, source)}

	if fcb.Info != nil {
		var err error

		block.Lang, block.Meta, err = parseInfo(fcb.Info.Text(source))
		if err != nil {
			return nil, err
		}
	}

	block.StartLine, block.EndLine = lineRange(fcb, source)

	return block, nil
}

// lineRange returns the lines of the opening and closing fences. The opening
// fence is located from the first content line when the block has no info
// string, since goldmark records no position for the fence itself.
func lineRange(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	lines := fcb.Lines()

	var start int

	switch {
	case fcb.Info != nil:
		start = lineAt(source, fcb.Info.Segment.Start)
	case lines.Len() > 0:
		start = lineAt(source, lines.At(0).Start) - 1
	default:
		return 0, 0
	}

	end := start + lines.Len() + 1

	return start, end
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

func code(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)

		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

func parseInfo(info []byte) (string, Meta, error) {
	all := reInfo.FindSubmatch(info)
	if all == nil {
		return "", nil, nil
	}

	lang := string(all[1])

	meta, err := parseMeta(all[2])
	if err != nil {
		return "", nil, err
	}

	return lang, meta, nil
}
