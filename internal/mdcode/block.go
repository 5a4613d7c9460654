// Package mdcode lists the fenced code blocks of a markdown document, such as
// the example and constraint fences of a rendered problem description.
package mdcode

// Block is one fenced code block. Lines are 1-based and refer to the fence
// lines enclosing Code.
type Block struct {
	Lang      string
	Meta      Meta
	Code      []byte
	StartLine int
	EndLine   int
}

type Blocks []*Block
