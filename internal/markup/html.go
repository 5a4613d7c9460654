package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// The HTML parser decodes entities in text and attribute values. Re-escaping the characters the
// render pass decodes keeps decoding to a single pass end to end.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\u00a0", "&nbsp;",
)

// FromHTML parses an HTML fragment into a tree rooted at an Other element.
// Comments, doctypes and other non-content nodes are dropped.
func FromHTML(r io.Reader) (Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, err
	}

	root := &Element{Tag: Other, Name: "body"}

	for _, n := range nodes {
		if child := convert(n); child != nil {
			root.Children = append(root.Children, child)
		}
	}

	return root, nil
}

func convert(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return Text(escaper.Replace(n.Data))
	case html.ElementNode:
		var attrs map[string]string

		if len(n.Attr) != 0 {
			attrs = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				attrs[a.Key] = escaper.Replace(a.Val)
			}
		}

		el := NewElement(n.Data, attrs)

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}

		return el
	default:
		return nil
	}
}

// Description renders an HTML problem description as text.
func Description(content string) (string, error) {
	root, err := FromHTML(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	return Render(root), nil
}
