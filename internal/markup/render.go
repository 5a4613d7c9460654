package markup

import (
	"strings"
	"unicode"
)

var entities = strings.NewReplacer(
	"&quot;", `"`,
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&nbsp;", " ",
	"&#39;", "'",
	"&#x27;", "'",
	"&#x2F;", "/",
	"&#x3C;", "<",
	"&#x3E;", ">",
	"&#x22;", `"`,
	"&#x26;", "&",
)

var lineEnds = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

const fence = "```"

type renderer struct {
	out    strings.Builder
	inCode bool
}

// Render converts the tree rooted at n to text. Entities are decoded once,
// after the whole text is assembled. Render accepts any tree.
func Render(n Node) string {
	var r renderer

	r.node(n)

	return entities.Replace(r.out.String())
}

func (r *renderer) node(n Node) {
	switch n := n.(type) {
	case Text:
		r.text(string(n))
	case *Element:
		if n != nil {
			r.element(n)
		}
	}
}

func (r *renderer) children(e *Element) {
	for _, child := range e.Children {
		r.node(child)
	}
}

func (r *renderer) text(s string) {
	if r.inCode {
		r.out.WriteString(s)

		return
	}

	if strings.TrimSpace(s) == "" && strings.ContainsAny(s, "\r\n") {
		return
	}

	r.out.WriteString(lineEnds.Replace(s))
}

func (r *renderer) element(e *Element) {
	switch e.Tag {
	case Paragraph:
		r.newline()
		r.children(e)
		r.out.WriteByte('\n')
	case Bold:
		r.wrap(e, "**")
	case Italic:
		r.wrap(e, "*")
	case InlineCode:
		if r.inCode || containsTag(e, CodeBlock) {
			r.children(e)
		} else {
			r.wrap(e, "`")
		}
	case CodeBlock:
		r.newline()
		r.out.WriteString(fence + blockLang(e) + "\n")

		saved := r.inCode
		r.inCode = true
		r.children(e)
		r.inCode = saved

		r.newline()
		r.out.WriteString(fence + "\n")
	case List:
		r.out.WriteByte('\n')
		r.children(e)
		r.out.WriteByte('\n')
	case ListItem:
		r.newline()
		r.out.WriteString("- ")
		r.children(e)
	case LineBreak:
		r.out.WriteByte('\n')
	case Heading1:
		r.heading(e, "#")
	case Heading2:
		r.heading(e, "##")
	case Heading3:
		r.heading(e, "###")
	case Link:
		href, has := e.Attr("href")
		if !has {
			r.children(e)

			break
		}

		r.out.WriteByte('[')
		r.children(e)
		r.out.WriteString("](" + href + ")")
	default:
		r.children(e)
	}
}

func (r *renderer) wrap(e *Element, marker string) {
	r.out.WriteString(marker)
	r.children(e)
	r.out.WriteString(marker)
}

func (r *renderer) heading(e *Element, marker string) {
	r.newline()
	r.out.WriteString(marker + " ")
	r.children(e)
	r.out.WriteByte('\n')
}

// newline ends the current line unless the output is empty or already does.
func (r *renderer) newline() {
	if r.out.Len() == 0 {
		return
	}

	if !strings.HasSuffix(r.out.String(), "\n") {
		r.out.WriteByte('\n')
	}
}

func containsTag(e *Element, tag Tag) bool {
	for _, child := range e.Children {
		el, ok := child.(*Element)
		if !ok || el == nil {
			continue
		}

		if el.Tag == tag || containsTag(el, tag) {
			return true
		}
	}

	return false
}

// blockLang returns the language of a code block, taken from a lang attribute
// or a "language-x" class on the block or on its code child.
func blockLang(e *Element) string {
	if lang := elementLang(e); len(lang) != 0 {
		return lang
	}

	for _, child := range e.Children {
		if el, ok := child.(*Element); ok && el != nil && el.Tag == InlineCode {
			return elementLang(el)
		}
	}

	return ""
}

func elementLang(e *Element) string {
	if lang, has := e.Attr("lang"); has {
		return sanitizeLang(lang)
	}

	class, _ := e.Attr("class")

	for _, name := range strings.Fields(class) {
		for _, prefix := range []string{"language-", "lang-"} {
			if lang, found := strings.CutPrefix(name, prefix); found {
				return sanitizeLang(lang)
			}
		}
	}

	return ""
}

// sanitizeLang keeps the characters that can appear in a fence info word.
func sanitizeLang(lang string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '+' || r == '#' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return -1
	}, lang)
}
