// Package markup renders parsed description markup as markdown-flavoured text.
package markup

// Tag identifies the element kinds the renderer formats. Elements with any
// other name are Other and render their children without markup.
type Tag int

const (
	Other Tag = iota
	Paragraph
	Bold
	Italic
	InlineCode
	CodeBlock
	List
	ListItem
	LineBreak
	Heading1
	Heading2
	Heading3
	Link
)

var tagNames = map[string]Tag{
	"p":      Paragraph,
	"strong": Bold,
	"b":      Bold,
	"em":     Italic,
	"i":      Italic,
	"code":   InlineCode,
	"pre":    CodeBlock,
	"ul":     List,
	"ol":     List,
	"li":     ListItem,
	"br":     LineBreak,
	"h1":     Heading1,
	"h2":     Heading2,
	"h3":     Heading3,
	"a":      Link,
}

// TagOf maps an element name to its tag.
func TagOf(name string) Tag {
	return tagNames[name]
}

// Node is either [Text] or [*Element].
type Node interface {
	node()
}

// Text is a text leaf.
type Text string

// Element is a markup element with its attributes and ordered children.
type Element struct {
	Tag      Tag
	Name     string
	Attrs    map[string]string
	Children []Node
}

func (Text) node()     {}
func (*Element) node() {}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e.Attrs == nil {
		return "", false
	}

	value, has := e.Attrs[name]

	return value, has
}

// NewElement returns an element named name, tagged with [TagOf].
func NewElement(name string, attrs map[string]string, children ...Node) *Element {
	return &Element{Tag: TagOf(name), Name: name, Attrs: attrs, Children: children}
}
