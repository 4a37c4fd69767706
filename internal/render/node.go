package render

// Node is one element of a page tree. The set of variants is closed.
type Node interface {
	isNode()
}

// Text is escaped character data.
type Text struct{ Value string }

// Heading is an h1..h6 element.
type Heading struct {
	Level    int
	Children []Node
	Style    Style
}

// Paragraph is a p element.
type Paragraph struct {
	Children []Node
	Style    Style
}

// Emphasis renders em, or strong when Strong is set.
type Emphasis struct {
	Strong   bool
	Children []Node
}

// Link is an anchor. Target "_blank" links also get rel="noopener".
type Link struct {
	Href     string
	Target   string
	Children []Node
	Style    Style
}

// List is a ul or ol; each item becomes one li.
type List struct {
	Ordered bool
	Items   [][]Node
	Style   Style
}

// Image is an img element.
type Image struct {
	Src   string
	Alt   string
	Style Style
}

// Card is a bordered block with an optional image above its body.
type Card struct {
	Image    *Image
	Children []Node
	Style    Style
}

// Grid lays Items out in Columns equal columns, collapsing on narrow screens.
type Grid struct {
	Columns int
	Items   []Node
	Style   Style
}

// Group wraps children in a container element; Tag defaults to div.
type Group struct {
	Tag      string
	ID       string
	Children []Node
	Style    Style
}

// Spacer is vertical whitespace of Height pixels.
type Spacer struct{ Height int }

// Raw is trusted, pre-rendered HTML inserted verbatim.
type Raw struct{ HTML string }

func (Text) isNode()      {}
func (Heading) isNode()   {}
func (Paragraph) isNode() {}
func (Emphasis) isNode()  {}
func (Link) isNode()      {}
func (List) isNode()      {}
func (Image) isNode()     {}
func (Card) isNode()      {}
func (Grid) isNode()      {}
func (Group) isNode()     {}
func (Spacer) isNode()    {}
func (Raw) isNode()       {}

// T is shorthand for a Text node.
func T(s string) Text { return Text{Value: s} }

// H builds a heading with a single text child.
func H(level int, text string) Heading {
	return Heading{Level: level, Children: []Node{T(text)}}
}

// P builds a paragraph from children.
func P(children ...Node) Paragraph { return Paragraph{Children: children} }

// A builds a link with a single text child.
func A(href, text string) Link {
	return Link{Href: href, Children: []Node{T(text)}}
}
