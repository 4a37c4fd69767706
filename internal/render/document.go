package render

// Document is a complete HTML page.
type Document struct {
	Lang string
	Head Head
	Body []Node
}

// Head describes the document head.
type Head struct {
	Title   string
	Meta    []Meta
	Links   []HeadLink
	Scripts []string
	// CSS is inlined in a style element after the stylesheet links.
	CSS string
}

// Meta is a name/content meta tag.
type Meta struct {
	Name    string
	Content string
}

// HeadLink is a link element such as a stylesheet or canonical URL.
type HeadLink struct {
	Rel  string
	Href string
}
