package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
)

// Serialize renders doc as a complete HTML5 page.
func Serialize(doc Document) ([]byte, error) {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element("html")
	if doc.Lang != "" {
		htmlEl.Attr = append(htmlEl.Attr, attr("lang", doc.Lang))
	}
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(headNode(doc.Head))

	body := element("body")
	if err := appendNodes(body, doc.Body); err != nil {
		return nil, err
	}
	htmlEl.AppendChild(body)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, ferrors.RenderError("serialize document %q", doc.Head.Title).WithCause(err).Build()
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// SerializeFragment renders nodes without a surrounding document.
func SerializeFragment(nodes []Node) (string, error) {
	wrapper := element("div")
	if err := appendNodes(wrapper, nodes); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for c := wrapper.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", ferrors.RenderError("serialize fragment").WithCause(err).Build()
		}
	}
	return buf.String(), nil
}

func headNode(h Head) *html.Node {
	head := element("head")
	head.AppendChild(element("meta", attr("charset", "utf-8")))
	for _, m := range h.Meta {
		head.AppendChild(element("meta", attr("name", m.Name), attr("content", m.Content)))
	}
	title := element("title")
	title.AppendChild(text(h.Title))
	head.AppendChild(title)
	for _, l := range h.Links {
		head.AppendChild(element("link", attr("rel", l.Rel), attr("href", l.Href)))
	}
	if h.CSS != "" {
		style := element("style")
		style.AppendChild(&html.Node{Type: html.RawNode, Data: h.CSS})
		head.AppendChild(style)
	}
	for _, src := range h.Scripts {
		head.AppendChild(element("script", attr("src", src), attr("defer", "")))
	}
	return head
}

func appendNodes(parent *html.Node, nodes []Node) error {
	for _, n := range nodes {
		child, err := toHTML(n)
		if err != nil {
			return err
		}
		parent.AppendChild(child)
	}
	return nil
}

func withChildren(el *html.Node, children []Node) (*html.Node, error) {
	if err := appendNodes(el, children); err != nil {
		return nil, err
	}
	return el, nil
}

func toHTML(n Node) (*html.Node, error) {
	switch v := n.(type) {
	case Text:
		return text(v.Value), nil
	case Raw:
		return &html.Node{Type: html.RawNode, Data: v.HTML}, nil
	case Heading:
		if v.Level < 1 || v.Level > 6 {
			return nil, ferrors.RenderError("heading level %d out of range", v.Level).Build()
		}
		return withChildren(styled(element("h"+strconv.Itoa(v.Level)), v.Style), v.Children)
	case Paragraph:
		return withChildren(styled(element("p"), v.Style), v.Children)
	case Emphasis:
		tag := "em"
		if v.Strong {
			tag = "strong"
		}
		return withChildren(element(tag), v.Children)
	case Link:
		a := styled(element("a", attr("href", v.Href)), v.Style)
		if v.Target != "" {
			a.Attr = append(a.Attr, attr("target", v.Target))
			if v.Target == "_blank" {
				a.Attr = append(a.Attr, attr("rel", "noopener"))
			}
		}
		return withChildren(a, v.Children)
	case List:
		tag := "ul"
		if v.Ordered {
			tag = "ol"
		}
		list := styled(element(tag), v.Style)
		for _, item := range v.Items {
			li, err := withChildren(element("li"), item)
			if err != nil {
				return nil, err
			}
			list.AppendChild(li)
		}
		return list, nil
	case Image:
		return imageNode(v), nil
	case Card:
		card := styled(element("div"), Style{Classes: []string{"card"}}.Merge(v.Style))
		if v.Image != nil {
			img := *v.Image
			img.Style = Style{Classes: []string{"card-img-top"}}.Merge(img.Style)
			card.AppendChild(imageNode(img))
		}
		body, err := withChildren(element("div", attr("class", "card-body")), v.Children)
		if err != nil {
			return nil, err
		}
		card.AppendChild(body)
		return card, nil
	case Grid:
		cols := v.Columns
		if cols < 1 {
			cols = 1
		}
		grid := styled(element("div"), Style{Classes: []string{"grid", "grid-cols-" + strconv.Itoa(cols)}}.Merge(v.Style))
		for _, item := range v.Items {
			cell, err := withChildren(element("div", attr("class", "grid-item")), []Node{item})
			if err != nil {
				return nil, err
			}
			grid.AppendChild(cell)
		}
		return grid, nil
	case Group:
		tag := v.Tag
		if tag == "" {
			tag = "div"
		}
		el := element(tag)
		if v.ID != "" {
			el.Attr = append(el.Attr, attr("id", v.ID))
		}
		return withChildren(styled(el, v.Style), v.Children)
	case Spacer:
		return element("div", attr("class", "spacer"), attr("style", fmt.Sprintf("height: %dpx", v.Height))), nil
	default:
		return nil, ferrors.InternalError(fmt.Sprintf("unsupported node %T", n)).Build()
	}
}

func imageNode(img Image) *html.Node {
	return styled(element("img", attr("src", img.Src), attr("alt", img.Alt)), img.Style)
}

func styled(el *html.Node, s Style) *html.Node {
	if len(s.Classes) > 0 {
		el.Attr = append(el.Attr, attr("class", strings.Join(s.Classes, " ")))
	}
	if css := s.css(); css != "" {
		el.Attr = append(el.Attr, attr("style", css))
	}
	return el
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
