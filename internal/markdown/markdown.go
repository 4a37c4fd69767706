package markdown

import (
	"bytes"
	"strings"
	"unicode/utf8"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Options controls how Markdown is parsed and rendered.
type Options struct {
	// HighlightStyle names a chroma style for fenced code blocks. Empty uses "github".
	HighlightStyle string
}

// Renderer converts Markdown bodies into HTML fragments. It is safe for
// concurrent use once constructed.
type Renderer struct {
	md    goldmark.Markdown
	style string
}

// New builds a Renderer with GitHub-flavored Markdown and chroma highlighting.
func New(opts Options) *Renderer {
	style := opts.HighlightStyle
	if style == "" {
		style = "github"
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Renderer{md: md, style: style}
}

// CSS returns the stylesheet for the highlight style's token classes.
// Unknown style names fall back to chroma's default style.
func (r *Renderer) CSS() (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(r.style)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render converts body to an HTML fragment.
func (r *Renderer) Render(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseBody parses a Markdown body (frontmatter already removed) into a Goldmark AST.
func (r *Renderer) ParseBody(body []byte) gmast.Node {
	return r.md.Parser().Parse(text.NewReader(body))
}

// FirstParagraph returns the plain text of the first top-level paragraph,
// truncated to limit runes with a trailing ellipsis. limit <= 0 disables truncation.
func (r *Renderer) FirstParagraph(body []byte, limit int) string {
	root := r.ParseBody(body)
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() != gmast.KindParagraph {
			continue
		}
		return Truncate(plainText(n, body), limit)
	}
	return ""
}

func plainText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := c.(type) {
		case *gmast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(node.Value)
		case *gmast.AutoLink:
			sb.Write(node.Label(source))
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Truncate shortens s to at most limit runes, cutting at the last word
// boundary and appending an ellipsis.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
