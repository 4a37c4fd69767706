package pages

import (
	"fmt"

	"github.com/lyleresnick/folio/internal/content"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/render"
	"github.com/lyleresnick/folio/internal/site"
)

// DateFormat is the medium date style used on article pages.
const DateFormat = "Jan 2, 2006"

// PostLayout is the name of the built-in article layout.
const PostLayout = "post"

// ArticleLayouts returns the built-in article layout registry.
func ArticleLayouts() map[string]site.ArticleLayout {
	return map[string]site.ArticleLayout{
		PostLayout: Post,
	}
}

// Post renders an article: title, date, reading stats and body.
func Post(ctx site.Context, a content.Article) ([]render.Node, error) {
	body, err := ctx.Markdown.Render([]byte(a.Body))
	if err != nil {
		return nil, ferrors.RenderError("article %q body", a.Slug).WithCause(err).Build()
	}

	children := []render.Node{
		render.Heading{
			Level:    1,
			Children: []render.Node{render.T(a.Title)},
			Style:    render.Style{FontWeight: "500", Margin: "1.5rem 0 0.5rem"},
		},
		render.Paragraph{Children: []render.Node{render.T(a.Date.Format(DateFormat))}, Style: mediumWeight},
		render.Paragraph{Children: []render.Node{render.T(ReadingLine(a))}, Style: mediumWeight},
		render.Raw{HTML: body},
	}
	if links := TagLinks(a); len(links) > 0 {
		children = append(children, render.Group{Children: links, Style: render.Style{Classes: []string{"tag-links"}}})
	}
	return []render.Node{render.Group{
		Tag:      "article",
		Children: children,
		Style:    render.Style{Width: "90%"},
	}}, nil
}

// ReadingLine formats the word count and reading time sentence.
func ReadingLine(a content.Article) string {
	return fmt.Sprintf("%d words; %d minutes to read.", a.WordCount, a.ReadingMinutes)
}
