package pages

import (
	"github.com/lyleresnick/folio/internal/content"
	"github.com/lyleresnick/folio/internal/markdown"
	"github.com/lyleresnick/folio/internal/paths"
	"github.com/lyleresnick/folio/internal/render"
	"github.com/lyleresnick/folio/internal/site"
	"github.com/lyleresnick/folio/internal/slug"
	"github.com/lyleresnick/folio/internal/util/sets"
)

// BlogColumns is the number of preview columns on wide screens.
const BlogColumns = 2

// PreviewLength caps the description shown on a preview card.
const PreviewLength = 200

// Blog returns the article index page.
func Blog() site.Page {
	return site.Page{
		Title: "Blog",
		Slug:  paths.BlogSlug,
		Body: func(ctx site.Context) ([]render.Node, error) {
			sorted := make([]content.Article, len(ctx.Site.Articles))
			copy(sorted, ctx.Site.Articles)
			content.SortByDate(sorted)

			previews := make([]render.Node, 0, len(sorted))
			for _, a := range sorted {
				previews = append(previews, Preview(a, ctx.Site.Theme.BrandColor))
			}
			return []render.Node{
				title("Blog"),
				render.Grid{Columns: BlogColumns, Items: previews},
			}, nil
		},
	}
}

// Preview builds the card shown for an article on listing pages.
func Preview(a content.Article, brandColor string) render.Node {
	children := []render.Node{
		render.Heading{
			Level:    4,
			Children: []render.Node{brandLink(paths.Article(a.Slug), a.Title, brandColor)},
		},
		render.Paragraph{Children: []render.Node{render.T(markdown.Truncate(a.Description, PreviewLength))}, Style: noMargin},
	}
	if links := TagLinks(a); len(links) > 0 {
		children = append(children, render.Group{Children: links, Style: render.Style{Classes: []string{"tag-links"}}})
	}

	card := render.Card{Children: children, Style: cardSpacing}
	if a.Image != "" {
		card.Image = &render.Image{Src: a.Image, Alt: a.Title}
	}
	return card
}

// TagLinks returns one link per distinct article tag, in the article's tag order.
func TagLinks(a content.Article) []render.Node {
	seen := sets.New[string]()
	links := make([]render.Node, 0, len(a.Tags))
	for _, name := range a.Tags {
		s := slug.Make(name)
		if s == "" || !seen.AddNew(s) {
			continue
		}
		links = append(links, render.A(paths.Tag(s), name))
	}
	return links
}
