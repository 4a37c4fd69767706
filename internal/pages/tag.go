package pages

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lyleresnick/folio/internal/content"
	"github.com/lyleresnick/folio/internal/paths"
	"github.com/lyleresnick/folio/internal/render"
	"github.com/lyleresnick/folio/internal/site"
)

// Tag renders the page listing every article carrying a tag.
func Tag(ctx site.Context, tag content.Tag) ([]render.Node, error) {
	items := make([][]render.Node, 0, len(tag.Articles))
	for _, a := range tag.Articles {
		items = append(items, []render.Node{brandLink(paths.Article(a.Slug), a.Title, ctx.Site.Theme.BrandColor)})
	}
	return []render.Node{
		render.Spacer{Height: 30},
		render.H(1, tag.Name),
		render.List{Items: items},
	}, nil
}

// TagTitle is the document title of a tag page, title-cased for the site language.
func TagTitle(tag content.Tag, lang string) string {
	tg, err := language.Parse(lang)
	if err != nil {
		tg = language.English
	}
	return cases.Title(tg, cases.NoLower).String(tag.Name)
}
