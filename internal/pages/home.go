package pages

import (
	"github.com/lyleresnick/folio/internal/config"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/paths"
	"github.com/lyleresnick/folio/internal/render"
	"github.com/lyleresnick/folio/internal/site"
)

// DefaultBio is used when the configuration has no home biography.
const DefaultBio = `I develop iOS and Flutter mobile applications. I think software code quality is very important.

Currently, my primary interests are *Clean Mobile Architecture* and *Test Driven Development*. My experience has shown me that these two techniques work well together to produce software that is easy to change and free of bugs.

I have over thirty years of software experience. Some of my major technical accomplishments include the development of commercial compilers, window systems, and forms frameworks for both desktop & mobile.

I have written a lot of software. In Mobile development, I have acted as lead and developer of apps for:

- Social Networking
- Banking
- Insurance
- Retail, and
- Restaurant

In web and desktop development, I have acted as development lead and developer of applications for:

- Restaurant
- Commercial Foreign Exchange
- Securities, and
- Banking
`

// Home returns the site root page: a heading followed by the markdown biography.
func Home(cfg config.HomeConfig) site.Page {
	bio := cfg.Bio
	if bio == "" {
		bio = DefaultBio
	}
	return site.Page{
		Title: "Home",
		Slug:  paths.HomeSlug,
		Body: func(ctx site.Context) ([]render.Node, error) {
			html, err := ctx.Markdown.Render([]byte(bio))
			if err != nil {
				return nil, ferrors.RenderError("home biography").WithCause(err).Build()
			}
			return []render.Node{
				title(cfg.Heading),
				render.Group{Children: []render.Node{render.Raw{HTML: html}}, Style: render.Style{Classes: []string{"bio"}}},
			}, nil
		},
	}
}
