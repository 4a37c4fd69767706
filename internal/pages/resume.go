package pages

import (
	"strings"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/render"
	"github.com/lyleresnick/folio/internal/site"
)

// Resume returns the resume page. Entries appear in data file order.
func Resume() site.Page {
	return site.Page{
		Title: "Resume",
		Slug:  "resume",
		Body: func(ctx site.Context) ([]render.Node, error) {
			nodes := []render.Node{title("My Resume")}
			for i, job := range ctx.Site.Resume {
				if strings.TrimSpace(job.Title) == "" {
					return nil, ferrors.RenderError("resume entry %d has no title", i).Build()
				}
				nodes = append(nodes, render.Card{
					Children: []render.Node{
						render.Paragraph{Children: []render.Node{render.T(job.Title)}, Style: noMargin.Merge(render.Style{FontWeight: "600"})},
						render.Paragraph{
							Children: []render.Node{
								render.T(job.Company + ", " + job.Location + ", "),
								render.Emphasis{Children: []render.Node{render.T(job.Date)}},
							},
							Style: noMargin,
						},
						render.Spacer{Height: 10},
						render.Paragraph{Children: []render.Node{render.T(job.Application)}, Style: noMargin},
					},
					Style: cardSpacing,
				})
			}
			return nodes, nil
		},
	}
}
