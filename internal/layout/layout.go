// Package layout wraps page bodies in the shared site chrome: document head,
// fixed navigation bar, content container and footer.
package layout

import (
	"github.com/lyleresnick/folio/internal/paths"
	"github.com/lyleresnick/folio/internal/render"
	"github.com/lyleresnick/folio/internal/version"
)

// NavHeight is the height of the fixed navigation bar; content is pushed
// down by a spacer of the same size.
const NavHeight = 54

// NavLink is a resolved navigation bar entry.
type NavLink struct {
	Label string
	Href  string
}

// Theme carries the site-wide values every page's chrome is built from.
type Theme struct {
	SiteName    string
	TitleSuffix string
	BaseURL     string
	Author      string
	Email       string
	Repository  string
	Logo        string
	BrandColor  string
	Language    string
	Description string
	Stylesheets []string
	Scripts     []string
	Nav         []NavLink
	// Revision is emitted as a meta tag when non-empty.
	Revision string
	// CodeCSS styles highlighted code blocks; appended to the base CSS.
	CodeCSS string
}

// Page identifies the page being composed.
type Page struct {
	Title       string
	Path        string
	Description string
}

// Compose builds the full document for a page body.
func Compose(page Page, body []render.Node, theme Theme) render.Document {
	content := make([]render.Node, 0, 4)
	content = append(content,
		navBar(theme),
		render.Spacer{Height: NavHeight},
		render.Group{
			Tag:      "main",
			Children: body,
			Style:    render.Style{Width: "95%", Margin: "0 auto"},
		},
		footer(theme),
	)

	return render.Document{
		Lang: theme.Language,
		Head: head(page, theme),
		Body: content,
	}
}

func head(page Page, theme Theme) render.Head {
	description := page.Description
	if description == "" {
		description = theme.Description
	}
	meta := []render.Meta{
		{Name: "viewport", Content: "width=device-width, initial-scale=1"},
	}
	if description != "" {
		meta = append(meta, render.Meta{Name: "description", Content: description})
	}
	if theme.Author != "" {
		meta = append(meta, render.Meta{Name: "author", Content: theme.Author})
	}
	meta = append(meta, render.Meta{Name: "generator", Content: "folio " + version.Version})
	if theme.Revision != "" {
		meta = append(meta, render.Meta{Name: "revision", Content: theme.Revision})
	}

	links := make([]render.HeadLink, 0, len(theme.Stylesheets)+1)
	if theme.BaseURL != "" && page.Path != "" {
		links = append(links, render.HeadLink{Rel: "canonical", Href: paths.Absolute(theme.BaseURL, page.Path)})
	}
	for _, href := range theme.Stylesheets {
		links = append(links, render.HeadLink{Rel: "stylesheet", Href: href})
	}

	return render.Head{
		Title:   page.Title + theme.TitleSuffix,
		Meta:    meta,
		Links:   links,
		Scripts: theme.Scripts,
		CSS:     baseCSS + theme.CodeCSS,
	}
}

func navBar(theme Theme) render.Node {
	items := make([][]render.Node, 0, len(theme.Nav))
	for _, n := range theme.Nav {
		items = append(items, []render.Node{render.Link{
			Href:     n.Href,
			Children: []render.Node{render.T(n.Label)},
			Style:    render.Style{Classes: []string{"nav-link"}},
		}})
	}

	logo := theme.Logo
	if logo == "" {
		logo = theme.SiteName
	}
	return render.Group{
		Tag: "header",
		Children: []render.Node{render.Group{
			Tag: "nav",
			Children: []render.Node{
				render.Link{
					Href:     paths.Page(paths.HomeSlug),
					Children: []render.Node{render.T(logo)},
					Style:    render.Style{Classes: []string{"navbar-brand"}},
				},
				render.List{Items: items, Style: render.Style{Classes: []string{"navbar-nav"}}},
			},
			Style: render.Style{
				Classes:    []string{"navbar", "navbar-dark", "fixed-top"},
				Background: theme.BrandColor,
			},
		}},
	}
}

func footer(theme Theme) render.Node {
	children := []render.Node{
		render.Spacer{Height: 30},
		render.Paragraph{
			Children: []render.Node{render.T(theme.Author)},
			Style:    render.Style{Color: theme.BrandColor, FontWeight: "600"},
		},
	}
	if theme.Email != "" {
		children = append(children, render.P(
			render.T("\U0001F4E7 "),
			render.A("mailto:"+theme.Email, "Email me"),
		))
	}
	if theme.Repository != "" {
		children = append(children, render.P(
			render.Image{Src: "/images/github-mark.svg", Alt: "GitHub", Style: render.Style{Width: "16px"}},
			render.T(" "),
			render.Link{Href: theme.Repository, Target: "_blank", Children: []render.Node{render.T("Github")}},
		))
	}
	children = append(children, render.Spacer{Height: 20})

	return render.Group{
		Tag:      "footer",
		Children: children,
		Style:    render.Style{Align: "center"},
	}
}
