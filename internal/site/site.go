// Package site holds the immutable aggregate a build renders from: identity,
// theme, static pages, article layouts and the loaded content.
package site

import (
	"sort"

	"github.com/lyleresnick/folio/internal/config"
	"github.com/lyleresnick/folio/internal/content"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/layout"
	"github.com/lyleresnick/folio/internal/markdown"
	"github.com/lyleresnick/folio/internal/paths"
	"github.com/lyleresnick/folio/internal/render"
)

// Context is passed to every renderer. Its contents must not be mutated.
type Context struct {
	Site     *Site
	Markdown *markdown.Renderer
}

// Page is a static page of the site.
type Page struct {
	Title       string
	Slug        string
	Description string
	Body        func(Context) ([]render.Node, error)
}

// Path returns the page URL path.
func (p Page) Path() string { return paths.Page(p.Slug) }

// ArticleLayout renders the body of one article.
type ArticleLayout func(Context, content.Article) ([]render.Node, error)

// TagRenderer renders the body of one tag page.
type TagRenderer func(Context, content.Tag) ([]render.Node, error)

// Site is the whole renderable site.
type Site struct {
	Name    string
	BaseURL string
	Author  string
	Theme   layout.Theme

	StaticPages          []Page
	ArticleLayouts       map[string]ArticleLayout
	DefaultArticleLayout string
	TagPage              TagRenderer

	Articles []content.Article
	Tags     []content.Tag
	Resume   []content.ResumeEntry
}

// Page returns the static page with slug.
func (s *Site) Page(slug string) (Page, bool) {
	for _, p := range s.StaticPages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// LayoutFor picks the article layout named by the article or the site default.
func (s *Site) LayoutFor(a content.Article) (ArticleLayout, error) {
	name := a.Layout
	if name == "" {
		name = s.DefaultArticleLayout
	}
	l, ok := s.ArticleLayouts[name]
	if !ok {
		return nil, ferrors.RenderError("article %q: unknown layout %q (available: %v)", a.Slug, name, s.layoutNames()).Build()
	}
	return l, nil
}

func (s *Site) layoutNames() []string {
	names := make([]string, 0, len(s.ArticleLayouts))
	for n := range s.ArticleLayouts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DocumentCount is the number of HTML documents a render produces.
func (s *Site) DocumentCount() int {
	return len(s.StaticPages) + len(s.Articles) + len(s.Tags)
}

// ResolveNav maps configured navigation entries onto static pages.
func ResolveNav(items []config.NavItem, pages []Page) ([]layout.NavLink, error) {
	links := make([]layout.NavLink, 0, len(items))
	for _, item := range items {
		found := false
		for _, p := range pages {
			if p.Slug == item.Page {
				links = append(links, layout.NavLink{Label: item.Label, Href: p.Path()})
				found = true
				break
			}
		}
		if !found {
			return nil, ferrors.ConfigError("navigation entry %q targets unknown page %q", item.Label, item.Page).Build()
		}
	}
	return links, nil
}

// ThemeFromConfig builds the layout theme from site configuration.
func ThemeFromConfig(cfg config.SiteConfig, nav []layout.NavLink) layout.Theme {
	return layout.Theme{
		SiteName:    cfg.Name,
		TitleSuffix: cfg.TitleSuffix,
		BaseURL:     cfg.BaseURL,
		Author:      cfg.Author,
		Email:       cfg.Email,
		Repository:  cfg.Repository,
		Logo:        cfg.Logo,
		BrandColor:  cfg.BrandColor,
		Language:    cfg.Language,
		Description: cfg.Description,
		Stylesheets: cfg.Stylesheets,
		Scripts:     cfg.Scripts,
		Nav:         nav,
	}
}
