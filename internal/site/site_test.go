package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyleresnick/folio/internal/config"
	"github.com/lyleresnick/folio/internal/content"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/layout"
	"github.com/lyleresnick/folio/internal/render"
)

func TestResolveNav(t *testing.T) {
	pages := []Page{{Slug: ""}, {Slug: "blog"}, {Slug: "resume"}}

	links, err := ResolveNav([]config.NavItem{{Label: "Resume", Page: "resume"}, {Label: "Blog", Page: "blog"}}, pages)
	require.NoError(t, err)
	assert.Equal(t, []layout.NavLink{{Label: "Resume", Href: "/resume/"}, {Label: "Blog", Href: "/blog/"}}, links)

	_, err = ResolveNav([]config.NavItem{{Label: "About", Page: "about"}}, pages)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ferrors.ErrConfig))
}

func TestLayoutFor(t *testing.T) {
	post := func(Context, content.Article) ([]render.Node, error) { return nil, nil }
	s := &Site{ArticleLayouts: map[string]ArticleLayout{"post": post}, DefaultArticleLayout: "post"}

	_, err := s.LayoutFor(content.Article{Slug: "a"})
	require.NoError(t, err)

	_, err = s.LayoutFor(content.Article{Slug: "a", Layout: "gallery"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ferrors.ErrRender))
}

func TestDocumentCount(t *testing.T) {
	s := &Site{
		StaticPages: []Page{{Slug: ""}, {Slug: "blog"}},
		Articles:    []content.Article{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}},
		Tags:        []content.Tag{{Slug: "x"}},
	}
	assert.Equal(t, 6, s.DocumentCount())
	p, ok := s.Page("blog")
	assert.True(t, ok)
	assert.Equal(t, "/blog/", p.Path())
	_, ok = s.Page("missing")
	assert.False(t, ok)
}
