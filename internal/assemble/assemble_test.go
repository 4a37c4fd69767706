package assemble

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyleresnick/folio/internal/config"
	"github.com/lyleresnick/folio/internal/content"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/layout"
	"github.com/lyleresnick/folio/internal/markdown"
	"github.com/lyleresnick/folio/internal/pages"
	"github.com/lyleresnick/folio/internal/site"
)

func testSite(articles ...content.Article) *site.Site {
	return &site.Site{
		Name:    "Hello World",
		BaseURL: "https://example.com",
		Author:  "Lyle Resnick",
		Theme: layout.Theme{
			SiteName:   "Hello World",
			Author:     "Lyle Resnick",
			BrandColor: "#2ccabd",
			Language:   "en",
			Nav:        []layout.NavLink{{Label: "Blog", Href: "/blog/"}, {Label: "Resume", Href: "/resume/"}},
		},
		StaticPages:          []site.Page{pages.Home(config.HomeConfig{Heading: "Hi"}), pages.Blog(), pages.Resume()},
		ArticleLayouts:       pages.ArticleLayouts(),
		DefaultArticleLayout: pages.PostLayout,
		Articles:             articles,
		Tags:                 content.BuildTagIndex(articles),
		Resume:               []content.ResumeEntry{{Title: "Lead", Company: "Acme", Location: "Calgary", Date: "2020", Application: "Swift"}},
	}
}

func post(title string, date time.Time, tags ...string) content.Article {
	slug := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	return content.Article{Slug: slug, Title: title, Date: date, Body: "Some *text* here.\n", Tags: tags, SourcePath: slug + ".md", Fingerprint: "fp-" + slug}
}

func rc(s *site.Site) site.Context {
	return site.Context{Site: s, Markdown: markdown.New(markdown.Options{})}
}

func TestAssembleProducesClosedDocumentSet(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := testSite(post("First Post", d, "swift", "ios"), post("Second Post", d.AddDate(0, 0, 1), "swift"))

	res, err := Assemble(context.Background(), rc(s), Options{Concurrency: 3, Sitemap: true, Feed: true})
	require.NoError(t, err)

	assert.Len(t, res.Documents, len(s.StaticPages)+len(s.Articles)+len(s.Tags))
	got := make([]string, 0, len(res.Documents))
	for _, doc := range res.Documents {
		got = append(got, doc.Path)
		assert.True(t, strings.HasPrefix(string(doc.Bytes), "<!DOCTYPE html>"), doc.Path)
	}
	assert.Equal(t, []string{
		"blog/first-post/index.html",
		"blog/index.html",
		"blog/second-post/index.html",
		"index.html",
		"resume/index.html",
		"tags/ios/index.html",
		"tags/swift/index.html",
	}, got)

	files := map[string]string{}
	for _, f := range res.Files {
		files[f.Path] = string(f.Bytes)
	}
	require.Contains(t, files, SitemapFile)
	require.Contains(t, files, FeedFile)
	require.Contains(t, files, ManifestFile)
	assert.Contains(t, files[SitemapFile], "<loc>https://example.com/blog/first-post/</loc>")
	assert.Less(t, strings.Index(files[FeedFile], "Second Post"), strings.Index(files[FeedFile], "First Post"))

	var m Manifest
	require.NoError(t, json.Unmarshal([]byte(files[ManifestFile]), &m))
	assert.Len(t, m.Documents, 7)
	assert.Equal(t, []ManifestArticle{
		{Slug: "first-post", Path: "blog/first-post/index.html", Fingerprint: "fp-first-post"},
		{Slug: "second-post", Path: "blog/second-post/index.html", Fingerprint: "fp-second-post"},
	}, m.Articles)
}

func TestAssembleIsIdempotent(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := testSite(post("A", d, "x"), post("B", d, "x"), post("C", d.AddDate(0, 1, 0), "y"))

	first, err := Assemble(context.Background(), rc(s), Options{Concurrency: 4, Sitemap: true, Feed: true})
	require.NoError(t, err)
	second, err := Assemble(context.Background(), rc(s), Options{Concurrency: 1, Sitemap: true, Feed: true})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssembleSlugCollision(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := testSite(post("My Post", d), post("My Post", d))

	_, err := Assemble(context.Background(), rc(s), Options{Concurrency: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ferrors.ErrSlugCollision))
	assert.Error(t, Validate(s))
}

func TestAssembleTagSlugCollision(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := testSite(post("Pointers", d, "C++"), post("Structs", d, "C"))

	err := Validate(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ferrors.ErrSlugCollision))
	assert.Contains(t, err.Error(), "tags/c/index.html")
}

func TestAssembleNonLatinTagGetsPage(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := testSite(post("First Post", d, "日本語"))

	res, err := Assemble(context.Background(), rc(s), Options{Concurrency: 1})
	require.NoError(t, err)
	var paths []string
	for _, doc := range res.Documents {
		paths = append(paths, doc.Path)
	}
	assert.Contains(t, paths, "tags/日本語/index.html")
	assert.Len(t, res.Documents, len(s.StaticPages)+1+1)
}

func TestAssembleStaticPageCollision(t *testing.T) {
	s := testSite()
	s.StaticPages = append(s.StaticPages, pages.Blog())
	assert.True(t, errors.Is(Validate(s), ferrors.ErrSlugCollision))
}

func TestAssembleUnknownLayout(t *testing.T) {
	a := post("Gallery", time.Now())
	a.Layout = "gallery"
	_, err := Assemble(context.Background(), rc(testSite(a)), Options{})
	assert.True(t, errors.Is(err, ferrors.ErrRender))
}

func TestAssembleRenderFailure(t *testing.T) {
	s := testSite()
	s.Resume = []content.ResumeEntry{{Company: "No title"}}
	_, err := Assemble(context.Background(), rc(s), Options{Concurrency: 2})
	assert.True(t, errors.Is(err, ferrors.ErrRender))
}

func TestAssembleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Assemble(ctx, rc(testSite()), Options{Concurrency: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssembleWithoutBaseURLSkipsSitemapAndFeed(t *testing.T) {
	s := testSite()
	s.BaseURL = ""
	res, err := Assemble(context.Background(), rc(s), Options{Sitemap: true, Feed: true})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, ManifestFile, res.Files[0].Path)
}
