package pages

import (
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
	"github.com/lyleresnick/folio/internal/render"
	"github.com/lyleresnick/folio/internal/site"
)

func testContext(s *site.Site) site.Context {
	if s.Theme.BrandColor == "" {
		s.Theme = layout.Theme{BrandColor: "#2ccabd"}
	}
	return site.Context{Site: s, Markdown: markdown.New(markdown.Options{})}
}

func serialize(t *testing.T, nodes []render.Node) string {
	t.Helper()
	out, err := render.SerializeFragment(nodes)
	require.NoError(t, err)
	return out
}

func article(slug string, date time.Time, tags ...string) content.Article {
	return content.Article{Slug: slug, Title: strings.ToUpper(slug), Date: date, Tags: tags, Description: slug + " summary"}
}

func TestPost(t *testing.T) {
	a := content.Article{
		Slug:           "hello",
		Title:          "Hello",
		Date:           time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Body:           "## Section\n\nText\n",
		Tags:           []string{"Swift", "swift", "iOS"},
		WordCount:      400,
		ReadingMinutes: 2,
	}
	nodes, err := Post(testContext(&site.Site{}), a)
	require.NoError(t, err)
	html := serialize(t, nodes)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Mar 4, 2024")
	assert.Contains(t, html, "400 words; 2 minutes to read.")
	assert.Contains(t, html, `<h2 id="section">Section</h2>`)
	assert.Contains(t, html, `style="width: 90%"`)
	assert.Equal(t, 1, strings.Count(html, `href="/tags/swift/"`))
	assert.Contains(t, html, `href="/tags/ios/"`)
}

func TestBlogOrdersNewestFirst(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &site.Site{Articles: []content.Article{
		article("old", d),
		article("new", d.AddDate(0, 2, 0), "go"),
		article("mid", d.AddDate(0, 1, 0)),
	}}
	s.Articles[1].Image = "/img/new.png"

	nodes, err := Blog().Body(testContext(s))
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	grid, ok := nodes[1].(render.Grid)
	require.True(t, ok)
	assert.Equal(t, BlogColumns, grid.Columns)

	html := serialize(t, nodes)
	iNew := strings.Index(html, `href="/blog/new/"`)
	iMid := strings.Index(html, `href="/blog/mid/"`)
	iOld := strings.Index(html, `href="/blog/old/"`)
	assert.True(t, iNew >= 0 && iNew < iMid && iMid < iOld, "expected new < mid < old, got %d %d %d", iNew, iMid, iOld)
	assert.Contains(t, html, `<img src="/img/new.png" alt="NEW" class="card-img-top"/>`)
	assert.Contains(t, html, `href="/tags/go/"`)
	assert.Contains(t, html, "new summary")

	// caller's slice order is untouched
	assert.Equal(t, "old", s.Articles[0].Slug)
}

func TestResume(t *testing.T) {
	s := &site.Site{Resume: []content.ResumeEntry{
		{Title: "Lead", Company: "Acme", Location: "Calgary", Date: "2020", Application: "Swift"},
		{Title: "Dev", Company: "Beta", Location: "Remote", Date: "2018", Application: "Dart"},
	}}
	nodes, err := Resume().Body(testContext(s))
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	html := serialize(t, nodes)
	assert.Contains(t, html, "My Resume")
	assert.Contains(t, html, "Acme, Calgary, <em>2020</em>")
	assert.Less(t, strings.Index(html, "Lead"), strings.Index(html, "Dev"))

	s.Resume = append(s.Resume, content.ResumeEntry{Company: "NoTitle"})
	_, err = Resume().Body(testContext(s))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ferrors.ErrRender))
}

func TestTag(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tag := content.Tag{Name: "swift", Slug: "swift", Articles: []content.Article{article("b", d), article("a", d)}}

	nodes, err := Tag(testContext(&site.Site{}), tag)
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, render.Spacer{Height: 30}, nodes[0])
	html := serialize(t, nodes)
	assert.Contains(t, html, "<h1>swift</h1>")
	assert.Contains(t, html, `<li><a href="/blog/b/" style="color: #2ccabd">B</a></li>`)
	assert.Equal(t, "Swift", TagTitle(tag, "en"))
	assert.Equal(t, "Swift", TagTitle(tag, "not a language"))
}

func TestHome(t *testing.T) {
	page := Home(config.HomeConfig{Heading: "I'm Lyle Resnick"})
	assert.Equal(t, "/", page.Path())
	nodes, err := page.Body(testContext(&site.Site{}))
	require.NoError(t, err)
	html := serialize(t, nodes)
	assert.Contains(t, html, "I&#39;m Lyle Resnick")
	assert.Contains(t, html, "<em>Clean Mobile Architecture</em>")
	assert.Contains(t, html, "I have written a lot of software.")
	assert.Contains(t, html, "<li>Social Networking</li>")
	assert.Contains(t, html, "<li>Commercial Foreign Exchange</li>")
}

func TestArticleLayouts(t *testing.T) {
	layouts := ArticleLayouts()
	assert.Contains(t, layouts, PostLayout)
	assert.Len(t, layouts, 1)
}
