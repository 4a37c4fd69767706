package publish

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
)

const siteYAML = `site:
  name: Hello World
  title_suffix: " – Lyle Resnick"
  base_url: https://lyleresnick.com
  author: Lyle Resnick
  email: lyle@example.com
build:
  concurrency: 3
`

type fixture struct {
	root string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{root: t.TempDir()}
	f.write(t, "site.yaml", siteYAML)
	f.write(t, "Resources/cv.json", `[{"title":"Lead","company":"Acme","location":"Calgary","date":"2020","application":"Swift"}]`)
	f.write(t, "Assets/js/main.js", "// client script\n")
	f.write(t, "Content/first.md", "---\ntitle: First Post\ndate: 2024-01-01\ntags: swift, ios\n---\n"+strings.Repeat("word ", 400)+"\n")
	f.write(t, "Content/second.md", "---\ntitle: Second Post\ndate: 2024-02-01\ntags: [swift]\n---\nHello.\n")
	return f
}

func (f *fixture) write(t *testing.T, rel, body string) {
	t.Helper()
	path := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func (f *fixture) driver() *Driver {
	return &Driver{ConfigPath: filepath.Join(f.root, "site.yaml")}
}

func (f *fixture) out() string { return filepath.Join(f.root, "Build") }

func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	require.NoError(t, filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		tree[filepath.ToSlash(rel)] = string(b)
		return nil
	}))
	return tree
}

func TestRunBuildsSite(t *testing.T) {
	f := newFixture(t)
	report, err := f.driver().Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, report.Outcome)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.Articles)
	assert.Equal(t, 2, report.Tags)
	assert.Equal(t, 3, report.StaticPages)
	assert.Equal(t, report.StaticPages+report.Articles+report.Tags, report.Documents)
	for _, st := range []StageName{StageLoadConfig, StageDiscoverContent, StageBuildIndices, StageValidateSlugs, StageRender, StageFlush} {
		assert.Contains(t, report.StageDurations, st)
	}

	tree := snapshotTree(t, f.out())
	htmlCount := 0
	for p := range tree {
		if strings.HasSuffix(p, ".html") {
			htmlCount++
		}
	}
	assert.Equal(t, report.Documents, htmlCount)
	assert.Contains(t, tree, "js/main.js")
	assert.Contains(t, tree, "sitemap.xml")
	assert.Contains(t, tree, "feed.rss")
	assert.Contains(t, tree, "manifest.json")

	post := tree["blog/first-post/index.html"]
	assert.Contains(t, post, "<title>First Post – Lyle Resnick</title>")
	assert.Contains(t, post, "400 words; 2 minutes to read.")
	assert.Contains(t, post, "Jan 1, 2024")

	blog := tree["blog/index.html"]
	assert.Less(t, strings.Index(blog, "/blog/second-post/"), strings.Index(blog, "/blog/first-post/"))

	swift := tree["tags/swift/index.html"]
	assert.Contains(t, swift, "/blog/first-post/")
	assert.Contains(t, swift, "/blog/second-post/")
	assert.NotContains(t, tree["tags/ios/index.html"], "/blog/second-post/")

	assert.Contains(t, tree["resume/index.html"], "Acme, Calgary, <em>2020</em>")
}

func TestRunHighlightStyleChangesPageCSS(t *testing.T) {
	build := func(style string) string {
		f := newFixture(t)
		f.write(t, "site.yaml", siteYAML+"  highlight_style: "+style+"\n")
		f.write(t, "Content/code.md", "---\ntitle: Code\ndate: 2024-03-01\n---\n```go\nfunc main() {}\n```\n")
		_, err := f.driver().Run(context.Background())
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(f.out(), "blog", "code", "index.html"))
		require.NoError(t, err)
		return string(b)
	}
	github := build("github")
	monokai := build("monokai")

	assert.Contains(t, github, `class="chroma"`)
	assert.Contains(t, github, ".chroma")
	assert.NotEqual(t, github, monokai)
}

func TestRunIsIdempotent(t *testing.T) {
	f := newFixture(t)
	_, err := f.driver().Run(context.Background())
	require.NoError(t, err)
	first := snapshotTree(t, f.out())

	_, err = f.driver().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, snapshotTree(t, f.out()))
}

func TestRunSlugCollisionProducesNoOutput(t *testing.T) {
	f := newFixture(t)
	f.write(t, "Content/dup-a.md", "---\ntitle: My Post\ndate: 2024-03-01\n---\nA\n")
	f.write(t, "Content/dup-b.md", "---\ntitle: My Post\ndate: 2024-03-01\n---\nB\n")

	report, err := f.driver().Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ferrors.ErrSlugCollision))
	assert.Equal(t, OutcomeFailed, report.Outcome)
	assert.Equal(t, StageErrorFatal, report.StageErrorKinds[StageValidateSlugs])
	assert.NoDirExists(t, f.out())
	assert.NoDirExists(t, f.out()+"_stage")
}

func TestRunResumeDecodeFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.write(t, "Resources/cv.json", `[{"title": 42}]`)

	_, err := f.driver().Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ferrors.ErrResourceDecode))
	assert.NoDirExists(t, f.out())
}

func TestRunFailureKeepsPreviousOutput(t *testing.T) {
	f := newFixture(t)
	_, err := f.driver().Run(context.Background())
	require.NoError(t, err)
	before := snapshotTree(t, f.out())

	f.write(t, "Content/broken.md", "---\ndate: 2024-01-01\n---\nno title\n")
	_, err = f.driver().Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ferrors.ErrContentLoad))
	assert.Equal(t, before, snapshotTree(t, f.out()))
}

func TestRunCanceled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := f.driver().Run(ctx)
	require.Error(t, err)
	assert.Equal(t, OutcomeCanceled, report.Outcome)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryCanceled))
	assert.NoDirExists(t, f.out())
}

func TestRunOutputOverride(t *testing.T) {
	f := newFixture(t)
	d := f.driver()
	d.OutputDir = filepath.Join(t.TempDir(), "public")

	report, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, d.OutputDir, report.OutputDir)
	assert.FileExists(t, filepath.Join(d.OutputDir, "index.html"))
}
