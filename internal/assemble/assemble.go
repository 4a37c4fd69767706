// Package assemble renders every page of a site into HTML documents.
package assemble

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/lyleresnick/folio/internal/content"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/layout"
	"github.com/lyleresnick/folio/internal/logfields"
	"github.com/lyleresnick/folio/internal/metrics"
	"github.com/lyleresnick/folio/internal/pages"
	"github.com/lyleresnick/folio/internal/paths"
	"github.com/lyleresnick/folio/internal/render"
	"github.com/lyleresnick/folio/internal/site"
)

// Kind classifies a rendered document.
type Kind string

const (
	KindPage    Kind = "page"
	KindArticle Kind = "article"
	KindTag     Kind = "tag"
)

// Document is one rendered HTML page.
type Document struct {
	// Path is relative to the output root, forward-slash separated.
	Path  string
	URL   string
	Kind  Kind
	Owner string
	Title string
	Bytes []byte
}

// File is an auxiliary output file that is not a document.
type File struct {
	Path  string
	Bytes []byte
}

// Result holds everything a render produced, sorted by path.
type Result struct {
	Documents []Document
	Files     []File
}

// Options tunes Assemble.
type Options struct {
	Concurrency int
	Sitemap     bool
	Feed        bool
	Recorder    metrics.Recorder
}

type job struct {
	path        string
	url         string
	kind        Kind
	owner       string
	title       string
	description string
	body        func(site.Context) ([]render.Node, error)
}

// Validate checks that every page, article and tag of s maps to its own
// output path and that every article has a known layout.
func Validate(s *site.Site) error {
	_, err := plan(s)
	return err
}

// plan lists the documents a site renders to. Two entities that map to the
// same output path fail with a slug collision.
func plan(s *site.Site) ([]job, error) {
	jobs := make([]job, 0, s.DocumentCount())
	owners := make(map[string]string, s.DocumentCount())
	add := func(j job) error {
		if prev, ok := owners[j.path]; ok {
			return ferrors.SlugCollisionError("%s and %s both render to %s", prev, j.owner, j.path).
				WithContext("path", j.path).Build()
		}
		owners[j.path] = j.owner
		jobs = append(jobs, j)
		return nil
	}

	for _, p := range s.StaticPages {
		url := p.Path()
		if err := add(job{
			path: paths.OutputFile(url), url: url, kind: KindPage,
			owner: "page " + quote(p.Title), title: p.Title, description: p.Description, body: p.Body,
		}); err != nil {
			return nil, err
		}
	}
	for _, a := range s.Articles {
		if a.Slug == "" {
			return nil, ferrors.ContentLoadError("article %s has no slug", a.SourcePath).Build()
		}
		articleLayout, err := s.LayoutFor(a)
		if err != nil {
			return nil, err
		}
		url := paths.Article(a.Slug)
		if err := add(job{
			path: paths.OutputFile(url), url: url, kind: KindArticle,
			owner: "article " + quote(a.Title) + " (" + a.SourcePath + ")", title: a.Title, description: a.Description,
			body: func(ctx site.Context) ([]render.Node, error) { return articleLayout(ctx, a) },
		}); err != nil {
			return nil, err
		}
	}
	for _, t := range s.Tags {
		url := paths.Tag(t.Slug)
		tagPage := s.TagPage
		if tagPage == nil {
			tagPage = pages.Tag
		}
		if err := add(job{
			path: paths.OutputFile(url), url: url, kind: KindTag,
			owner: "tag " + quote(t.Name), title: pages.TagTitle(t, s.Theme.Language),
			body: func(ctx site.Context) ([]render.Node, error) { return tagPage(ctx, t) },
		}); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

func quote(s string) string { return `"` + s + `"` }

// Assemble renders every document of the site concurrently and builds the
// auxiliary files. The first failure cancels remaining work and is returned.
func Assemble(ctx context.Context, rc site.Context, opts Options) (*Result, error) {
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	jobs, err := plan(rc.Site)
	if err != nil {
		return nil, err
	}

	workers := opts.Concurrency
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	docs := make([]Document, len(jobs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, j := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			start := time.Now()
			doc, err := renderJob(rc, j)
			rec.ObserveRenderDuration(string(j.kind), time.Since(start))
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
				return
			}
			docs[i] = doc
			slog.Debug("Rendered document", logfields.Path(j.path), logfields.Page(j.owner))
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(docs, func(a, b int) bool { return docs[a].Path < docs[b].Path })
	files, err := auxiliary(rc.Site, docs, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Documents: docs, Files: files}, nil
}

func renderJob(rc site.Context, j job) (Document, error) {
	body, err := j.body(rc)
	if err != nil {
		if ferrors.IsClassified(err) {
			return Document{}, err
		}
		return Document{}, ferrors.RenderError("%s", j.owner).WithCause(err).Build()
	}
	doc := layout.Compose(layout.Page{Title: j.title, Path: j.url, Description: j.description}, body, rc.Site.Theme)
	out, err := render.Serialize(doc)
	if err != nil {
		return Document{}, err
	}
	return Document{Path: j.path, URL: j.url, Kind: j.kind, Owner: j.owner, Title: j.title, Bytes: out}, nil
}

func articleByURL(s *site.Site) map[string]content.Article {
	m := make(map[string]content.Article, len(s.Articles))
	for _, a := range s.Articles {
		m[paths.Article(a.Slug)] = a
	}
	return m
}
