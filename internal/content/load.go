package content

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/frontmatter"
	"github.com/lyleresnick/folio/internal/logfields"
	"github.com/lyleresnick/folio/internal/markdown"
	"github.com/lyleresnick/folio/internal/slug"
	"github.com/lyleresnick/folio/internal/util/sets"
)

// DateLayouts lists the accepted front matter date formats, tried in order.
var DateLayouts = []string{"2006-01-02", "2006-01-02 15:04", time.RFC3339}

// LoadOptions controls article discovery.
type LoadOptions struct {
	Dir               string
	WordsPerMinute    int
	DescriptionLength int
	Markdown          *markdown.Renderer
}

// Load discovers every markdown article under opts.Dir and returns the
// published ones sorted newest first. Any invalid article fails the whole load.
func Load(ctx context.Context, opts LoadOptions) ([]Article, error) {
	if opts.Markdown == nil {
		opts.Markdown = markdown.New(markdown.Options{})
	}
	info, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, ferrors.ContentLoadError("articles directory %s", opts.Dir).WithCause(err).Build()
	}
	if !info.IsDir() {
		return nil, ferrors.ContentLoadError("articles path %s is not a directory", opts.Dir).Build()
	}

	var paths []string
	err = filepath.WalkDir(opts.Dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != opts.Dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if isMarkdown(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, ferrors.ContentLoadError("walk %s", opts.Dir).WithCause(err).Build()
	}

	articles := make([]Article, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, ok, err := loadArticle(path, opts)
		if err != nil {
			return nil, err
		}
		if !ok {
			slog.Debug("Skipping unpublished article", logfields.Path(path))
			continue
		}
		articles = append(articles, a)
	}

	SortByDate(articles)
	slog.Debug("Loaded articles", logfields.Count(len(articles)), logfields.Path(opts.Dir))
	return articles, nil
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func loadArticle(path string, opts LoadOptions) (Article, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Article{}, false, ferrors.ContentLoadError("read %s", path).WithCause(err).Build()
	}

	rawFM, body, _, err := frontmatter.Split(data)
	if err != nil {
		return Article{}, false, ferrors.ContentLoadError("front matter in %s", path).WithCause(err).Build()
	}
	meta, err := frontmatter.Decode(rawFM)
	if err != nil {
		return Article{}, false, ferrors.ContentLoadError("decode front matter in %s", path).WithCause(err).Build()
	}
	if !meta.IsPublished() {
		return Article{}, false, nil
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		return Article{}, false, ferrors.ContentLoadError("%s: title is required", path).Build()
	}
	articleSlug := slug.Make(title)
	if articleSlug == "" {
		return Article{}, false, ferrors.ContentLoadError("%s: title %q has no letters or digits to form a slug", path, title).Build()
	}
	tags := sets.Dedupe([]string(meta.Tags))
	for _, tag := range tags {
		if slug.Make(tag) == "" {
			return Article{}, false, ferrors.ContentLoadError("%s: tag %q has no letters or digits to form a slug", path, tag).Build()
		}
	}
	date, err := ParseDate(meta.Date)
	if err != nil {
		return Article{}, false, ferrors.ContentLoadError("%s: date %q", path, meta.Date).WithCause(err).Build()
	}
	fp, err := Fingerprint(rawFM, body)
	if err != nil {
		return Article{}, false, ferrors.ContentLoadError("fingerprint %s", path).WithCause(err).Build()
	}

	description := strings.TrimSpace(meta.Description)
	if description == "" {
		description = opts.Markdown.FirstParagraph(body, opts.DescriptionLength)
	}

	words := WordCount(string(body))
	return Article{
		Slug:           articleSlug,
		Title:          title,
		Date:           date,
		Body:           string(body),
		Tags:           tags,
		WordCount:      words,
		ReadingMinutes: ReadingMinutes(words, opts.WordsPerMinute),
		Image:          strings.TrimSpace(meta.Image),
		Description:    description,
		Layout:         strings.TrimSpace(meta.Layout),
		SourcePath:     path,
		Fingerprint:    fp,
	}, true, nil
}

// ParseDate parses a front matter date in any of DateLayouts.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var firstErr error
	for _, layout := range DateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
