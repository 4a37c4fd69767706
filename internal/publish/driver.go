// Package publish drives a full site build through its ordered stages and
// reports the outcome.
package publish

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lyleresnick/folio/internal/assemble"
	"github.com/lyleresnick/folio/internal/config"
	"github.com/lyleresnick/folio/internal/content"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/logfields"
	"github.com/lyleresnick/folio/internal/markdown"
	"github.com/lyleresnick/folio/internal/metrics"
	"github.com/lyleresnick/folio/internal/output"
	"github.com/lyleresnick/folio/internal/pages"
	"github.com/lyleresnick/folio/internal/revision"
	"github.com/lyleresnick/folio/internal/site"
)

// Driver runs publish stages. The zero value is not usable; set ConfigPath.
type Driver struct {
	// ConfigPath is the site.yaml to load.
	ConfigPath string
	// OutputDir overrides output.directory when non-empty.
	OutputDir string
	Recorder  metrics.Recorder
}

// Run executes load_config, discover_content, build_indices, validate_slugs,
// render and flush in order. Any error aborts the run; the report is
// returned either way.
func (d *Driver) Run(ctx context.Context) (*Report, error) {
	rec := d.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	runID := uuid.NewString()
	report := newReport(runID)
	bs := &BuildState{Report: report}
	log := slog.With(logfields.RunID(runID))

	stages := newPipeline().
		add(StageLoadConfig, d.stageLoadConfig).
		add(StageDiscoverContent, stageDiscoverContent).
		add(StageBuildIndices, stageBuildIndices).
		add(StageValidateSlugs, stageValidateSlugs).
		add(StageRender, d.stageRender).
		add(StageFlush, stageFlush).
		build()

	log.Info("Publish started", slog.String("config", d.ConfigPath))
	err := runStages(ctx, bs, stages, rec)
	report.finish()
	rec.ObserveBuildDuration(report.Duration())

	switch report.Outcome {
	case OutcomeSuccess:
		rec.IncBuildOutcome(metrics.BuildOutcomeSuccess)
		rec.SetDocuments(report.Documents)
		log.Info("Publish complete", slog.String("summary", report.Summary()), logfields.Output(report.OutputDir))
	case OutcomeCanceled:
		rec.IncBuildOutcome(metrics.BuildOutcomeCanceled)
		log.Warn("Publish canceled", logfields.Error(err))
	default:
		rec.IncBuildOutcome(metrics.BuildOutcomeFailed)
		log.Debug("Publish failed", slog.String("summary", report.Summary()), logfields.Error(err))
	}
	return report, err
}

func (d *Driver) stageLoadConfig(_ context.Context, bs *BuildState) error {
	path := d.ConfigPath
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if d.OutputDir != "" {
		cfg.Output.Directory = d.OutputDir
	}
	bs.Config = cfg
	bs.Markdown = markdown.New(markdown.Options{HighlightStyle: cfg.Build.HighlightStyle})
	bs.Report.OutputDir = cfg.OutputDir()

	if cfg.Build.RevisionMeta {
		rev, err := revision.Head(cfg.Root)
		if err != nil {
			slog.Warn("Failed to read source revision", logfields.Path(cfg.Root), logfields.Error(err))
		}
		bs.Revision = rev
	}
	return nil
}

func stageDiscoverContent(ctx context.Context, bs *BuildState) error {
	cfg := bs.Config
	articles, err := content.Load(ctx, content.LoadOptions{
		Dir:               cfg.ArticlesDir(),
		WordsPerMinute:    cfg.Build.WordsPerMinute,
		DescriptionLength: cfg.Build.DescriptionLength,
		Markdown:          bs.Markdown,
	})
	if err != nil {
		return err
	}
	resume, err := content.LoadResume(cfg.ResourcesDir(), cfg.Content.ResumeData)
	if err != nil {
		return err
	}
	bs.Articles = articles
	bs.Resume = resume
	bs.Report.Articles = len(articles)
	return nil
}

func stageBuildIndices(_ context.Context, bs *BuildState) error {
	cfg := bs.Config
	static := []site.Page{pages.Home(cfg.Home), pages.Blog(), pages.Resume()}
	nav, err := site.ResolveNav(cfg.Navigation, static)
	if err != nil {
		return err
	}
	theme := site.ThemeFromConfig(cfg.Site, nav)
	theme.Revision = bs.Revision
	codeCSS, err := bs.Markdown.CSS()
	if err != nil {
		return ferrors.RenderError("highlight style %q", cfg.Build.HighlightStyle).WithCause(err).Build()
	}
	theme.CodeCSS = codeCSS

	tags := content.BuildTagIndex(bs.Articles)
	bs.Site = &site.Site{
		Name:                 cfg.Site.Name,
		BaseURL:              cfg.Site.BaseURL,
		Author:               cfg.Site.Author,
		Theme:                theme,
		StaticPages:          static,
		ArticleLayouts:       pages.ArticleLayouts(),
		DefaultArticleLayout: cfg.Build.ArticleLayout,
		TagPage:              pages.Tag,
		Articles:             bs.Articles,
		Tags:                 tags,
		Resume:               bs.Resume,
	}
	bs.Report.Tags = len(tags)
	bs.Report.StaticPages = len(static)
	return nil
}

func stageValidateSlugs(_ context.Context, bs *BuildState) error {
	return assemble.Validate(bs.Site)
}

func (d *Driver) stageRender(ctx context.Context, bs *BuildState) error {
	res, err := assemble.Assemble(ctx, site.Context{Site: bs.Site, Markdown: bs.Markdown}, assemble.Options{
		Concurrency: bs.Config.Build.Concurrency,
		Sitemap:     bs.Config.Build.Sitemap,
		Feed:        bs.Config.Build.Feed,
		Recorder:    d.Recorder,
	})
	if err != nil {
		return err
	}
	bs.Result = res
	bs.Report.Documents = len(res.Documents)
	return nil
}

func stageFlush(ctx context.Context, bs *BuildState) error {
	n, err := output.Flush(ctx, bs.Result, output.FlushOptions{
		OutputDir:   bs.Config.OutputDir(),
		AssetsDir:   bs.Config.AssetsDir(),
		Concurrency: bs.Config.Build.Concurrency,
	})
	if err != nil {
		return err
	}
	bs.Report.FilesWritten = n
	slog.Debug("Flushed output", logfields.Count(n), logfields.Output(bs.Report.OutputDir))
	return nil
}
