package publish

import (
	"github.com/lyleresnick/folio/internal/assemble"
	"github.com/lyleresnick/folio/internal/config"
	"github.com/lyleresnick/folio/internal/content"
	"github.com/lyleresnick/folio/internal/markdown"
	"github.com/lyleresnick/folio/internal/site"
)

// BuildState carries the values stages hand to each other.
type BuildState struct {
	Config   *config.Config
	Markdown *markdown.Renderer
	Revision string
	Articles []content.Article
	Resume   []content.ResumeEntry
	Site     *site.Site
	Result   *assemble.Result
	Report   *Report
}
