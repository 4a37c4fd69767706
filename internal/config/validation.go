package config

import (
	"net/url"
	"strings"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
)

// Validate checks the configuration for values no build could succeed with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Site.Author) == "" {
		return ferrors.ConfigError("site.author is required").Build()
	}
	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ferrors.ConfigError("site.base_url must be an absolute URL: %q", c.Site.BaseURL).Build()
		}
	}
	if c.Build.WordsPerMinute <= 0 {
		return ferrors.ConfigError("build.words_per_minute must be positive, got %d", c.Build.WordsPerMinute).Build()
	}
	if c.Build.Concurrency < 1 {
		return ferrors.ConfigError("build.concurrency must be at least 1, got %d", c.Build.Concurrency).Build()
	}
	if c.Build.DescriptionLength < 0 {
		return ferrors.ConfigError("build.description_length must not be negative").Build()
	}
	if strings.TrimSpace(c.Output.Directory) == "" {
		return ferrors.ConfigError("output.directory is required").Build()
	}
	for i, item := range c.Navigation {
		if strings.TrimSpace(item.Label) == "" || strings.TrimSpace(item.Page) == "" {
			return ferrors.ConfigError("navigation[%d] needs both label and page", i).Build()
		}
	}
	return nil
}
