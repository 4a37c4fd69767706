package config

import (
	"os"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
)

const exampleConfig = `# folio site configuration
site:
  name: "Hello World"
  title_suffix: " – ${FOLIO_AUTHOR}"
  base_url: "https://example.com"
  author: "Lyle Resnick"
  email: "someone@example.com"
  repository: "https://github.com/example"
  brand_color: "#2ccabd"

content:
  articles: Content
  resources: Resources
  assets: Assets
  resume_data: cv.json

output:
  directory: Build

build:
  words_per_minute: 200
  concurrency: 4
  article_layout: post
  description_length: 160
  highlight_style: github
  revision_meta: false
  sitemap: true
  feed: true

navigation:
  - label: Blog
    page: blog
  - label: Resume
    page: resume

home:
  heading: "I'm Lyle Resnick"
  bio: |
    I build mobile apps and write about it.

logging:
  level: info
  format: text
`

// Init writes an example configuration file to path. An existing file is
// only replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists: %s (use --force to overwrite)", path).Build()
	}
	if err := os.WriteFile(path, []byte(exampleConfig), 0o600); err != nil {
		return ferrors.FileSystemError("failed to write config file").WithCause(err).WithContext("path", path).Build()
	}
	return nil
}
