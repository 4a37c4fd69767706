package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
)

// DefaultFile is the configuration file looked up when no path is given.
const DefaultFile = "site.yaml"

// Config represents the site configuration.
type Config struct {
	Site       SiteConfig    `yaml:"site"`
	Content    ContentConfig `yaml:"content"`
	Output     OutputConfig  `yaml:"output"`
	Build      BuildConfig   `yaml:"build"`
	Navigation []NavItem     `yaml:"navigation"`
	Home       HomeConfig    `yaml:"home"`
	Logging    LoggingConfig `yaml:"logging"`

	// Root is the directory relative paths resolve against (the config file's directory).
	Root string `yaml:"-"`
}

// SiteConfig holds identity and chrome settings shared by every page.
type SiteConfig struct {
	Name        string   `yaml:"name"`
	TitleSuffix string   `yaml:"title_suffix,omitempty"`
	BaseURL     string   `yaml:"base_url"`
	Author      string   `yaml:"author"`
	Email       string   `yaml:"email,omitempty"`
	Repository  string   `yaml:"repository,omitempty"`
	Logo        string   `yaml:"logo,omitempty"`
	BrandColor  string   `yaml:"brand_color,omitempty"`
	Language    string   `yaml:"language,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Stylesheets []string `yaml:"stylesheets,omitempty"`
	Scripts     []string `yaml:"scripts,omitempty"`
}

// ContentConfig locates the inputs of a run, relative to Root.
type ContentConfig struct {
	Articles   string `yaml:"articles"`
	Resources  string `yaml:"resources"`
	Assets     string `yaml:"assets"`
	ResumeData string `yaml:"resume_data"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// BuildConfig tunes rendering.
type BuildConfig struct {
	WordsPerMinute    int    `yaml:"words_per_minute"`
	Concurrency       int    `yaml:"concurrency"`
	ArticleLayout     string `yaml:"article_layout"`
	DescriptionLength int    `yaml:"description_length"`
	HighlightStyle    string `yaml:"highlight_style"`
	RevisionMeta      bool   `yaml:"revision_meta"`
	Sitemap           bool   `yaml:"sitemap"`
	Feed              bool   `yaml:"feed"`
}

// NavItem is one navigation bar entry; Page names a static page.
type NavItem struct {
	Label string `yaml:"label"`
	Page  string `yaml:"page"`
}

// HomeConfig holds the home page heading and its markdown biography.
type HomeConfig struct {
	Heading string `yaml:"heading"`
	Bio     string `yaml:"bio"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			Language:   "en",
			BrandColor: "#2ccabd",
		},
		Content: ContentConfig{
			Articles:   "Content",
			Resources:  "Resources",
			Assets:     "Assets",
			ResumeData: "cv.json",
		},
		Output: OutputConfig{Directory: "Build"},
		Build: BuildConfig{
			WordsPerMinute:    200,
			Concurrency:       runtime.NumCPU(),
			ArticleLayout:     "post",
			DescriptionLength: 160,
			HighlightStyle:    "github",
			Sitemap:           true,
			Feed:              true,
		},
		Logging: LoggingConfig{Level: string(LogLevelInfo), Format: string(LogFormatText)},
		Root:    ".",
	}
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	root, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, ferrors.ConfigError("resolve config directory").WithCause(err).Build()
	}
	loadEnvFiles(root)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.ConfigError("configuration file not found: %s", configPath).Build()
		}
		return nil, ferrors.ConfigError("failed to read config file").WithCause(err).Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Root = root
	return cfg, nil
}

// Parse decodes YAML config bytes (environment variables expanded), applies
// defaults and validates the result. Root stays ".".
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.ConfigError("failed to unmarshal config").WithCause(err).Build()
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Site.Logo == "" {
		c.Site.Logo = c.Site.Author
	}
	if c.Site.Name == "" {
		c.Site.Name = c.Site.Author
	}
	if c.Home.Heading == "" && c.Site.Author != "" {
		c.Home.Heading = fmt.Sprintf("I'm %s", c.Site.Author)
	}
	if len(c.Navigation) == 0 {
		c.Navigation = []NavItem{{Label: "Blog", Page: "blog"}, {Label: "Resume", Page: "resume"}}
	}
}

// Path resolves a configured path against Root.
func (c *Config) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root, rel)
}

// ArticlesDir returns the absolute articles directory.
func (c *Config) ArticlesDir() string { return c.Path(c.Content.Articles) }

// ResourcesDir returns the absolute structured-data directory.
func (c *Config) ResourcesDir() string { return c.Path(c.Content.Resources) }

// AssetsDir returns the absolute static asset directory.
func (c *Config) AssetsDir() string { return c.Path(c.Content.Assets) }

// OutputDir returns the absolute output directory.
func (c *Config) OutputDir() string { return c.Path(c.Output.Directory) }
