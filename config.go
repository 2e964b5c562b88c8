package blogbuild

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config path used when none is given.
const DefaultConfigFile = "blogbuild.yaml"

// DefaultAuthor is used for posts without an author key.
const DefaultAuthor = "Daniel B. Christensen"

// SiteConfig holds all configuration for a blogbuild site. The zero value,
// after defaults are applied, is the fixed blog/ layout.
type SiteConfig struct {
	PostsDir          string `yaml:"posts_dir"`      // Markdown sources (default "blog/posts")
	TemplateFile      string `yaml:"template"`       // Page template (default "blog/template.html")
	IndexTemplateFile string `yaml:"index_template"` // Index template (default "blog/index-template.html")
	OutputDir         string `yaml:"output_dir"`     // Where pages are written (default "blog")
	IndexFile         string `yaml:"index_file"`     // Index page name (default "index.html")
	DefaultAuthor     string `yaml:"default_author"`

	Site SiteInfo `yaml:"site"`

	// Optional outputs, relative to OutputDir unless absolute. Empty disables.
	FeedFile    string `yaml:"feed_file"`    // only written when Site.URL is set (default "feed.xml")
	SitemapFile string `yaml:"sitemap_file"` // only written when Site.URL is set (default "sitemap.xml")
	DataFile    string `yaml:"data_file"`

	CatalogPath string `yaml:"catalog"` // SQLite export, relative to the working directory

	Addr string `yaml:"addr"` // Preview listen address (default ":3000")
}

// SiteInfo describes the published site. URL gates feed and sitemap output.
type SiteInfo struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

func (c *SiteConfig) setDefaults() {
	if c.PostsDir == "" {
		c.PostsDir = filepath.Join("blog", "posts")
	}
	if c.TemplateFile == "" {
		c.TemplateFile = filepath.Join("blog", "template.html")
	}
	if c.IndexTemplateFile == "" {
		c.IndexTemplateFile = filepath.Join("blog", "index-template.html")
	}
	if c.OutputDir == "" {
		c.OutputDir = "blog"
	}
	if c.IndexFile == "" {
		c.IndexFile = "index.html"
	}
	if c.DefaultAuthor == "" {
		c.DefaultAuthor = DefaultAuthor
	}
	if c.Site.Name == "" {
		c.Site.Name = "Blog"
	}
	if c.FeedFile == "" {
		c.FeedFile = "feed.xml"
	}
	if c.SitemapFile == "" {
		c.SitemapFile = "sitemap.xml"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
}

// outputPath resolves name against the output directory.
func (c *SiteConfig) outputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

// LoadConfig reads a YAML config file and applies defaults. When path is the
// default config file and it does not exist, the defaults alone are returned.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultConfigFile:
		cfg.setDefaults()
		return cfg, nil
	case err != nil:
		return SiteConfig{}, fmt.Errorf("blogbuild: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("blogbuild: parse config %s: %w", path, err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional Builder behavior.
type Option func(*Builder)

// WithLogger sets the logger used for progress output (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.log = l
	}
}

// WithClock overrides the time source used for the default post date.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}
