// Package blogbuild turns a directory of Markdown posts with front matter into
// static HTML pages and an index page, using two plain HTML templates with
// literal {{placeholder}} tokens.
//
// A build is a single sequential pass: load every post, write its page, then
// write the index. Optional outputs (RSS feed, sitemap, JSON data, SQLite
// catalog) are produced from the same documents when configured.
package blogbuild

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/eringen/blogbuild/markdown"
)

// Builder runs builds for one site configuration.
type Builder struct {
	Config SiteConfig

	md  *markdown.Renderer
	log *slog.Logger
	now func() time.Time
}

// Result describes a completed build.
type Result struct {
	Documents []Document // newest first
	Written   []string   // every file written, in write order
}

// New creates a Builder with the given configuration.
func New(cfg SiteConfig, opts ...Option) *Builder {
	cfg.setDefaults()

	b := &Builder{
		Config: cfg,
		md:     markdown.New(),
		log:    slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build performs a full rebuild. It stops at the first error; files written
// before the failure are left in place.
func (b *Builder) Build() (Result, error) {
	cfg := b.Config
	var res Result

	if err := os.MkdirAll(cfg.PostsDir, 0o755); err != nil {
		return res, fmt.Errorf("blogbuild: create posts dir: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("blogbuild: create output dir: %w", err)
	}

	tmpl, err := readTemplate(cfg.TemplateFile)
	if err != nil {
		return res, err
	}

	sources, err := listSources(cfg.PostsDir)
	if err != nil {
		return res, err
	}

	docs := make([]Document, 0, len(sources))
	for _, path := range sources {
		b.log.Info("Processing post", "source", filepath.Base(path))
		doc, err := b.LoadDocument(path)
		if err != nil {
			return res, err
		}
		docs = append(docs, doc)

		out := cfg.outputPath(doc.Filename)
		if err := writeOutput(out, []byte(RenderPage(tmpl, doc))); err != nil {
			return res, err
		}
		res.Written = append(res.Written, out)
		b.log.Info("Generated page", "output", doc.Filename)
	}
	res.Documents = SortByDate(docs)

	b.log.Info("Generating blog index")
	indexTmpl, err := readTemplate(cfg.IndexTemplateFile)
	if err != nil {
		return res, err
	}
	indexPath := cfg.outputPath(cfg.IndexFile)
	if err := writeOutput(indexPath, []byte(RenderIndexPage(indexTmpl, docs))); err != nil {
		return res, err
	}
	res.Written = append(res.Written, indexPath)
	b.log.Info("Generated index", "output", cfg.IndexFile)

	if err := b.writeExtras(docs, &res); err != nil {
		return res, err
	}

	b.log.Info("Build complete", "posts", len(docs))
	return res, nil
}

// writeExtras produces the optional outputs enabled in the config.
func (b *Builder) writeExtras(docs []Document, res *Result) error {
	cfg := b.Config

	type extra struct {
		name   string
		render func() ([]byte, error)
	}
	var extras []extra
	if cfg.Site.URL != "" {
		extras = append(extras,
			extra{cfg.FeedFile, func() ([]byte, error) { return RenderFeed(cfg.Site, docs) }},
			extra{cfg.SitemapFile, func() ([]byte, error) { return RenderSitemap(cfg.Site, docs) }},
		)
	}
	if cfg.DataFile != "" {
		extras = append(extras, extra{cfg.DataFile, func() ([]byte, error) { return RenderData(docs) }})
	}

	for _, e := range extras {
		data, err := e.render()
		if err != nil {
			return fmt.Errorf("blogbuild: render %s: %w", e.name, err)
		}
		out := cfg.outputPath(e.name)
		if err := writeOutput(out, data); err != nil {
			return err
		}
		res.Written = append(res.Written, out)
		b.log.Info("Generated file", "output", e.name)
	}

	if cfg.CatalogPath != "" {
		if err := exportCatalog(cfg.CatalogPath, docs); err != nil {
			return fmt.Errorf("blogbuild: export catalog: %w", err)
		}
		b.log.Info("Exported catalog", "path", cfg.CatalogPath, "posts", len(docs))
	}
	return nil
}

// ErrNoCatalog is returned by OpenCatalog when no catalog path is configured.
var ErrNoCatalog = errors.New("blogbuild: no catalog configured")

// OpenCatalog opens the catalog written by the last build. It does not create
// one; run a build first.
func (b *Builder) OpenCatalog() (*Store, error) {
	path := b.Config.CatalogPath
	if path == "" {
		return nil, ErrNoCatalog
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("blogbuild: open catalog: %w", err)
	}
	return NewStore(path)
}

func exportCatalog(path string, docs []Document) error {
	store, err := NewStore(path)
	if err != nil {
		return err
	}
	if err := store.ReplaceAll(docs); err != nil {
		store.Close()
		return err
	}
	return store.Close()
}

func readTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("blogbuild: read template: %w", err)
	}
	return string(data), nil
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("blogbuild: write output: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("blogbuild: write output: %w", err)
	}
	return nil
}
