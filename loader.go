package blogbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTitle is used for posts without a title key.
const DefaultTitle = "Untitled Post"

// OutputFilename derives the page name for a source file: its stem plus ".html".
func OutputFilename(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// LoadDocument reads a source file, parses its metadata block and renders
// the body.
func (b *Builder) LoadDocument(path string) (Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("blogbuild: read post: %w", err)
	}
	doc, err := b.ParseDocument(filepath.Base(path), src)
	if err != nil {
		return Document{}, fmt.Errorf("blogbuild: %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument builds a Document from the raw contents of a source file.
func (b *Builder) ParseDocument(name string, src []byte) (Document, error) {
	meta, body, err := parseFrontMatter(src)
	if err != nil {
		return Document{}, err
	}
	content, err := b.md.Convert(body)
	if err != nil {
		return Document{}, err
	}
	description := meta.text("description", "")
	return Document{
		Title:       meta.text("title", DefaultTitle),
		Date:        meta.date(b.now()),
		Description: description,
		Excerpt:     meta.text("excerpt", description),
		Tags:        meta.tags(),
		Author:      meta.text("author", b.Config.DefaultAuthor),
		Content:     content,
		Filename:    OutputFilename(name),
		Source:      name,
	}, nil
}

// listSources returns the *.md files directly under dir, sorted by name.
func listSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("blogbuild: list posts: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
