package blogbuild

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingDefaultFile(t *testing.T) {
	{
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}

	cfg, err := LoadConfig(DefaultConfigFile)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("blog", "posts"), cfg.PostsDir)
	assert.Equal(t, filepath.Join("blog", "template.html"), cfg.TemplateFile)
	assert.Equal(t, filepath.Join("blog", "index-template.html"), cfg.IndexTemplateFile)
	assert.Equal(t, "blog", cfg.OutputDir)
	assert.Equal(t, "index.html", cfg.IndexFile)
	assert.Equal(t, DefaultAuthor, cfg.DefaultAuthor)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Empty(t, cfg.Site.URL)
	assert.Empty(t, cfg.DataFile)
	assert.Empty(t, cfg.CatalogPath)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "site.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
posts_dir: content
output_dir: public
default_author: Jane Doe
site:
  name: Jane's Notes
  url: https://jane.example
data_file: posts.json
catalog: data/catalog.db
addr: 127.0.0.1:8080
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "content", cfg.PostsDir)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "Jane Doe", cfg.DefaultAuthor)
	assert.Equal(t, "Jane's Notes", cfg.Site.Name)
	assert.Equal(t, "https://jane.example", cfg.Site.URL)
	assert.Equal(t, "posts.json", cfg.DataFile)
	assert.Equal(t, "data/catalog.db", cfg.CatalogPath)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)

	// unset keys still get defaults
	assert.Equal(t, filepath.Join("blog", "template.html"), cfg.TemplateFile)
	assert.Equal(t, "feed.xml", cfg.FeedFile)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("posts_dir: [unclosed\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	cfg := SiteConfig{OutputDir: "public"}
	assert.Equal(t, filepath.Join("public", "feed.xml"), cfg.outputPath("feed.xml"))

	abs := filepath.Join(t.TempDir(), "feed.xml")
	assert.Equal(t, abs, cfg.outputPath(abs))
}
