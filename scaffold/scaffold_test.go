package scaffold

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eringen/blogbuild"
)

func testData() Data {
	return Data{SiteName: "My Blog", Author: "Jane Doe", Date: "2025-08-31"}
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-blog")

	created, err := Generate(dir, testData())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{
		"blog/index-template.html",
		"blog/posts/hello-world.md",
		"blog/template.html",
		"blogbuild.yaml",
	}
	if len(created) != len(want) {
		t.Fatalf("created %d files, want %d: %v", len(created), len(want), created)
	}
	for i, rel := range want {
		if created[i] != filepath.Join(dir, filepath.FromSlash(rel)) {
			t.Errorf("created[%d] = %q, want %q", i, created[i], rel)
		}
	}

	cfg, err := os.ReadFile(filepath.Join(dir, "blogbuild.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cfg), `name: My Blog`) {
		t.Errorf("config missing site name:\n%s", cfg)
	}
	if !strings.Contains(string(cfg), `default_author: Jane Doe`) {
		t.Errorf("config missing author:\n%s", cfg)
	}

	post, err := os.ReadFile(filepath.Join(dir, "blog", "posts", "hello-world.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(post), "date: 2025-08-31") {
		t.Errorf("sample post missing date:\n%s", post)
	}

	tmpl, err := os.ReadFile(filepath.Join(dir, "blog", "template.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, token := range []string{"{{title}}", "{{description}}", "{{author}}", "{{date}}", "{{tags}}", "{{content}}"} {
		if !strings.Contains(string(tmpl), token) {
			t.Errorf("page template missing %s", token)
		}
	}
}

func TestGenerateExistingDir(t *testing.T) {
	dir := t.TempDir()
	if _, err := Generate(dir, testData()); err == nil {
		t.Fatal("expected error for existing directory")
	}
}

func TestGeneratedSiteBuilds(t *testing.T) {
	tests := []struct {
		name string
		data Data
	}{
		{"plain", testData()},
		{"yaml syntax in values", Data{SiteName: "Notes: #1", Author: `Jane "JD": Doe`, Date: "2025-08-31"}},
		{"leading quote", Data{SiteName: "'quoted", Author: "- dash", Date: "2025-08-31"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGeneratedSiteBuilds(t, tt.data)
		})
	}
}

func checkGeneratedSiteBuilds(t *testing.T, data Data) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "site")
	if _, err := Generate(dir, data); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	{
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}

	cfg, err := blogbuild.LoadConfig(blogbuild.DefaultConfigFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	b := blogbuild.New(cfg,
		blogbuild.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		blogbuild.WithClock(func() time.Time { return time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC) }),
	)
	res, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(res.Documents) != 1 {
		t.Fatalf("built %d posts, want 1", len(res.Documents))
	}
	if cfg.DefaultAuthor != data.Author {
		t.Errorf("config author = %q, want %q", cfg.DefaultAuthor, data.Author)
	}
	if cfg.Site.Name != data.SiteName {
		t.Errorf("config site name = %q, want %q", cfg.Site.Name, data.SiteName)
	}
	doc := res.Documents[0]
	if doc.Author != data.Author {
		t.Errorf("post author = %q, want %q", doc.Author, data.Author)
	}
	if want := "The first post on " + data.SiteName + "."; doc.Description != want {
		t.Errorf("post description = %q, want %q", doc.Description, want)
	}

	page, err := os.ReadFile(filepath.Join("blog", "hello-world.html"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(page), "{{content}}") {
		t.Error("page still contains {{content}} placeholder")
	}
	if !strings.Contains(string(page), data.Author) {
		t.Error("page missing author")
	}

	index, err := os.ReadFile(filepath.Join("blog", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `href="hello-world.html"`) {
		t.Error("index missing link to sample post")
	}
}
