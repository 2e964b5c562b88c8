// Command blogbuild builds a static blog from Markdown posts.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/eringen/blogbuild"
)

// version is set at build time via ldflags.
var version = "dev"

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"blogbuild.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"1" help:"Build every post and the index page"`
	New   NewCmd   `cmd:"" help:"Create a new blog project"`
	Serve ServeCmd `cmd:"" help:"Build, then preview the site over HTTP"`
	Posts PostsCmd `cmd:"" help:"List posts from the catalog written by the last build"`
	Tags  TagsCmd  `cmd:"" help:"List tags from the catalog"`
	Post  PostCmd  `cmd:"" help:"Show one post from the catalog"`
}

// AfterApply runs after flag parsing; set up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blogbuild"),
		kong.Description("Convert Markdown posts with front matter into static HTML pages and an index."),
		kong.UsageOnError(),
		kong.Vars{
			"version":        version,
			"default_author": blogbuild.DefaultAuthor,
		},
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
