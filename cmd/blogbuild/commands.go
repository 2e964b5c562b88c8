package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/eringen/blogbuild"
	"github.com/eringen/blogbuild/scaffold"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct{}

func (b *BuildCmd) Run(root *CLI) error {
	builder, err := newBuilder(root)
	if err != nil {
		return err
	}
	_, err = builder.Build()
	return err
}

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr  string `help:"Listen address (overrides config addr)"`
	Watch bool   `short:"w" help:"Rebuild when posts or templates change"`
}

func (s *ServeCmd) Run(root *CLI) error {
	builder, err := newBuilder(root)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return blogbuild.NewServer(builder, s.Addr, s.Watch).Run(ctx)
}

// NewCmd implements the 'new' command.
type NewCmd struct {
	Dir    string `arg:"" help:"Directory to create"`
	Author string `help:"Default post author" default:"${default_author}"`
}

func (n *NewCmd) Run(_ *CLI) error {
	name := filepath.Base(filepath.Clean(n.Dir))
	created, err := scaffold.Generate(n.Dir, scaffold.Data{
		SiteName: toTitle(name),
		Author:   n.Author,
		Date:     time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return err
	}
	for _, path := range created {
		slog.Info("Created file", "path", path)
	}
	fmt.Println()
	fmt.Println("Done! Next steps:")
	fmt.Println()
	fmt.Printf("  cd %s\n", n.Dir)
	fmt.Println("  blogbuild serve --watch")
	return nil
}

func newBuilder(root *CLI) (*blogbuild.Builder, error) {
	cfg, err := blogbuild.LoadConfig(root.Config)
	if err != nil {
		return nil, err
	}
	return blogbuild.New(cfg, blogbuild.WithLogger(slog.Default())), nil
}
