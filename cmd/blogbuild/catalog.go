package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/eringen/blogbuild"
)

// PostsCmd implements the 'posts' command.
type PostsCmd struct {
	Tag string `short:"t" help:"Only list posts with this tag"`
}

func (p *PostsCmd) Run(root *CLI) error {
	store, err := openCatalog(root)
	if err != nil {
		return err
	}
	defer store.Close()

	posts, err := store.ListPosts(p.Tag)
	if err != nil {
		return err
	}
	return printPosts(os.Stdout, posts)
}

// TagsCmd implements the 'tags' command.
type TagsCmd struct{}

func (t *TagsCmd) Run(root *CLI) error {
	store, err := openCatalog(root)
	if err != nil {
		return err
	}
	defer store.Close()

	tags, err := store.ListTags()
	if err != nil {
		return err
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}

// PostCmd implements the 'post' command.
type PostCmd struct {
	Slug string `arg:"" help:"Post slug (output filename without .html)"`
}

func (p *PostCmd) Run(root *CLI) error {
	store, err := openCatalog(root)
	if err != nil {
		return err
	}
	defer store.Close()

	post, err := store.GetPost(p.Slug)
	if errors.Is(err, blogbuild.ErrNotFound) {
		return fmt.Errorf("no post %q in catalog", p.Slug)
	}
	if err != nil {
		return err
	}
	printPost(os.Stdout, post)
	return nil
}

func openCatalog(root *CLI) (*blogbuild.Store, error) {
	builder, err := newBuilder(root)
	if err != nil {
		return nil, err
	}
	return builder.OpenCatalog()
}

// printPosts writes one row per post: date, slug, title and tags.
func printPosts(w io.Writer, posts []blogbuild.Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSLUG\tTITLE\tTAGS")
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Date, p.Slug(), p.Title, strings.Join(p.Tags, ", "))
	}
	return tw.Flush()
}

func printPost(w io.Writer, p blogbuild.Document) {
	fmt.Fprintf(w, "Title:       %s\n", p.Title)
	fmt.Fprintf(w, "Date:        %s\n", p.Date)
	fmt.Fprintf(w, "Author:      %s\n", p.Author)
	fmt.Fprintf(w, "Tags:        %s\n", strings.Join(p.Tags, ", "))
	fmt.Fprintf(w, "Description: %s\n", p.Description)
	fmt.Fprintf(w, "File:        %s\n", p.Filename)
}
