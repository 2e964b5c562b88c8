package blogbuild

import "strings"

// Document is one source Markdown file plus its parsed metadata and rendered
// HTML. It is built once per run and not modified afterwards.
type Document struct {
	Title       string
	Date        string // YYYY-MM-DD when the metadata held a real date, otherwise verbatim
	Description string
	Excerpt     string // longer summary for the data export; defaults to Description
	Tags        []string
	Author      string
	Content     string // rendered HTML fragment
	Filename    string // output file name, source stem + ".html"
	Source      string // source file name, for logging
}

// Slug returns the output filename without its extension.
func (d Document) Slug() string {
	return strings.TrimSuffix(d.Filename, ".html")
}
