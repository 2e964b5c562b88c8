// Package markdown converts post bodies to HTML with a fixed goldmark
// configuration: fenced code, tables, footnotes, definition lists, typographic
// substitutions, heading ids, attribute lists and [TOC] markers.
package markdown

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// tocMarker is how a paragraph holding only [TOC] comes out of the renderer.
const tocMarker = "<p>[TOC]</p>\n"

var extensions = []goldmark.Extender{
	extension.Table,
	extension.Footnote,
	extension.DefinitionList,
	extension.Typographer,
}

// Renderer converts Markdown to an HTML fragment. It is safe to reuse across
// documents; heading ids are scoped to a single Convert call.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with the fixed extension set.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extensions...),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithAttribute(),
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Convert renders src to HTML.
func (r *Renderer) Convert(src []byte) (string, error) {
	doc := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(parser.NewContext()))
	headings := collectHeadings(doc, src)

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return "", fmt.Errorf("markdown: render: %w", err)
	}
	out := buf.String()
	if strings.Contains(out, tocMarker) {
		out = strings.ReplaceAll(out, tocMarker, renderTOC(headings))
	}
	return out, nil
}

type heading struct {
	level int
	id    string
	text  string // already HTML-safe
}

func collectHeadings(doc ast.Node, src []byte) []heading {
	var out []heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		var id string
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		out = append(out, heading{level: h.Level, id: id, text: headingText(h, src)})
		return ast.WalkSkipChildren, nil
	})
	return out
}

func headingText(h ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.WriteString(stdhtml.EscapeString(string(t.Segment.Value(src))))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			// typographer output, entities already encoded
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// renderTOC builds a nested list of links to the document's headings.
func renderTOC(hs []heading) string {
	var b strings.Builder
	b.WriteString("<div class=\"toc\">\n")
	if len(hs) == 0 {
		b.WriteString("</div>\n")
		return b.String()
	}

	var open []int // heading level of each open <ul>
	for _, h := range hs {
		switch {
		case len(open) == 0:
			b.WriteString("<ul>\n<li>")
			open = append(open, h.level)
		case h.level > open[len(open)-1]:
			b.WriteString("\n<ul>\n<li>")
			open = append(open, h.level)
		default:
			b.WriteString("</li>\n")
			for len(open) > 1 && h.level < open[len(open)-1] {
				b.WriteString("</ul>\n</li>\n")
				open = open[:len(open)-1]
			}
			b.WriteString("<li>")
		}
		b.WriteString(`<a href="#` + h.id + `">` + h.text + `</a>`)
	}
	b.WriteString("</li>\n")
	for len(open) > 1 {
		b.WriteString("</ul>\n</li>\n")
		open = open[:len(open)-1]
	}
	b.WriteString("</ul>\n</div>\n")
	return b.String()
}
