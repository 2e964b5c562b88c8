package markdown

import (
	"strings"
	"testing"
)

func convert(t *testing.T, src string) string {
	t.Helper()
	got, err := New().Convert([]byte(src))
	if err != nil {
		t.Fatalf("Convert(%q) error: %v", src, err)
	}
	return got
}

func TestConvertExtensions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "fenced code with language",
			input: "```go\nfmt.Println(\"hi\")\n```\n",
			want:  []string{`<pre><code class="language-go">`, "fmt.Println(&quot;hi&quot;)"},
		},
		{
			name:  "table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |\n",
			want:  []string{"<table>", "<th>A</th>", "<td>1</td>", "<td>2</td>"},
		},
		{
			name:  "footnote",
			input: "Text with a note.[^1]\n\n[^1]: The note.\n",
			want:  []string{`class="footnote-ref"`, `class="footnotes"`, "The note."},
		},
		{
			name:  "definition list",
			input: "Term\n: Definition\n",
			want:  []string{"<dl>", "<dt>Term</dt>", "<dd>Definition</dd>"},
		},
		{
			name:  "typographer",
			input: "\"quoted\" -- and...\n",
			want:  []string{"&ldquo;quoted&rdquo;", "&ndash;", "&hellip;"},
		},
		{
			name:  "auto heading id",
			input: "## Getting Started\n",
			want:  []string{`<h2 id="getting-started">Getting Started</h2>`},
		},
		{
			name:  "attribute list",
			input: "## Heading {#custom}\n",
			want:  []string{`<h2 id="custom">Heading</h2>`},
		},
		{
			name:  "raw html passes through",
			input: "<div class=\"note\">hi</div>\n",
			want:  []string{`<div class="note">hi</div>`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convert(t, tt.input)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Convert(%q) = %q, missing %q", tt.input, got, w)
				}
			}
		})
	}
}

func TestConvertTOC(t *testing.T) {
	got := convert(t, "[TOC]\n\n## One\n\n### Two\n\n## Three\n")

	if strings.Contains(got, "[TOC]") {
		t.Fatalf("marker not replaced: %q", got)
	}
	want := "<div class=\"toc\">\n<ul>\n<li><a href=\"#one\">One</a>\n<ul>\n<li><a href=\"#two\">Two</a></li>\n</ul>\n</li>\n<li><a href=\"#three\">Three</a></li>\n</ul>\n</div>\n"
	if !strings.HasPrefix(got, want) {
		t.Errorf("TOC = %q, want prefix %q", got, want)
	}
}

func TestConvertTOCWithoutHeadings(t *testing.T) {
	got := convert(t, "[TOC]\n\nJust text.\n")
	if !strings.HasPrefix(got, "<div class=\"toc\">\n</div>\n") {
		t.Errorf("got %q", got)
	}
}

func TestConvertWithoutMarkerLeavesBracketText(t *testing.T) {
	got := convert(t, "See [TOC] inline.\n")
	if !strings.Contains(got, "[TOC]") {
		t.Errorf("inline marker should stay literal, got %q", got)
	}
	if strings.Contains(got, `class="toc"`) {
		t.Errorf("inline marker should not produce a TOC, got %q", got)
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	src := "[TOC]\n\n# Title\n\nBody[^n]\n\n[^n]: note\n\n## Title\n"
	r := New()
	a, err := r.Convert([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Convert([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("outputs differ:\n%s\n---\n%s", a, b)
	}
	// duplicate headings get distinct ids within one document
	if !strings.Contains(a, `id="title"`) || !strings.Contains(a, `id="title-1"`) {
		t.Errorf("expected title and title-1 ids, got %q", a)
	}
}
