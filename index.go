package blogbuild

import (
	"fmt"
	"slices"
	"strings"
)

const cardFormat = `
        <article class="blog-card">
            <h3><a href="%[1]s">%[2]s</a></h3>
            <div class="post-meta">
                <span class="post-date">%[3]s</span>
            </div>
            <p class="post-description">%[4]s</p>
            %[5]s
            <a href="%[1]s" class="read-more">Read More →</a>
        </article>
        `

// SortByDate returns a copy of docs ordered newest first. Dates compare as
// plain strings, which is chronological only for YYYY-MM-DD values. Equal
// dates keep their input order.
func SortByDate(docs []Document) []Document {
	out := slices.Clone(docs)
	slices.SortStableFunc(out, func(a, b Document) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

func renderCard(d Document) string {
	var tags string
	if len(d.Tags) > 0 {
		tags = `<div class="post-tags">` + RenderTags(d.Tags) + `</div>`
	}
	return fmt.Sprintf(cardFormat, d.Filename, d.Title, FormatDisplayDate(d.Date), d.Description, tags)
}

// RenderIndex returns one card per document, newest first, joined by newlines.
func RenderIndex(docs []Document) string {
	sorted := SortByDate(docs)
	cards := make([]string, len(sorted))
	for i, d := range sorted {
		cards[i] = renderCard(d)
	}
	return strings.Join(cards, "\n")
}

// RenderIndexPage substitutes the rendered card list into tmpl at {{posts}}.
func RenderIndexPage(tmpl string, docs []Document) string {
	return strings.ReplaceAll(tmpl, "{{posts}}", RenderIndex(docs))
}
