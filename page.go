package blogbuild

import (
	"strings"
	"time"
)

const (
	isoDate     = "2006-01-02"
	displayDate = "January 02, 2006"

	// accepts unpadded months and days as well
	lenientISODate = "2006-1-2"
)

// FormatDisplayDate renders a YYYY-MM-DD date as "Month DD, YYYY". Anything
// that does not parse is returned unchanged.
func FormatDisplayDate(date string) string {
	t, err := time.Parse(lenientISODate, date)
	if err != nil {
		return date
	}
	return t.Format(displayDate)
}

// RenderTags wraps each tag in a tag span and joins them with spaces.
func RenderTags(tags []string) string {
	spans := make([]string, len(tags))
	for i, t := range tags {
		spans[i] = `<span class="tag">` + t + `</span>`
	}
	return strings.Join(spans, " ")
}

// RenderPage fills the page template for doc. Placeholders are replaced as
// literal substrings, one token at a time in a fixed order, without escaping.
// Text inserted by an earlier replacement is seen by the later ones.
func RenderPage(tmpl string, doc Document) string {
	replacements := []struct {
		token string
		value string
	}{
		{"{{title}}", doc.Title},
		{"{{description}}", doc.Description},
		{"{{author}}", doc.Author},
		{"{{date}}", FormatDisplayDate(doc.Date)},
		{"{{tags}}", RenderTags(doc.Tags)},
		{"{{content}}", doc.Content},
	}
	out := tmpl
	for _, r := range replacements {
		out = strings.ReplaceAll(out, r.token, r.value)
	}
	return out
}
