package blogbuild

import "encoding/json"

// postData is the JSON shape consumed by the site's front end.
type postData struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Date        string   `json:"date"`
	DateISO     string   `json:"dateISO"`
	Description string   `json:"description"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content"`
}

// RenderData returns docs as an indented JSON array, newest first.
func RenderData(docs []Document) ([]byte, error) {
	sorted := SortByDate(docs)
	out := make([]postData, len(sorted))
	for i, d := range sorted {
		out[i] = postData{
			ID:          d.Slug(),
			Title:       d.Title,
			Author:      d.Author,
			Date:        FormatDisplayDate(d.Date),
			DateISO:     d.Date,
			Description: d.Description,
			Excerpt:     d.Excerpt,
			Tags:        nonNil(d.Tags),
			Content:     d.Content,
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
