package blogbuild

import (
	"bytes"
	"encoding/xml"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Category    []string `xml:"category,omitempty"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
}

// RenderFeed returns an RSS 2.0 document for docs, newest first. Posts whose
// date is not YYYY-MM-DD are listed without a pubDate.
func RenderFeed(site SiteInfo, docs []Document) ([]byte, error) {
	sorted := SortByDate(docs)
	items := make([]rssItem, 0, len(sorted))
	for _, d := range sorted {
		pubDate := ""
		if t, err := time.Parse(isoDate, d.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := BuildURL(site.URL, d.Filename)
		items = append(items, rssItem{
			Title:       d.Title,
			Link:        postURL,
			Description: d.Description,
			Author:      d.Author,
			Category:    d.Tags,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       site.Name,
			Link:        BuildURL(site.URL),
			Description: site.Description,
			Items:       items,
		},
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
