package blogbuild

import (
	"bytes"
	"encoding/xml"
	"time"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// RenderSitemap lists the index page followed by every post page.
func RenderSitemap(site SiteInfo, docs []Document) ([]byte, error) {
	urls := []sitemapURL{
		{Loc: BuildURL(site.URL), ChangeFreq: "weekly", Priority: "0.9"},
	}
	for _, d := range SortByDate(docs) {
		u := sitemapURL{
			Loc:        BuildURL(site.URL, d.Filename),
			ChangeFreq: "monthly",
			Priority:   "0.8",
		}
		if _, err := time.Parse(isoDate, d.Date); err == nil {
			u.LastMod = d.Date
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
