package assemble

import (
	"encoding/json"
	"encoding/xml"
	"time"

	"github.com/lyleresnick/folio/internal/content"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/paths"
	"github.com/lyleresnick/folio/internal/site"
)

const (
	SitemapFile  = "sitemap.xml"
	FeedFile     = "feed.rss"
	ManifestFile = "manifest.json"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	PubDate     string   `xml:"pubDate"`
	Description string   `xml:"description,omitempty"`
	Categories  []string `xml:"category,omitempty"`
}

// Manifest records what a build produced. It carries no timestamps so the
// same inputs always yield the same bytes.
type Manifest struct {
	Documents []ManifestDocument `json:"documents"`
	Articles  []ManifestArticle  `json:"articles"`
}

// ManifestDocument is one rendered document.
type ManifestDocument struct {
	Path string `json:"path"`
	Kind Kind   `json:"kind"`
}

// ManifestArticle ties an article source to its output and content fingerprint.
type ManifestArticle struct {
	Slug        string `json:"slug"`
	Path        string `json:"path"`
	Fingerprint string `json:"fingerprint"`
}

func auxiliary(s *site.Site, docs []Document, opts Options) ([]File, error) {
	files := make([]File, 0, 3)
	if s.BaseURL != "" {
		if opts.Feed {
			b, err := feed(s)
			if err != nil {
				return nil, err
			}
			files = append(files, File{Path: FeedFile, Bytes: b})
		}
		if opts.Sitemap {
			b, err := sitemap(s, docs)
			if err != nil {
				return nil, err
			}
			files = append(files, File{Path: SitemapFile, Bytes: b})
		}
	}
	b, err := manifest(s, docs)
	if err != nil {
		return nil, err
	}
	files = append(files, File{Path: ManifestFile, Bytes: b})
	return files, nil
}

func sitemap(s *site.Site, docs []Document) ([]byte, error) {
	byURL := articleByURL(s)
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, d := range docs {
		u := sitemapURL{Loc: paths.Absolute(s.BaseURL, d.URL)}
		if a, ok := byURL[d.URL]; ok {
			u.LastMod = a.Date.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}
	return marshalXML(set)
}

func feed(s *site.Site) ([]byte, error) {
	sorted := make([]content.Article, len(s.Articles))
	copy(sorted, s.Articles)
	content.SortByDate(sorted)

	ch := rssChannel{
		Title:       s.Name,
		Link:        paths.Absolute(s.BaseURL, "/"),
		Description: s.Theme.Description,
		Language:    s.Theme.Language,
	}
	if ch.Description == "" {
		ch.Description = s.Name
	}
	for _, a := range sorted {
		link := paths.Absolute(s.BaseURL, paths.Article(a.Slug))
		ch.Items = append(ch.Items, rssItem{
			Title:       a.Title,
			Link:        link,
			GUID:        link,
			PubDate:     a.Date.Format(time.RFC1123Z),
			Description: a.Description,
			Categories:  a.Tags,
		})
	}
	return marshalXML(rss{Version: "2.0", Channel: ch})
}

func manifest(s *site.Site, docs []Document) ([]byte, error) {
	m := Manifest{
		Documents: make([]ManifestDocument, 0, len(docs)),
		Articles:  make([]ManifestArticle, 0, len(s.Articles)),
	}
	for _, d := range docs {
		m.Documents = append(m.Documents, ManifestDocument{Path: d.Path, Kind: d.Kind})
	}
	byURL := articleByURL(s)
	for _, d := range docs {
		if d.Kind != KindArticle {
			continue
		}
		a := byURL[d.URL]
		m.Articles = append(m.Articles, ManifestArticle{Slug: a.Slug, Path: d.Path, Fingerprint: a.Fingerprint})
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, ferrors.InternalError("encode manifest").WithCause(err).Build()
	}
	return append(b, '\n'), nil
}

func marshalXML(v any) ([]byte, error) {
	b, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, ferrors.InternalError("encode xml").WithCause(err).Build()
	}
	out := make([]byte, 0, len(xml.Header)+len(b)+1)
	out = append(out, xml.Header...)
	out = append(out, b...)
	return append(out, '\n'), nil
}
