package content

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/lyleresnick/folio/internal/slug"
)

// Tag groups every article that carries the same tag name, compared
// case-insensitively.
type Tag struct {
	Name     string
	Slug     string
	Articles []Article
}

// BuildTagIndex computes tags from article metadata. Tags are sorted by slug
// then name, and each tag's articles follow SortByDate order. The first
// spelling seen, in article order, names the tag. Distinct names that share
// a slug stay separate tags so that the assembler reports the collision.
func BuildTagIndex(articles []Article) []Tag {
	fold := cases.Fold()
	byName := make(map[string]*Tag)
	for _, a := range articles {
		for _, name := range a.Tags {
			key := fold.String(strings.TrimSpace(name))
			t, ok := byName[key]
			if !ok {
				t = &Tag{Name: name, Slug: slug.Make(name)}
				byName[key] = t
			}
			if n := len(t.Articles); n > 0 && t.Articles[n-1].Slug == a.Slug {
				continue
			}
			t.Articles = append(t.Articles, a)
		}
	}

	tags := make([]Tag, 0, len(byName))
	for _, t := range byName {
		SortByDate(t.Articles)
		tags = append(tags, *t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Slug != tags[j].Slug {
			return tags[i].Slug < tags[j].Slug
		}
		return tags[i].Name < tags[j].Name
	})
	return tags
}
