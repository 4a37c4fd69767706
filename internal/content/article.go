package content

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Article is one published markdown document.
type Article struct {
	Slug           string
	Title          string
	Date           time.Time
	Body           string
	Tags           []string
	WordCount      int
	ReadingMinutes int
	Image          string
	Description    string
	Layout         string
	SourcePath     string
	Fingerprint    string
}

// WordCount counts whitespace-separated tokens.
func WordCount(body string) int {
	return len(strings.Fields(body))
}

// ReadingMinutes returns ceil(words / wordsPerMinute). Zero words read in zero minutes.
func ReadingMinutes(words, wordsPerMinute int) int {
	if words <= 0 {
		return 0
	}
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	return int(math.Ceil(float64(words) / float64(wordsPerMinute)))
}

// DefaultWordsPerMinute is used when no reading speed is configured.
const DefaultWordsPerMinute = 200

// SortByDate orders articles newest first, breaking ties by slug.
func SortByDate(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return newerFirst(articles[i], articles[j])
	})
}

func newerFirst(a, b Article) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.Slug < b.Slug
}
