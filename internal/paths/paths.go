// Package paths maps site entities to URL paths and output files.
package paths

import (
	"net/url"
	"path"
	"strings"
)

const (
	// BlogSlug is the static page listing all articles; articles live below it.
	BlogSlug = "blog"
	// TagsPrefix is the URL segment tag pages live below.
	TagsPrefix = "tags"
	// HomeSlug names the site root page.
	HomeSlug = ""
)

// Page returns the URL path of a static page.
func Page(slug string) string {
	if slug == HomeSlug {
		return "/"
	}
	return "/" + slug + "/"
}

// Article returns the URL path of an article.
func Article(slug string) string {
	return "/" + BlogSlug + "/" + slug + "/"
}

// Tag returns the URL path of a tag page.
func Tag(slug string) string {
	return "/" + TagsPrefix + "/" + slug + "/"
}

// OutputFile converts a URL path into the file it is served from,
// relative to the output root using forward slashes.
func OutputFile(urlPath string) string {
	p := strings.Trim(path.Clean("/"+urlPath), "/")
	if p == "" {
		return "index.html"
	}
	return p + "/index.html"
}

// Absolute joins a base URL and a URL path, percent-encoding non-ASCII
// path segments.
func Absolute(baseURL, urlPath string) string {
	return strings.TrimRight(baseURL, "/") + (&url.URL{Path: urlPath}).EscapedPath()
}
