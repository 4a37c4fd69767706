// Package content loads the site's source material: markdown articles with
// YAML front matter, the tag index derived from them, and resume records.
//
// Everything returned by this package is treated as immutable once loaded.
package content
