// Package render defines the page node tree and serializes it to HTML.
//
// Page renderers build trees of Node values with plain functions; Serialize
// turns a Document into bytes through golang.org/x/net/html. Nodes never
// carry behavior of their own, so the same tree always produces the same bytes.
package render
