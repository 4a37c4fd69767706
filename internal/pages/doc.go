// Package pages renders page bodies as render.Node trees.
//
// Renderers are pure: everything they read comes from the site.Context, and
// the same context always yields the same tree.
package pages
