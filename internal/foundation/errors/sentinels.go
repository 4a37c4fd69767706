package errors

import "errors"

// Sentinel errors naming the failure kinds of a publish run.
// They should always be wrapped with contextual information at the call site.
var (
	// ErrContentLoad indicates malformed or missing article metadata.
	ErrContentLoad = errors.New("content load error")

	// ErrResourceNotFound indicates a referenced structured-data resource is absent.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrResourceDecode indicates a structured-data resource could not be decoded.
	ErrResourceDecode = errors.New("resource decode error")

	// ErrSlugCollision indicates two entities map to the same output path.
	ErrSlugCollision = errors.New("slug collision")

	// ErrRender indicates a renderer invariant was violated.
	ErrRender = errors.New("render error")

	// ErrConfig indicates an invalid or unreadable site configuration.
	ErrConfig = errors.New("configuration error")
)
