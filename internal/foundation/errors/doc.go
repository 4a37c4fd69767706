// Package errors provides the classified error primitives used across folio.
//
// A ClassifiedError carries a category, a severity and structured context on top
// of an optional cause. The sentinel errors in sentinels.go name the failure
// kinds of a publish run; classified errors wrap them so callers can test with
// errors.Is while the CLI adapter picks an exit code from the category.
//
// Example usage:
//
//	err := errors.SlugCollisionError("%q and %q share an output path", a, b).
//		WithContext("path", "blog/my-post/index.html").
//		Build()
//
//	errors.Is(err, errors.ErrSlugCollision) // true
package errors
