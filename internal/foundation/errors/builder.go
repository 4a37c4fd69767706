package errors

import "fmt"

// ErrorBuilder provides a fluent API for creating ClassifiedError instances.
type ErrorBuilder struct {
	category ErrorCategory
	severity ErrorSeverity
	message  string
	cause    error
	kind     error
	context  ErrorContext
}

// NewError creates a new ErrorBuilder with the specified category and message.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		severity: SeverityError,
		message:  message,
		context:  make(ErrorContext),
	}
}

// WrapError creates a new ErrorBuilder that wraps an existing error.
func WrapError(err error, category ErrorCategory, message string) *ErrorBuilder {
	b := NewError(category, message)
	b.cause = err
	return b
}

// WithSeverity sets the error severity.
func (b *ErrorBuilder) WithSeverity(severity ErrorSeverity) *ErrorBuilder {
	b.severity = severity
	return b
}

// WithCause sets the underlying error.
func (b *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	b.cause = err
	return b
}

// WithContext adds a context key-value pair.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.context = b.context.Set(key, value)
	return b
}

// Fatal sets the severity to fatal.
func (b *ErrorBuilder) Fatal() *ErrorBuilder {
	return b.WithSeverity(SeverityFatal)
}

// Build creates the final ClassifiedError.
func (b *ErrorBuilder) Build() *ClassifiedError {
	cause := b.cause
	switch {
	case b.kind != nil && cause != nil:
		cause = fmt.Errorf("%w: %w", b.kind, cause)
	case b.kind != nil:
		cause = b.kind
	}
	return &ClassifiedError{
		category: b.category,
		severity: b.severity,
		message:  b.message,
		cause:    cause,
		context:  b.context,
	}
}

// Convenience constructors for the publish-run taxonomy. Each one attaches the
// matching sentinel so errors.Is works without the caller wrapping it again.

func sentinelBuilder(category ErrorCategory, sentinel error, format string, args ...any) *ErrorBuilder {
	b := NewError(category, fmt.Sprintf(format, args...)).Fatal()
	b.kind = sentinel
	return b
}

// ConfigError creates a configuration error.
func ConfigError(format string, args ...any) *ErrorBuilder {
	return sentinelBuilder(CategoryConfig, ErrConfig, format, args...)
}

// ContentLoadError creates an error for a malformed or incomplete article.
func ContentLoadError(format string, args ...any) *ErrorBuilder {
	return sentinelBuilder(CategoryContent, ErrContentLoad, format, args...)
}

// ResourceNotFoundError creates an error for an absent structured-data resource.
func ResourceNotFoundError(format string, args ...any) *ErrorBuilder {
	return sentinelBuilder(CategoryResource, ErrResourceNotFound, format, args...)
}

// ResourceDecodeError creates an error for an undecodable structured-data resource.
func ResourceDecodeError(format string, args ...any) *ErrorBuilder {
	return sentinelBuilder(CategoryResource, ErrResourceDecode, format, args...)
}

// SlugCollisionError creates an error for two entities sharing an output path.
func SlugCollisionError(format string, args ...any) *ErrorBuilder {
	return sentinelBuilder(CategorySlug, ErrSlugCollision, format, args...)
}

// RenderError creates an error for a violated renderer invariant.
func RenderError(format string, args ...any) *ErrorBuilder {
	return sentinelBuilder(CategoryRender, ErrRender, format, args...)
}

// ValidationError creates an error for invalid command-line input.
func ValidationError(format string, args ...any) *ErrorBuilder {
	return NewError(CategoryValidation, fmt.Sprintf(format, args...)).Fatal()
}

// FileSystemError creates a filesystem error.
func FileSystemError(message string) *ErrorBuilder {
	return NewError(CategoryFileSystem, message).Fatal()
}

// InternalError creates an internal error.
func InternalError(message string) *ErrorBuilder {
	return NewError(CategoryInternal, message).Fatal()
}
