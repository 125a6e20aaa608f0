package errors

import "fmt"

// Kind represents the category of a domain error.
type Kind int

const (
	// KindNotFound - a queried entity or identifier is absent from the registry or graph
	KindNotFound Kind = iota
	// KindAmbiguousName - a display name resolves to more than one entity
	KindAmbiguousName
	// KindInvalidWeight - an ownership fraction outside (0, 1] supplied at construction time
	KindInvalidWeight
	// KindDuplicateEdge - a second edge for an ordered (owner, owned) pair at construction time
	KindDuplicateEdge
	// KindValidation - malformed input data (share strings, relation records)
	KindValidation
	// KindFileSystem - input file missing, unreadable, or of the wrong type
	KindFileSystem
)

// Error is a typed error with an optional cause. Every failure the engine
// surfaces is one of these; there is no recoverable/fatal distinction inside
// the core, the caller decides how to display or abort.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by Kind, so callers can test against a bare-kind sentinel
// without caring about the formatted message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func kindString(k Kind) string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindAmbiguousName:
		return "AMBIGUOUS_NAME"
	case KindInvalidWeight:
		return "INVALID_WEIGHT"
	case KindDuplicateEdge:
		return "DUPLICATE_EDGE"
	case KindValidation:
		return "VALIDATION"
	case KindFileSystem:
		return "FILESYSTEM"
	default:
		return "UNKNOWN"
	}
}

// DetailedString returns the kind-tagged form used by verbose output.
func (e *Error) DetailedString() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", kindString(e.Kind), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", kindString(e.Kind), e.Message)
}

// New creates a new error with the given kind and message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new error with the given kind and formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a kind and message
func Wrap(err error, kind Kind, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Cause: err}
}

// Convenience constructors for the domain error kinds

// NotFoundf creates a not-found error with formatting
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(KindNotFound, format, args...)
}

// AmbiguousNamef creates an ambiguous-name error with formatting
func AmbiguousNamef(format string, args ...interface{}) *Error {
	return Newf(KindAmbiguousName, format, args...)
}

// InvalidWeightf creates an invalid-weight error with formatting
func InvalidWeightf(format string, args ...interface{}) *Error {
	return Newf(KindInvalidWeight, format, args...)
}

// DuplicateEdgef creates a duplicate-edge error with formatting
func DuplicateEdgef(format string, args ...interface{}) *Error {
	return Newf(KindDuplicateEdge, format, args...)
}

// Validationf creates a validation error with formatting
func Validationf(format string, args ...interface{}) *Error {
	return Newf(KindValidation, format, args...)
}

// FileSystemError wraps a filesystem error
func FileSystemError(err error, message string) *Error {
	return Wrap(err, KindFileSystem, message)
}

// IsKind reports whether err is (or wraps) a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// GetKind returns the kind of an error, defaulting to KindValidation for
// errors produced outside this package.
func GetKind(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return KindValidation
}
