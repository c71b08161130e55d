package types

import "fmt"

// ErrorKind classifies a failed bookmark operation.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNetwork
	KindExtraction
	KindStorage
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindNetwork:
		return "network error"
	case KindExtraction:
		return "extraction error"
	case KindStorage:
		return "storage error"
	}
	return "unknown error"
}

// Error is returned by the bookmark operations. It carries the URL
// being processed and the underlying cause.
type Error struct {
	Kind ErrorKind
	URL  string
	Err  error
}

// Sentinels to test an error kind with errors.Is.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrNetwork    = &Error{Kind: KindNetwork}
	ErrExtraction = &Error{Kind: KindExtraction}
	ErrStorage    = &Error{Kind: KindStorage}
)

// NewError wraps err with the given kind.
func NewError(kind ErrorKind, url string, err error) *Error {
	return &Error{Kind: kind, URL: url, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
