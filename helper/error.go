package helper

import (
	"errors"
	"fmt"
	"strings"
)

// Error wraps an original error with the trace of operations it passed through.
type Error struct {
	Original error
	Trace    []string
}

// NewError wraps err with the failing operation. Wrapping an *Error extends its
// trace instead of nesting a second one.
func NewError(operation string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return &Error{
			Original: e.Original,
			Trace:    append([]string{operation}, e.Trace...),
		}
	}

	return &Error{
		Original: err,
		Trace:    []string{operation},
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", strings.Join(e.Trace, ": "), e.Original)
}

func (e *Error) Unwrap() error {
	return e.Original
}
