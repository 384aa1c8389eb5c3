package earley

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseRejectedError is returned when the chart does not contain an
// accepting entry: the token stream does not belong to the grammar's
// language.
type ParseRejectedError struct {
	Length int
}

func (e *ParseRejectedError) Error() string {
	return "input rejected: no derivation covers the token stream"
}

func parseRejected(length int) error {
	return errors.WithStack(&ParseRejectedError{Length: length})
}

// InternalErrorError signals a chart invariant was violated during tree
// reconstruction. It should be unreachable for charts produced by
// Recognizer.Parse and exists as an assertion backstop.
type InternalErrorError struct {
	Message string
}

func (e *InternalErrorError) Error() string {
	return "internal error: " + e.Message
}

func internalError(format string, args ...interface{}) error {
	return errors.WithStack(&InternalErrorError{Message: fmt.Sprintf(format, args...)})
}
