package lex

import (
	"fmt"

	"github.com/pkg/errors"
)

// LexFailureError is returned by Lex when some position in the input
// matched neither a literal terminal nor a supplied pattern. Tokens
// holds every token produced over the whole input, including the
// synthetic empty-name tokens substituted at each failing position;
// Offset is the byte offset of the first such failure.
type LexFailureError struct {
	Offset int
	Tokens []Token
}

func (e *LexFailureError) Error() string {
	return fmt.Sprintf("lex failure at offset %d", e.Offset)
}

func lexFailure(offset int, tokens []Token) error {
	return errors.WithStack(&LexFailureError{Offset: offset, Tokens: tokens})
}
