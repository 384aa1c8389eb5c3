package grammar

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidGrammarError is returned by Parse when the grammar text
// violates the format rules. Rule carries the offending rule text
// where one is available.
type InvalidGrammarError struct {
	Message string
	Rule    string
}

func (e *InvalidGrammarError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("invalid grammar: %s", e.Message)
	}
	return fmt.Sprintf("invalid grammar: %s: %q", e.Message, e.Rule)
}

// invalidGrammar builds an *InvalidGrammarError wrapped with a stack
// trace, so callers debugging a malformed grammar file can see where
// validation gave up without needing to reproduce it under a debugger.
func invalidGrammar(rule, format string, args ...interface{}) error {
	return errors.WithStack(&InvalidGrammarError{
		Message: fmt.Sprintf(format, args...),
		Rule:    rule,
	})
}
