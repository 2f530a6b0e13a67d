package postfix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// IllegalCharacterError reports a character that starts no token. It is not
// fatal: the lexer skips the character and keeps going.
type IllegalCharacterError struct {
	Char rune
	Line int
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("illegal character %q at line %d", e.Char, e.Line)
}

// SyntaxError aborts a parse at the first token that continues no production.
type SyntaxError struct {
	Token  Token
	Reason string
}

func (e *SyntaxError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "unexpected"
	}
	return fmt.Sprintf("syntax error at line %d: %s %v", e.Token.Line, reason, e.Token)
}

// Errors holds every diagnostic of one parse in source order: any number of
// illegal characters followed by at most one syntax error.
type Errors struct {
	errs *multierror.Error
}

func (e *Errors) add(err error) {
	e.errs = multierror.Append(e.errs, err)
	e.errs.ErrorFormat = formatErrors
}

func formatErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

func (e *Errors) Error() string {
	if e == nil || e.errs == nil {
		return ""
	}
	return e.errs.Error()
}

func (e *Errors) Unwrap() []error {
	if e == nil || e.errs == nil {
		return nil
	}
	return e.errs.WrappedErrors()
}

func (e *Errors) Len() int {
	if e == nil || e.errs == nil {
		return 0
	}
	return e.errs.Len()
}

// Illegal returns the illegal character diagnostics.
func (e *Errors) Illegal() []*IllegalCharacterError {
	var ret []*IllegalCharacterError
	for _, err := range e.Unwrap() {
		if ic, ok := err.(*IllegalCharacterError); ok {
			ret = append(ret, ic)
		}
	}
	return ret
}

// Syntax returns the fatal syntax error, or nil when the parse succeeded.
func (e *Errors) Syntax() *SyntaxError {
	for _, err := range e.Unwrap() {
		if se, ok := err.(*SyntaxError); ok {
			return se
		}
	}
	return nil
}

// IsFatal reports whether err carries a syntax error, i.e. no tree was built.
func IsFatal(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
