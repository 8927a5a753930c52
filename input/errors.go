package input

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel every ParseError matches.
var ErrParse = errors.New("input: parse error")

// ParseError describes malformed textual input.
type ParseError struct {
	Line int    // 1-based line number, 0 when not line oriented
	Text string // offending text
	Err  error  // underlying cause, may be nil
	Msg  string // human readable reason
}

// Errorf builds a ParseError for line with a formatted reason.
func Errorf(line int, text, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Text: text, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a ParseError for line around cause.
func Wrap(line int, text string, cause error) *ParseError {
	return &ParseError{Line: line, Text: text, Err: cause}
}

// At relocates err to line of the whole input. Helpers such as Fields
// and IntList only see one line, so the ParseError they return is copied
// with line and text replaced; any other error is wrapped.
func At(line int, text string, err error) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return Wrap(line, text, err)
	}
	located := *pe
	located.Line, located.Text = line, text
	return &located
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("input: line %d %q: %s", e.Line, e.Text, msg)
	}
	return fmt.Sprintf("input: %q: %s", e.Text, msg)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse as a match.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
