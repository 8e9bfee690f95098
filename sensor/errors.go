package sensor

import "fmt"

// ParseError is returned by a strict source when the first line is not an integer.
type ParseError struct {
	Path string
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid reading %q: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
