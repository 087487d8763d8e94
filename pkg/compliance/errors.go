package compliance

import "fmt"

// ParseError reports malformed input: a date that is not ISO-8601 or a
// weekday identifier outside 0..6.
type ParseError struct {
	Value  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("compliance: parse %q: %s", e.Value, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
