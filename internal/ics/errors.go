package ics

import (
	"fmt"
)

// FetchError is a transport failure or a non-2xx response from the feed.
type FetchError struct {
	URL        string
	StatusCode int // 0 for transport errors
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d: %v", redactURL(e.URL), e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", redactURL(e.URL), e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the payload is not a well-formed iCalendar document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse calendar: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError is a failure creating or writing the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
