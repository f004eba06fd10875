package scraper

import "fmt"

// NetworkError reports a listing or chapter page that could not be fetched:
// connection failure, timeout, or a non-2xx status.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a fetched page missing a structural element the site
// contract promises. Usually means the site layout changed.
type ParseError struct {
	URL     string
	Missing string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: no %s found", e.URL, e.Missing)
}
