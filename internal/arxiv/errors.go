// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports an input with no recognizable arXiv identifier.
	ErrInvalidInput = errors.New("no arXiv identifier in input")

	// ErrNotFound reports a query that matched zero papers.
	ErrNotFound = errors.New("no entry found for arXiv identifier")

	// ErrUpstream reports a non-success response from the arXiv API.
	ErrUpstream = errors.New("arXiv API error")

	// ErrParse reports a response body that does not match the Atom feed shape.
	ErrParse = errors.New("malformed arXiv response")
)

// StatusError is the ErrUpstream variant carrying the HTTP status code.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("arXiv API returned HTTP %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrUpstream }
