// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"net/http"
)

// Header carries one request header to set on an outgoing request.
type Header struct {
	Key   string
	Value string
}

// Get issues a single GET request for url with the given headers set.
// The caller owns the response body. There is deliberately no retry or
// backoff here: a failed call surfaces immediately.
func Get(ctx context.Context, client *http.Client, url string, headers ...Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}
	return client.Do(req)
}
