// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv fetches the bibliographic record for a single paper from
// the arXiv export API and provides the identifier helpers shared by the
// import commands.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/paper-notes/internal/httputil"
	"github.com/pdiddy/paper-notes/pkg/types"
)

// arxivAPIBase is the arXiv query endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// Literal fallbacks for feed fields that may be absent from an entry.
const (
	fallbackTitle    = "제목 없음"
	fallbackDate     = "날짜 없음"
	fallbackAbstract = "Abstract 없음"
)

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string        `xml:"id"`
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

// FetchMetadata retrieves the metadata record for the paper referenced
// by url, which may be any accepted identifier form. It fails with
// ErrInvalidInput when no identifier can be extracted, with a
// *StatusError on a non-200 response, with ErrParse on a body that does
// not decode as an Atom feed, and with ErrNotFound when the feed
// contains no entry. Once an entry exists the result always has every
// field populated, using the literal fallbacks for absent source fields.
func FetchMetadata(ctx context.Context, client *http.Client, url string, cfg types.FetchConfig) (types.ArxivMetadata, error) {
	id := ExtractID(url)
	if id == "" {
		return types.ArxivMetadata{}, fmt.Errorf("%w: %q", ErrInvalidInput, url)
	}

	apiURL := fmt.Sprintf("%s?id_list=%s", arxivAPIBase, id)
	resp, err := httputil.Get(ctx, client, apiURL,
		httputil.Header{Key: "User-Agent", Value: cfg.UserAgent})
	if err != nil {
		return types.ArxivMetadata{}, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.ArxivMetadata{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return types.ArxivMetadata{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if len(feed.Entries) == 0 {
		return types.ArxivMetadata{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return fromEntry(feed.Entries[0]), nil
}

// fromEntry maps a feed entry to the metadata record, applying the
// per-field fallbacks.
func fromEntry(e arxivEntry) types.ArxivMetadata {
	m := types.ArxivMetadata{
		Title:       fallbackTitle,
		PaperLink:   strings.TrimSpace(e.ID),
		PublishDate: fallbackDate,
		Abstract:    NormalizeAbstract(fallbackAbstract),
	}

	if t := strings.TrimSpace(e.Title); t != "" {
		m.Title = t
	}

	// Date-only portion of the RFC 3339 published timestamp.
	if p := strings.TrimSpace(e.Published); p != "" {
		m.PublishDate = p
		if i := strings.Index(p, "T"); i >= 0 {
			m.PublishDate = p[:i]
		}
	}

	var names []string
	for _, a := range e.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			names = append(names, name)
		}
	}
	m.Authors = strings.Join(names, ", ")

	if s := strings.TrimSpace(e.Summary); s != "" {
		m.Abstract = NormalizeAbstract(s)
	}
	return m
}
