// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citations retrieves citation statistics from the Semantic
// Scholar API. Retrieval is best-effort: citation data is optional
// context for a paper note, so every failure mode collapses to the
// zero-value record instead of propagating to the caller.
package citations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/paper-notes/internal/httputil"
	"github.com/pdiddy/paper-notes/pkg/types"
)

// semanticAPIBase is the Semantic Scholar paper endpoint. Declared as a
// var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/v1/paper"

// Fetch returns citation statistics for the given arXiv identifier. It
// never fails: transport errors, non-200 statuses, and malformed bodies
// are reported as a warning on w and degrade to the zero-value record.
func Fetch(ctx context.Context, client *http.Client, arxivID string, cfg types.FetchConfig, w io.Writer) types.CitationInfo {
	info, err := fetch(ctx, client, arxivID, cfg)
	if err != nil {
		fmt.Fprintf(w, "warning: citation fetch failed: %v\n", err)
		return types.CitationInfo{}
	}
	return info
}

func fetch(ctx context.Context, client *http.Client, arxivID string, cfg types.FetchConfig) (types.CitationInfo, error) {
	apiURL := fmt.Sprintf("%s/arXiv:%s", semanticAPIBase, arxivID)

	headers := []httputil.Header{{Key: "User-Agent", Value: cfg.UserAgent}}
	if cfg.SemanticScholarAPIKey != "" {
		headers = append(headers, httputil.Header{Key: "x-api-key", Value: cfg.SemanticScholarAPIKey})
	}

	resp, err := httputil.Get(ctx, client, apiURL, headers...)
	if err != nil {
		return types.CitationInfo{}, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.CitationInfo{}, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return types.CitationInfo{}, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}

	return types.CitationInfo{
		NumCitedBy:            sr.NumCitedBy,
		NumCiting:             sr.NumCiting,
		InfluentialCitations:  filterInfluential(sr.Citations),
		InfluentialReferences: filterInfluential(sr.References),
	}, nil
}

// Semantic Scholar API JSON structures.
type semanticResponse struct {
	NumCitedBy int             `json:"numCitedBy"`
	NumCiting  int             `json:"numCiting"`
	Citations  []semanticPaper `json:"citations"`
	References []semanticPaper `json:"references"`
}

type semanticPaper struct {
	PaperID       string           `json:"paperId"`
	Title         string           `json:"title"`
	URL           string           `json:"url"`
	Venue         string           `json:"venue"`
	Year          int              `json:"year"`
	Authors       []semanticAuthor `json:"authors"`
	ArxivID       string           `json:"arxivId"`
	DOI           string           `json:"doi"`
	IsInfluential bool             `json:"isInfluential"`
	CitationCount int              `json:"citationCount"`
	Intent        []string         `json:"intent"`
}

type semanticAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}

// filterInfluential keeps only the papers the source flags as
// influential, preserving input order. A nil list yields an empty result.
func filterInfluential(papers []semanticPaper) []types.InfluentialPaper {
	out := make([]types.InfluentialPaper, 0, len(papers))
	for _, p := range papers {
		if !p.IsInfluential {
			continue
		}
		names := make([]string, 0, len(p.Authors))
		for _, a := range p.Authors {
			names = append(names, a.Name)
		}
		out = append(out, types.InfluentialPaper{
			PaperID:       p.PaperID,
			Title:         p.Title,
			URL:           p.URL,
			Venue:         p.Venue,
			Year:          p.Year,
			Authors:       strings.Join(names, ", "),
			ArxivID:       p.ArxivID,
			DOI:           p.DOI,
			IsInfluential: true,
			CitationCount: p.CitationCount,
			Intent:        p.Intent,
		})
	}
	return out
}
