// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ArxivMetadata holds the bibliographic record fetched from the arXiv
// export API for a single paper. Every field is a display-ready string;
// missing source fields are filled with literal fallbacks at fetch time,
// so a constructed record never has absent values.
type ArxivMetadata struct {
	// Title is the paper title, whitespace-trimmed.
	Title string `json:"title" yaml:"title"`

	// PaperLink is the canonical abstract-page URL from the feed entry.
	PaperLink string `json:"paper_link" yaml:"paper_link"`

	// PublishDate is the date-only portion of the published timestamp
	// (e.g. "2024-04-25").
	PublishDate string `json:"publish_date" yaml:"publish_date"`

	// Authors is the comma-joined list of author names in source order.
	Authors string `json:"authors" yaml:"authors"`

	// Abstract is the paragraph-normalized abstract text.
	Abstract string `json:"abstract" yaml:"abstract"`
}

// CitationInfo holds citation statistics for a paper. The zero value is
// the well-defined "no citation data" record: citation retrieval is
// best-effort and degrades to it on any failure.
type CitationInfo struct {
	// NumCitedBy is the number of papers citing this one.
	NumCitedBy int `json:"num_cited_by" yaml:"num_cited_by"`

	// NumCiting is the number of papers this one cites.
	NumCiting int `json:"num_citing" yaml:"num_citing"`

	// InfluentialCitations lists citing papers the citation source flags
	// as influential, in source order.
	InfluentialCitations []InfluentialPaper `json:"influential_citations" yaml:"influential_citations"`

	// InfluentialReferences lists referenced papers flagged as
	// influential, in source order.
	InfluentialReferences []InfluentialPaper `json:"influential_references" yaml:"influential_references"`
}

// InfluentialPaper is a citing or cited work flagged by the citation
// source as significant to the paper's impact.
type InfluentialPaper struct {
	// PaperID is the citation source's own identifier for the paper.
	PaperID string `json:"paper_id" yaml:"paper_id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// URL is the citation source's landing page for the paper.
	URL string `json:"url" yaml:"url"`

	// Venue is the publication venue, if known.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// Year is the publication year, 0 when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Authors is the comma-joined list of author names.
	Authors string `json:"authors" yaml:"authors"`

	// ArxivID is the paper's arXiv identifier, if any.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// DOI is the paper's DOI, if any.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// IsInfluential is true by construction for every retained record.
	IsInfluential bool `json:"is_influential" yaml:"is_influential"`

	// CitationCount is the paper's own citation count.
	CitationCount int `json:"citation_count" yaml:"citation_count"`

	// Intent lists the citation intents assigned by the source
	// (e.g. "methodology", "background").
	Intent []string `json:"intent,omitempty" yaml:"intent,omitempty"`
}
