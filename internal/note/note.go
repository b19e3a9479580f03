// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package note renders fetched paper records and extracted PDF text into
// Markdown notes with YAML frontmatter.
package note

import (
	"fmt"
	"path"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-notes/pkg/types"
)

// paperFrontmatter is the YAML block at the top of a paper note.
type paperFrontmatter struct {
	Title       string `yaml:"title"`
	ArxivID     string `yaml:"arxiv_id"`
	Link        string `yaml:"link"`
	PublishDate string `yaml:"publish_date"`
	Authors     string `yaml:"authors"`
	CitedBy     int    `yaml:"cited_by"`
	Citing      int    `yaml:"citing"`
}

// extractedFrontmatter is the YAML block at the top of an extracted-text note.
type extractedFrontmatter struct {
	SourcePDF   string `yaml:"source_pdf"`
	ExtractedAt string `yaml:"extracted_at"`
}

// Paper renders the note for a fetched paper. It returns the
// vault-relative note name (under notesDir) and the note content.
func Paper(meta types.ArxivMetadata, cit types.CitationInfo, arxivID, notesDir string) (string, string, error) {
	fm, err := yaml.Marshal(paperFrontmatter{
		Title:       meta.Title,
		ArxivID:     arxivID,
		Link:        meta.PaperLink,
		PublishDate: meta.PublishDate,
		Authors:     meta.Authors,
		CitedBy:     cit.NumCitedBy,
		Citing:      cit.NumCiting,
	})
	if err != nil {
		return "", "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", meta.Title)
	fmt.Fprintf(&b, "%s · %s\n\n", meta.Authors, meta.PublishDate)

	b.WriteString("## Abstract\n\n")
	b.WriteString(meta.Abstract)
	b.WriteString("\n")

	writePaperList(&b, "Influential citations", cit.InfluentialCitations)
	writePaperList(&b, "Influential references", cit.InfluentialReferences)

	return path.Join(notesDir, arxivID+".md"), b.String(), nil
}

// writePaperList appends a section of influential papers. Empty lists
// produce no section at all.
func writePaperList(b *strings.Builder, heading string, papers []types.InfluentialPaper) {
	if len(papers) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for _, p := range papers {
		if p.URL != "" {
			fmt.Fprintf(b, "- [%s](%s)", p.Title, p.URL)
		} else {
			fmt.Fprintf(b, "- %s", p.Title)
		}
		var details []string
		if p.Authors != "" {
			details = append(details, p.Authors)
		}
		if p.Venue != "" {
			details = append(details, p.Venue)
		}
		if p.Year > 0 {
			details = append(details, fmt.Sprintf("%d", p.Year))
		}
		if len(details) > 0 {
			fmt.Fprintf(b, " (%s)", strings.Join(details, ", "))
		}
		b.WriteString("\n")
	}
}

// Extracted renders the note wrapping the plain text extracted from a
// vault PDF. sourceName is the vault-relative PDF name; the note is
// named after its base.
func Extracted(sourceName, text, notesDir string) (string, string, error) {
	fm, err := yaml.Marshal(extractedFrontmatter{
		SourcePDF:   sourceName,
		ExtractedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString(text)
	b.WriteString("\n")

	base := strings.TrimSuffix(path.Base(sourceName), path.Ext(sourceName))
	return path.Join(notesDir, base+".md"), b.String(), nil
}
