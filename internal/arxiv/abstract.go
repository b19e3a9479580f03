// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"regexp"
	"strings"
)

var (
	newlineRuns    = regexp.MustCompile(`\n+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// NormalizeAbstract produces stable, render-ready paragraph breaks from
// the feed's inconsistently wrapped summary field. Runs of newlines
// become a single paragraph break, whitespace runs inside a paragraph
// collapse to one space, each paragraph is trimmed, and paragraphs are
// rejoined with a blank line between them. The operation is idempotent.
func NormalizeAbstract(s string) string {
	s = newlineRuns.ReplaceAllString(strings.TrimSpace(s), "\n")
	paragraphs := strings.Split(s, "\n")
	for i, p := range paragraphs {
		paragraphs[i] = strings.TrimSpace(whitespaceRuns.ReplaceAllString(p, " "))
	}
	return strings.Join(paragraphs, "\n\n")
}
