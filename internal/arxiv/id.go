// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"regexp"
	"strings"
)

// arxivAbsBase is the canonical abstract-page URL prefix.
const arxivAbsBase = "https://arxiv.org/abs/"

// idPattern matches modern arXiv identifiers, optionally versioned:
// "2404.16260", "2404.16260v2". It is unanchored so identifiers embedded
// in abstract-page and PDF URLs match too.
var idPattern = regexp.MustCompile(`(\d{4}\.\d{4,5})(v\d+)?`)

// ExtractID pulls the paper identifier from any accepted input form:
// abstract-page URL, PDF URL, bare identifier, versioned identifier, or
// an "arXiv:"-prefixed identifier. The version suffix is stripped so
// every variant of one paper yields the same canonical string. Returns
// "" when no identifier pattern matches; callers treat that as invalid
// input, not as a failure.
func ExtractID(input string) string {
	m := idPattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return ""
	}
	return m[1]
}

// NormalizeURL canonicalizes any accepted paper reference into the
// abstract-page form "https://arxiv.org/abs/<id>". Inputs with no
// recognizable identifier are returned trimmed as given, since there is
// nothing to canonicalize.
func NormalizeURL(input string) string {
	id := ExtractID(input)
	if id == "" {
		return strings.TrimSpace(input)
	}
	return arxivAbsBase + id
}
