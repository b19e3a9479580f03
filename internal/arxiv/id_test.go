// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "testing"

func TestExtractIDVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"abstract page URL", "https://arxiv.org/abs/2404.16260", "2404.16260"},
		{"http abstract page URL", "http://arxiv.org/abs/2404.16260", "2404.16260"},
		{"PDF URL", "https://arxiv.org/pdf/2404.16260.pdf", "2404.16260"},
		{"PDF URL without extension", "https://arxiv.org/pdf/2404.16260", "2404.16260"},
		{"versioned PDF URL", "https://arxiv.org/pdf/2404.16260v2.pdf", "2404.16260"},
		{"bare id", "2404.16260", "2404.16260"},
		{"versioned id", "2404.16260v3", "2404.16260"},
		{"arXiv prefixed id", "arXiv:2404.16260", "2404.16260"},
		{"four digit number part", "1234.5678", "1234.5678"},
		{"surrounding whitespace", "  https://arxiv.org/abs/2404.16260  ", "2404.16260"},
		{"no identifier", "not a url", ""},
		{"empty input", "", ""},
		{"plain web page", "https://example.com/papers/attention", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractID(tt.input); got != tt.want {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractIDCanonicalAcrossVariants(t *testing.T) {
	variants := []string{
		"https://arxiv.org/abs/2404.16260",
		"https://arxiv.org/abs/2404.16260v1",
		"https://arxiv.org/pdf/2404.16260.pdf",
		"2404.16260",
		"2404.16260v2",
		"arXiv:2404.16260",
	}
	for _, v := range variants {
		if got := ExtractID(v); got != "2404.16260" {
			t.Errorf("ExtractID(%q) = %q, want %q", v, got, "2404.16260")
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"abstract page URL", "https://arxiv.org/abs/2404.16260", "https://arxiv.org/abs/2404.16260"},
		{"versioned abstract URL", "http://arxiv.org/abs/2404.16260v1", "https://arxiv.org/abs/2404.16260"},
		{"PDF URL", "https://arxiv.org/pdf/2404.16260v2.pdf", "https://arxiv.org/abs/2404.16260"},
		{"bare id", "2404.16260", "https://arxiv.org/abs/2404.16260"},
		{"prefixed id", "arXiv:2404.16260", "https://arxiv.org/abs/2404.16260"},
		{"unrecognized input passes through trimmed", "  not a url  ", "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.input); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
