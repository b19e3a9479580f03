// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import "testing"

func TestExtractRejectsNonPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"plain text", []byte("this is not a pdf")},
		{"truncated header", []byte("%PDF-1.7")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Extract(tt.data); err == nil {
				t.Error("expected error for non-PDF input")
			}
		})
	}
}
