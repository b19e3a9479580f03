// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package app composes the metadata-import and PDF-extraction pipelines
// over an injected capability bundle (vault storage, clipboard, HTTP
// transport) with an explicit startup/shutdown lifecycle. The two
// pipelines share no state; they meet only here, at the command level.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/paper-notes/internal/arxiv"
	"github.com/pdiddy/paper-notes/internal/citations"
	"github.com/pdiddy/paper-notes/internal/note"
	"github.com/pdiddy/paper-notes/internal/pdftext"
	"github.com/pdiddy/paper-notes/internal/vault"
	"github.com/pdiddy/paper-notes/pkg/types"
)

// Clipboard reads the system clipboard.
type Clipboard interface {
	ReadText() (string, error)
}

// Capabilities bundles the host facilities the app depends on.
type Capabilities struct {
	Vault     vault.Vault
	Clipboard Clipboard
	Client    *http.Client
}

// App runs the import and extraction operations. Each operation builds
// its records fresh per call; nothing is cached between invocations.
type App struct {
	cfg  types.Config
	caps Capabilities
	w    io.Writer
}

// New builds an App from the configuration and capability bundle.
// Progress and warnings are written to w.
func New(cfg types.Config, caps Capabilities, w io.Writer) *App {
	return &App{cfg: cfg, caps: caps, w: w}
}

// Startup validates the capability bundle and fills in the default HTTP
// client when none was injected.
func (a *App) Startup(ctx context.Context) error {
	if a.caps.Vault == nil {
		return fmt.Errorf("no vault configured")
	}
	if a.caps.Client == nil {
		a.caps.Client = &http.Client{Timeout: a.cfg.Fetch.Timeout}
	}
	return nil
}

// Shutdown releases held resources. The app holds none today; the method
// completes the lifecycle pair for hosts that expect one.
func (a *App) Shutdown() error { return nil }

// ImportPaper fetches metadata and citation statistics for the paper
// referenced by url and writes the rendered note into the vault. It
// returns the vault-relative note name. Metadata errors propagate;
// citation retrieval is best-effort and never blocks the import.
func (a *App) ImportPaper(ctx context.Context, url string) (string, error) {
	meta, err := arxiv.FetchMetadata(ctx, a.caps.Client, url, a.cfg.Fetch)
	if err != nil {
		return "", err
	}

	id := arxiv.ExtractID(url)
	cit := citations.Fetch(ctx, a.caps.Client, id, a.cfg.Fetch, a.w)

	name, content, err := note.Paper(meta, cit, id, a.cfg.Vault.NotesDir)
	if err != nil {
		return "", err
	}
	if err := a.caps.Vault.WriteNote(name, content); err != nil {
		return "", fmt.Errorf("writing note: %w", err)
	}
	return name, nil
}

// ImportFromClipboard imports the paper whose URL is currently on the
// system clipboard.
func (a *App) ImportFromClipboard(ctx context.Context) (string, error) {
	if a.caps.Clipboard == nil {
		return "", fmt.Errorf("no clipboard available")
	}
	text, err := a.caps.Clipboard.ReadText()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return a.ImportPaper(ctx, text)
}

// BatchResult holds the outcome of a batch import run.
type BatchResult struct {
	Imported int
	Failed   int
}

// Total returns the total number of URLs processed.
func (r BatchResult) Total() int {
	return r.Imported + r.Failed
}

// HasFailures reports whether any imports failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ImportBatch imports multiple papers, printing per-item status and
// returning a summary. It continues after individual failures.
func (a *App) ImportBatch(ctx context.Context, urls []string) BatchResult {
	var result BatchResult
	for _, u := range urls {
		name, err := a.ImportPaper(ctx, u)
		if err != nil {
			fmt.Fprintf(a.w, "failed:   %s (%v)\n", u, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(a.w, "imported: %s\n", name)
		result.Imported++
	}
	fmt.Fprintf(a.w, "\nBatch summary: %d imported, %d failed (total: %d)\n",
		result.Imported, result.Failed, result.Total())
	return result
}

// ExtractPDF extracts the plain text of a PDF already stored in the
// vault and writes it to a companion note. It returns the vault-relative
// note name.
func (a *App) ExtractPDF(ctx context.Context, name string) (string, error) {
	data, err := a.caps.Vault.ReadBinary(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}

	text, err := pdftext.Extract(data)
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", name, err)
	}

	noteName, content, err := note.Extracted(name, text, a.cfg.Vault.NotesDir)
	if err != nil {
		return "", err
	}
	if err := a.caps.Vault.WriteNote(noteName, content); err != nil {
		return "", fmt.Errorf("writing note: %w", err)
	}
	return noteName, nil
}
