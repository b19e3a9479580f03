// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vault implements the host storage collaborator: a directory
// of notes and attachments addressed by vault-relative paths.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// Vault is the storage capability injected into the app: raw bytes in,
// note text out. WriteNote must be atomic and create-or-overwrite.
type Vault interface {
	// ReadBinary returns the raw contents of the named file.
	ReadBinary(name string) ([]byte, error)

	// WriteNote creates or overwrites the named text file.
	WriteNote(name, content string) error

	// Path returns the filesystem path of the named file.
	Path(name string) string
}

// DirVault is a Vault rooted at a filesystem directory.
type DirVault struct {
	root string
}

// NewDirVault returns a DirVault rooted at root.
func NewDirVault(root string) *DirVault {
	return &DirVault{root: root}
}

// Path resolves a vault-relative, slash-separated name to a filesystem path.
func (v *DirVault) Path(name string) string {
	return filepath.Join(v.root, filepath.FromSlash(name))
}

// ReadBinary returns the raw contents of the named file.
func (v *DirVault) ReadBinary(name string) ([]byte, error) {
	return os.ReadFile(v.Path(name))
}

// WriteNote writes content to a temp file in the destination directory
// and renames it into place, so a concurrent reader never observes a
// partially written note. Parent directories are created on demand.
func (v *DirVault) WriteNote(name, content string) error {
	dest := v.Path(name)
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".note-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.WriteString(content)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing note: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
