// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteNoteAndReadBack(t *testing.T) {
	v := NewDirVault(t.TempDir())

	if err := v.WriteNote("papers/2404.16260.md", "# Title\n"); err != nil {
		t.Fatalf("WriteNote: %v", err)
	}

	data, err := v.ReadBinary("papers/2404.16260.md")
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if string(data) != "# Title\n" {
		t.Errorf("content = %q, want %q", data, "# Title\n")
	}
}

func TestWriteNoteOverwrites(t *testing.T) {
	v := NewDirVault(t.TempDir())

	if err := v.WriteNote("note.md", "old"); err != nil {
		t.Fatalf("WriteNote: %v", err)
	}
	if err := v.WriteNote("note.md", "new"); err != nil {
		t.Fatalf("WriteNote overwrite: %v", err)
	}

	data, err := v.ReadBinary("note.md")
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestWriteNoteCreatesParentDirs(t *testing.T) {
	root := t.TempDir()
	v := NewDirVault(root)

	if err := v.WriteNote("a/b/c.md", "deep"); err != nil {
		t.Fatalf("WriteNote: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "a", "b", "c.md")); err != nil {
		t.Errorf("expected note on disk: %v", err)
	}
}

func TestWriteNoteLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	v := NewDirVault(root)

	if err := v.WriteNote("note.md", "content"); err != nil {
		t.Fatalf("WriteNote: %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "note.md" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestReadBinaryMissingFile(t *testing.T) {
	v := NewDirVault(t.TempDir())
	if _, err := v.ReadBinary("nope.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPath(t *testing.T) {
	v := NewDirVault("/vault")
	want := filepath.Join("/vault", "papers", "x.md")
	if got := v.Path("papers/x.md"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}
