package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenReadClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buf.bin")
	content := []byte("point buffer contents")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if m.Size() != len(content) {
		t.Fatalf("Size = %d, want %d", m.Size(), len(content))
	}
	if string(m.Bytes()) != string(content) {
		t.Fatalf("Bytes mismatch: %q", m.Bytes())
	}

	p := make([]byte, 6)
	n, err := m.ReadAt(p, 6)
	if err != nil || n != 6 {
		t.Fatalf("ReadAt = %d, %v", n, err)
	}
	if string(p) != "buffer" {
		t.Fatalf("ReadAt content = %q", p)
	}

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close must be a no-op, got %v", err)
	}
	if m.Bytes() != nil {
		t.Fatal("Bytes after Close must be nil")
	}
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if m.Size() != 0 || len(m.Bytes()) != 0 {
		t.Fatal("empty file must map to an empty slice")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
