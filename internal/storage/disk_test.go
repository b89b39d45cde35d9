package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, field, name, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm() error = %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "img")
	if _, err := New(dir); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("upload dir not created: %v", err)
	}
	// Idempotent on an existing directory.
	if _, err := New(dir); err != nil {
		t.Fatalf("New() on existing dir error = %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	fh := fileHeader(t, "surat_permohonan", "permohonan.pdf", "dummy pdf bytes")
	path, err := store.Save(fh)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Errorf("Save() path %q lost the original extension", path)
	}
	if !strings.HasPrefix(path, filepath.ToSlash(dir)) {
		t.Errorf("Save() path %q not under store dir %q", path, dir)
	}
	data, err := os.ReadFile(filepath.FromSlash(path))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "dummy pdf bytes" {
		t.Errorf("stored content = %q, want %q", data, "dummy pdf bytes")
	}
}

func TestSave_UniqueNames(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	fh := fileHeader(t, "gambar_ruangan", "lab.png", "img")
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		path, err := store.Save(fh)
		if err != nil {
			t.Fatalf("Save() #%d error = %v", i, err)
		}
		if seen[path] {
			t.Fatalf("Save() reused path %q", path)
		}
		seen[path] = true
	}
}
