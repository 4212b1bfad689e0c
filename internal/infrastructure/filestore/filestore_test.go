package filestore

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestNewKey_SanitizesFilename(t *testing.T) {
	now := time.Date(2025, time.July, 17, 21, 49, 58, 0, time.UTC)
	key := NewKey("../weird name (final).pdf", now)
	if key != "uploads/20250717_214958_weird_name__final_.pdf" {
		t.Fatalf("unexpected key: %s", key)
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType("resume.PDF"); got != "application/pdf" {
		t.Fatalf("unexpected type: %s", got)
	}
	if got := ContentType("notes.xyz"); got != "application/octet-stream" {
		t.Fatalf("unexpected fallback: %s", got)
	}
}

func TestPutOpenRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := s.Put("uploads/1_resume.pdf", strings.NewReader("contents")); err != nil {
		t.Fatalf("put: %v", err)
	}
	f, err := s.Open("uploads/1_resume.pdf")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(body) != "contents" {
		t.Fatalf("unexpected body: %q", body)
	}

	if _, err := s.LocalPath("uploads/1_resume.pdf"); err != nil {
		t.Fatalf("local path: %v", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Open("uploads/absent.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPath_RejectsTraversal(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	for _, key := range []string{"", "../etc/passwd", "/etc/passwd", "uploads/../../x"} {
		if err := s.Put(key, strings.NewReader("x")); !errors.Is(err, ErrBadKey) {
			t.Fatalf("key %q: expected ErrBadKey, got %v", key, err)
		}
	}
}
