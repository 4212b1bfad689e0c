package signedurl

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignVerify(t *testing.T) {
	s := NewSigner("secret")

	token, err := s.Sign("uploads/20250717_cv.pdf", MethodPut, 5*time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if err := s.Verify(token, "uploads/20250717_cv.pdf", MethodPut); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerify_WrongMethod(t *testing.T) {
	s := NewSigner("secret")
	token, _ := s.Sign("uploads/cv.pdf", MethodGet, time.Hour)
	if err := s.Verify(token, "uploads/cv.pdf", MethodPut); !errors.Is(err, ErrInvalidGrant) {
		t.Fatalf("a download grant must not authorize an upload, got %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	s := NewSigner("secret")
	token, _ := s.Sign("uploads/cv.pdf", MethodGet, time.Hour)
	if err := s.Verify(token, "uploads/other.pdf", MethodGet); !errors.Is(err, ErrInvalidGrant) {
		t.Fatalf("grant must be bound to its key, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	s := NewSigner("secret")
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := s.Sign("uploads/cv.pdf", MethodGet, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	s.now = time.Now
	if err := s.Verify(token, "uploads/cv.pdf", MethodGet); !errors.Is(err, ErrInvalidGrant) {
		t.Fatalf("expected expired grant rejection, got %v", err)
	}
}

func TestBuildURL(t *testing.T) {
	got := BuildURL("https://portal.example.com", "uploads/cv.pdf", "tok en")
	if !strings.HasPrefix(got, "https://portal.example.com/files/uploads/cv.pdf?grant=") {
		t.Fatalf("unexpected url: %s", got)
	}
	if strings.Contains(got, " ") {
		t.Fatalf("grant not query-escaped: %s", got)
	}
}
