package middleware

import (
	"bytes"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestMaskCredentialParams(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no query", "/api/v1/jobs", "/api/v1/jobs"},
		{"reviewer token", "/review?token=eyJhbGc.secret", "/review?token=%2A%2A%2A"},
		{"upload grant", "/files/uploads/a.pdf?grant=abc123", "/files/uploads/a.pdf?grant=%2A%2A%2A"},
		{"other params kept", "/api/v1/candidates?dept=Engineering", "/api/v1/candidates?dept=Engineering"},
		{"malformed query", "/review?token=%zz", "/review?<unparseable>"},
	}

	for _, tc := range cases {
		if got := maskCredentialParams(tc.in); got != tc.want {
			t.Fatalf("%s: maskCredentialParams(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestAccessLogMiddleware(t *testing.T) {
	var buf bytes.Buffer
	mw := NewAccessLogMiddleware(log.New(&buf, "", 0))

	app := fiber.New(fiber.Config{})
	app.Use(mw.Middleware())
	app.Get("/files/uploads/:name", func(c fiber.Ctx) error {
		if rid, _ := c.Locals(LocalRequestID).(string); rid == "" {
			t.Error("request id missing from locals")
		}
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/files/uploads/a.pdf?grant=abc123", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get(HeaderRequestID) == "" {
		t.Fatal("expected a generated request id on the response")
	}

	line := buf.String()
	if !strings.Contains(line, "portal access |") {
		t.Fatalf("unexpected log line: %q", line)
	}
	if strings.Contains(line, "abc123") {
		t.Fatalf("grant value leaked into access log: %q", line)
	}

	// A caller-supplied id is kept, not replaced.
	req = httptest.NewRequest("GET", "/files/uploads/a.pdf", nil)
	req.Header.Set(HeaderRequestID, "rid-42")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(HeaderRequestID); got != "rid-42" {
		t.Fatalf("expected rid-42 echoed back, got %q", got)
	}
}
