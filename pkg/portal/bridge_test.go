package portal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"talent-bridge/internal/domain/candidate"
)

func TestBridge_NoTokenMakesNoRequests(t *testing.T) {
	// A nil client proves the point: any network attempt would panic.
	b := NewBridge(nil, "")

	if b.State() != StateAccessDenied {
		t.Fatalf("expected access denied, got %q", b.State())
	}
	if _, err := b.Validate(context.Background()); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if err := b.Decide(context.Background(), string(candidate.StatusRejected)); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestBridge_DecideBeforeValidate(t *testing.T) {
	b := NewBridge(nil, "some-token")

	if err := b.Decide(context.Background(), string(candidate.StatusRejected)); !errors.Is(err, ErrBridgeNotReady) {
		t.Fatalf("expected ErrBridgeNotReady, got %v", err)
	}
}

func TestBridge_FullReviewFlow(t *testing.T) {
	decisions := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/review/validate":
			if r.URL.Query().Get("token") != "tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"status":"error","message":"invalid token"}`))
				return
			}
			w.Write([]byte(`{"status":"success","message":"token valid","data":{"candidate":{"resume_id":"r1","first_name":"Priya","status":"Under Review"}}}`))
		case "/api/v1/candidates/status/review":
			decisions++
			w.Write([]byte(`{"status":"success","message":"status updated"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	b := NewBridge(NewClient(srv.URL), "tok-1")

	c, err := b.Validate(context.Background())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.ResumeID != "r1" || b.State() != StateReady {
		t.Fatalf("unexpected state after validate: %v %q", c, b.State())
	}

	// Reviewers get exactly two verdicts; anything else stays local.
	if err := b.Decide(context.Background(), "Advanced for Interview"); !errors.Is(err, ErrBadDecision) {
		t.Fatalf("expected ErrBadDecision, got %v", err)
	}
	if decisions != 0 {
		t.Fatalf("rejected decision must not reach the server, got %d calls", decisions)
	}

	if err := b.Decide(context.Background(), string(candidate.StatusAdvancedByHOD)); err != nil {
		t.Fatalf("decide: %v", err)
	}
	if b.State() != StateCompleted {
		t.Fatalf("expected completed, got %q", b.State())
	}
	if got := b.Candidate().Status; got != candidate.StatusAdvancedByHOD {
		t.Fatalf("unexpected local status: %q", got)
	}

	if err := b.Decide(context.Background(), string(candidate.StatusRejected)); !errors.Is(err, ErrDecisionComplete) {
		t.Fatalf("expected ErrDecisionComplete, got %v", err)
	}
	if decisions != 1 {
		t.Fatalf("expected exactly one decision call, got %d", decisions)
	}
}

func TestBridge_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","message":"review link revoked"}`))
	}))
	defer srv.Close()

	b := NewBridge(NewClient(srv.URL), "stale-token")
	if _, err := b.Validate(context.Background()); err == nil {
		t.Fatal("expected validation to fail")
	}
	if b.State() != StateInvalid {
		t.Fatalf("expected invalid state, got %q", b.State())
	}
}

func TestInitiateReview(t *testing.T) {
	var body struct {
		ResumeID      string   `json:"resume_id"`
		CCEmails      []string `json:"cc_emails"`
		CandidateName string   `json:"candidate_name"`
		Department    string   `json:"department"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decodeJSONBody(t, r, &body)
		w.Write([]byte(`{"status":"success","message":"review link sent"}`))
	}))
	defer srv.Close()

	cand := candidate.Candidate{
		ResumeID:   "r1",
		FirstName:  "Priya",
		LastName:   "Sharma",
		Department: "Engineering",
	}
	msg, err := InitiateReview(context.Background(), NewClient(srv.URL), cand, "hod@example.com", "a@x.com, b@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Review request sent to hod@example.com" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if body.ResumeID != "r1" || body.CandidateName != "Priya Sharma" || body.Department != "Engineering" {
		t.Fatalf("unexpected request body: %+v", body)
	}
	if len(body.CCEmails) != 2 || body.CCEmails[0] != "a@x.com" || body.CCEmails[1] != "b@x.com" {
		t.Fatalf("unexpected cc list: %v", body.CCEmails)
	}

	if _, err := InitiateReview(context.Background(), nil, cand, "", ""); err == nil {
		t.Fatal("expected missing reviewer email to fail")
	}
}
