package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"talent-bridge/internal/config"
	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/pkg/reviewtoken"
)

func reviewFixture(t *testing.T) (*Review, *mockCandidateRepo, *mockRegistry, *mockMailer, reviewtoken.Service) {
	t.Helper()
	repo := &mockCandidateRepo{items: []candidate.Candidate{
		{ResumeID: "r1", FirstName: "Priya", LastName: "Sharma", Email: "priya@example.com", Department: "Engineering"},
	}}
	registry := &mockRegistry{}
	mailer := &mockMailer{}
	tokens := reviewtoken.NewHMACService("secret", 240*time.Hour)
	app := config.AppConfig{ReviewPageURL: "https://portal.example.com/review"}
	uc := NewReviewUsecase(tokens, registry, repo, mailer, app, nil)
	return uc, repo, registry, mailer, tokens
}

func TestReviewCreateLink_EmailsTokenizedLink(t *testing.T) {
	uc, _, registry, mailer, _ := reviewFixture(t)

	link, err := uc.CreateLink(context.Background(), "r1", "hod@example.com", []string{"cc@example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(link.ReviewURL, "https://portal.example.com/review?token=") {
		t.Fatalf("unexpected review url: %s", link.ReviewURL)
	}
	if len(registry.entries) != 1 {
		t.Fatalf("token not registered")
	}
	if len(mailer.sent) != 1 || mailer.sent[0].To[0] != "hod@example.com" {
		t.Fatalf("reviewer email not sent: %+v", mailer.sent)
	}
	if len(mailer.sent[0].CC) != 1 {
		t.Fatalf("cc list dropped")
	}
}

func TestReviewCreateLink_RegistryFailureAborts(t *testing.T) {
	uc, _, registry, mailer, _ := reviewFixture(t)
	registry.setErr = errors.New("redis down")

	if _, err := uc.CreateLink(context.Background(), "r1", "hod@example.com", nil); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("no email may go out when the token cannot be registered")
	}
}

func TestReviewValidateToken_OK(t *testing.T) {
	uc, _, _, _, _ := reviewFixture(t)

	link, err := uc.CreateLink(context.Background(), "r1", "hod@example.com", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	token := strings.TrimPrefix(link.ReviewURL, "https://portal.example.com/review?token=")

	rc, err := uc.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if rc.Candidate.ResumeID != "r1" {
		t.Fatalf("wrong candidate: %+v", rc.Candidate)
	}
	if rc.ReviewerEmail != "hod@example.com" {
		t.Fatalf("wrong reviewer: %s", rc.ReviewerEmail)
	}
}

func TestReviewValidateToken_RevokedAndForeign(t *testing.T) {
	uc, _, registry, _, tokens := reviewFixture(t)

	// A cryptographically valid token that was never registered here
	// (or has been revoked) is refused.
	token, _, err := tokens.Generate("r1", "hod@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := uc.ValidateToken(context.Background(), token); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}

	// Registry errors fail closed.
	registry.getErr = errors.New("redis down")
	if _, err := uc.ValidateToken(context.Background(), token); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal on registry failure, got %v", err)
	}
}

func TestReviewValidateToken_Expired(t *testing.T) {
	repo := &mockCandidateRepo{items: []candidate.Candidate{{ResumeID: "r1"}}}
	tokens := reviewtoken.NewHMACService("secret", 240*time.Hour)
	uc := NewReviewUsecase(tokens, &mockRegistry{}, repo, nil, config.AppConfig{}, nil)

	// Hand-craft a token that expired an hour ago, signed with the
	// same secret.
	expired, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, reviewtoken.Claims{
		ResumeID:      "r1",
		ReviewerEmail: "hod@example.com",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        "tok-1",
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := uc.ValidateToken(context.Background(), expired); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestReviewRevokeToken(t *testing.T) {
	uc, _, _, _, _ := reviewFixture(t)

	link, err := uc.CreateLink(context.Background(), "r1", "hod@example.com", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	token := strings.TrimPrefix(link.ReviewURL, "https://portal.example.com/review?token=")

	if err := uc.RevokeToken(context.Background(), token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := uc.ValidateToken(context.Background(), token); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected revoked after revocation, got %v", err)
	}
}
