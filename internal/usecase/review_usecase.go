package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"talent-bridge/internal/config"
	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/mail"
	"talent-bridge/internal/pkg/reviewtoken"
	"talent-bridge/internal/repository"
)

// reviewTokenKeyPrefix namespaces issued-token registry entries.
const reviewTokenKeyPrefix = "review:token:"

// TokenRegistry records issued review tokens so revocation can be
// checked on every validate. The Redis cache satisfies it.
type TokenRegistry interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

type ReviewLink struct {
	ResumeID      string    `json:"resume_id"`
	ReviewerEmail string    `json:"reviewer_email"`
	ReviewURL     string    `json:"review_url"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// ReviewContext is what a validated token unlocks: the candidate the
// reviewer is being asked to judge.
type ReviewContext struct {
	Candidate     candidate.Candidate `json:"candidate"`
	ReviewerEmail string              `json:"reviewer_email"`
	ExpiresAt     time.Time           `json:"expires_at"`
}

type ReviewUsecase interface {
	CreateLink(ctx context.Context, resumeID, reviewerEmail string, ccEmails []string) (ReviewLink, error)
	ValidateToken(ctx context.Context, token string) (ReviewContext, error)
	RevokeToken(ctx context.Context, token string) error
}

type Review struct {
	tokens     reviewtoken.Service
	registry   TokenRegistry
	candidates repository.CandidateRepository
	mailer     mail.Sender
	app        config.AppConfig
	logger     *log.Logger
}

func NewReviewUsecase(tokens reviewtoken.Service, registry TokenRegistry, candidates repository.CandidateRepository, mailer mail.Sender, app config.AppConfig, logger *log.Logger) *Review {
	return &Review{
		tokens:     tokens,
		registry:   registry,
		candidates: candidates,
		mailer:     mailer,
		app:        app,
		logger:     logger,
	}
}

// CreateLink issues a token bound to one resume and reviewer, records
// it in the registry, and emails the reviewer. Registry write failure
// aborts the whole operation: a token we cannot later revoke must not
// go out.
func (u *Review) CreateLink(ctx context.Context, resumeID, reviewerEmail string, ccEmails []string) (ReviewLink, error) {
	resumeID = strings.TrimSpace(resumeID)
	reviewerEmail = strings.TrimSpace(reviewerEmail)
	if resumeID == "" || reviewerEmail == "" || !strings.Contains(reviewerEmail, "@") {
		return ReviewLink{}, ErrInvalidInput
	}

	c, err := u.candidates.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ReviewLink{}, ErrNotFound
		}
		return ReviewLink{}, ErrInternal
	}

	token, expiresAt, err := u.tokens.Generate(resumeID, reviewerEmail)
	if err != nil {
		return ReviewLink{}, ErrInternal
	}
	claims, err := u.tokens.Validate(token)
	if err != nil {
		return ReviewLink{}, ErrInternal
	}

	ttl := time.Until(expiresAt)
	if err := u.registry.Set(ctx, reviewTokenKeyPrefix+claims.ID, resumeID, ttl); err != nil {
		if u.logger != nil {
			u.logger.Printf("REVIEW registry write failed | resume_id=%s error=%v", resumeID, err)
		}
		return ReviewLink{}, ErrInternal
	}

	reviewURL := u.app.ReviewPageURL + "?token=" + url.QueryEscape(token)

	if u.mailer != nil {
		msg := mail.ReviewRequestMessage(reviewerEmail, ccEmails, c.FullName(), c.Department, reviewURL)
		if err := u.mailer.Send(ctx, msg); err != nil {
			if u.logger != nil {
				u.logger.Printf("REVIEW email failed | resume_id=%s reviewer=%s error=%v", resumeID, reviewerEmail, err)
			}
			return ReviewLink{}, ErrInternal
		}
	}

	return ReviewLink{
		ResumeID:      resumeID,
		ReviewerEmail: reviewerEmail,
		ReviewURL:     reviewURL,
		ExpiresAt:     expiresAt,
	}, nil
}

// ValidateToken checks signature and expiry, then the registry: a
// token absent from the registry has been revoked (or was never
// issued here) and is refused even when cryptographically valid.
func (u *Review) ValidateToken(ctx context.Context, token string) (ReviewContext, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ReviewContext{}, ErrInvalidInput
	}

	claims, err := u.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, reviewtoken.ErrTokenExpired) {
			return ReviewContext{}, ErrTokenExpired
		}
		return ReviewContext{}, ErrUnauthorized
	}

	ok, err := u.registry.Exists(ctx, reviewTokenKeyPrefix+claims.ID)
	if err != nil {
		return ReviewContext{}, ErrInternal
	}
	if !ok {
		return ReviewContext{}, ErrTokenRevoked
	}

	c, err := u.candidates.GetByID(ctx, claims.ResumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ReviewContext{}, ErrNotFound
		}
		return ReviewContext{}, ErrInternal
	}

	return ReviewContext{
		Candidate:     candidate.Normalize(c),
		ReviewerEmail: claims.ReviewerEmail,
		ExpiresAt:     claims.ExpiresAt.Time,
	}, nil
}

// RevokeToken drops the registry entry so the link stops working
// before its natural expiry.
func (u *Review) RevokeToken(ctx context.Context, token string) error {
	claims, err := u.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, reviewtoken.ErrTokenExpired) {
			return nil
		}
		return ErrUnauthorized
	}
	if err := u.registry.Delete(ctx, reviewTokenKeyPrefix+claims.ID); err != nil {
		return ErrInternal
	}
	return nil
}
