package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/mail"
	"talent-bridge/internal/repository"
)

type CandidateUsecase interface {
	List(ctx context.Context) ([]candidate.Candidate, error)
	Get(ctx context.Context, resumeID string) (candidate.Candidate, error)
	UpdateStatus(ctx context.Context, resumeID, status string) (candidate.Candidate, error)
}

type Candidate struct {
	repo   repository.CandidateRepository
	mailer mail.Sender
	logger *log.Logger
}

func NewCandidateUsecase(repo repository.CandidateRepository, mailer mail.Sender, logger *log.Logger) *Candidate {
	return &Candidate{repo: repo, mailer: mailer, logger: logger}
}

// List returns all submissions normalized and newest first. Filtering
// stays client-side, the dashboard slices this set locally.
func (u *Candidate) List(ctx context.Context) ([]candidate.Candidate, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return candidate.SortNewestFirst(candidate.NormalizeAll(items)), nil
}

func (u *Candidate) Get(ctx context.Context, resumeID string) (candidate.Candidate, error) {
	resumeID = strings.TrimSpace(resumeID)
	if resumeID == "" {
		return candidate.Candidate{}, ErrInvalidInput
	}
	c, err := u.repo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Candidate{}, ErrNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}
	return candidate.Normalize(c), nil
}

// UpdateStatus persists the decision first, then emails the candidate.
// A failed email never rolls the status back, it is logged and dropped.
func (u *Candidate) UpdateStatus(ctx context.Context, resumeID, status string) (candidate.Candidate, error) {
	resumeID = strings.TrimSpace(resumeID)
	if resumeID == "" {
		return candidate.Candidate{}, ErrInvalidInput
	}
	next, ok := candidate.KnownStatus(status)
	if !ok {
		return candidate.Candidate{}, ErrInvalidInput
	}

	c, err := u.repo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Candidate{}, ErrNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}

	if err := u.repo.UpdateStatus(ctx, resumeID, next); err != nil {
		return candidate.Candidate{}, ErrInternal
	}
	c.Status = next

	if u.mailer != nil && c.Email != "" {
		msg := mail.StatusMessage(c, next)
		if err := u.mailer.Send(ctx, msg); err != nil && u.logger != nil {
			u.logger.Printf("STATUS email failed | resume_id=%s status=%s error=%v", resumeID, next, err)
		}
	}
	return candidate.Normalize(c), nil
}
