package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"talent-bridge/internal/domain/posting"
	"talent-bridge/internal/repository"
)

// Posting actions accepted by the jobs status endpoint.
const (
	ActionUpdateStatus  = "update_status"
	ActionUpdateDetails = "update_job_details"
	ActionDelete        = "delete"
)

type PostingUsecase interface {
	Create(ctx context.Context, p posting.JobPosting) (posting.JobPosting, error)
	ListGrouped(ctx context.Context) (map[string][]posting.JobPosting, error)
	Apply(ctx context.Context, action string, p posting.JobPosting) (posting.JobPosting, error)
}

type Posting struct {
	repo       repository.PostingRepository
	candidates repository.CandidateRepository
	logger     *log.Logger

	now func() time.Time
}

func NewPostingUsecase(repo repository.PostingRepository, candidates repository.CandidateRepository, logger *log.Logger) *Posting {
	return &Posting{repo: repo, candidates: candidates, logger: logger, now: time.Now}
}

func (u *Posting) Create(ctx context.Context, p posting.JobPosting) (posting.JobPosting, error) {
	if err := posting.Validate(p, u.now()); err != nil {
		return posting.JobPosting{}, err
	}
	p.JobID = posting.NewJobID(p.Department)
	if p.Status == "" {
		p.Status = posting.StatusActive
	}
	if p.PostedDate == "" {
		p.PostedDate = u.now().Format(posting.DeadlineLayout)
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return posting.JobPosting{}, ErrInternal
	}
	return p, nil
}

// ListGrouped returns postings keyed by department, each with its
// live submission count joined in.
func (u *Posting) ListGrouped(ctx context.Context) (map[string][]posting.JobPosting, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	counts := map[string]int{}
	if u.candidates != nil {
		counts, err = u.candidates.CountByJobID(ctx)
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("JOBS submission counts unavailable | error=%v", err)
			}
			counts = map[string]int{}
		}
	}

	grouped := make(map[string][]posting.JobPosting)
	for _, p := range items {
		p.SubmissionCount = counts[p.JobID]
		dept := p.Department
		if dept == "" {
			dept = "General"
		}
		grouped[dept] = append(grouped[dept], p)
	}
	return grouped, nil
}

// Apply dispatches one of the management actions against an existing
// posting. Unknown actions are rejected up front.
func (u *Posting) Apply(ctx context.Context, action string, p posting.JobPosting) (posting.JobPosting, error) {
	p.JobID = strings.TrimSpace(p.JobID)
	if p.JobID == "" {
		return posting.JobPosting{}, ErrInvalidInput
	}

	current, err := u.repo.GetByID(ctx, p.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return posting.JobPosting{}, ErrNotFound
		}
		return posting.JobPosting{}, ErrInternal
	}

	switch action {
	case ActionUpdateStatus:
		next := posting.Status(strings.TrimSpace(string(p.Status)))
		if next != posting.StatusActive && next != posting.StatusInactive {
			return posting.JobPosting{}, ErrInvalidInput
		}
		if err := u.repo.UpdateStatus(ctx, p.JobID, next); err != nil {
			return posting.JobPosting{}, ErrInternal
		}
		current.Status = next
		return current, nil

	case ActionUpdateDetails:
		p.Status = current.Status
		if err := posting.Validate(p, u.now()); err != nil {
			return posting.JobPosting{}, err
		}
		if err := u.repo.UpdateDetails(ctx, p); err != nil {
			return posting.JobPosting{}, ErrInternal
		}
		return p, nil

	case ActionDelete:
		if err := u.repo.Delete(ctx, p.JobID); err != nil {
			return posting.JobPosting{}, ErrInternal
		}
		return current, nil

	default:
		return posting.JobPosting{}, ErrInvalidInput
	}
}
