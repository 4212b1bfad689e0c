package usecase

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"talent-bridge/internal/config"
	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/infrastructure/filestore"
	"talent-bridge/internal/mail"
	"talent-bridge/internal/pkg/signedurl"
	"talent-bridge/internal/repository"
)

// SubmissionInput is the application form payload.
type SubmissionInput struct {
	Name       string
	Email      string
	Phone      string
	Gender     string
	Address    string
	LinkedIn   string
	Marks12    string
	Pass12     string
	GradMarks  string
	GradYear   string
	Department string
	Experience string
	WorkPref   string
	Skills     []string
	JobID      string
	JobTitle   string
	Filename   string
}

// SubmissionResult hands the browser everything it needs for the
// second phase: a presigned PUT for the file and the durable GET link
// stored alongside the record.
type SubmissionResult struct {
	ResumeID    string `json:"resume_id"`
	UploadURL   string `json:"upload_url"`
	ResumeURL   string `json:"resume_url"`
	ContentType string `json:"content_type"`
}

type ResumeUsecase interface {
	RegisterSubmission(ctx context.Context, in SubmissionInput) (SubmissionResult, error)
	CompleteUpload(ctx context.Context, storageKey string) error
}

// ResumeProcessor is the post-upload enrichment hook.
type ResumeProcessor interface {
	Process(ctx context.Context, resumeID string) error
}

type Resume struct {
	repo      repository.CandidateRepository
	signer    *signedurl.Signer
	mailer    mail.Sender
	processor ResumeProcessor
	app       config.AppConfig
	files     config.FilesConfig
	logger    *log.Logger

	now func() time.Time
}

func NewResumeUsecase(repo repository.CandidateRepository, signer *signedurl.Signer, mailer mail.Sender, processor ResumeProcessor, app config.AppConfig, files config.FilesConfig, logger *log.Logger) *Resume {
	return &Resume{
		repo:      repo,
		signer:    signer,
		mailer:    mailer,
		processor: processor,
		app:       app,
		files:     files,
		logger:    logger,
		now:       time.Now,
	}
}

var allowedResumeExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// RegisterSubmission creates the record and mints the presigned URL
// pair. The record exists before the file does: status stays Uploaded
// until the browser finishes the PUT and processing promotes it.
func (u *Resume) RegisterSubmission(ctx context.Context, in SubmissionInput) (SubmissionResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Filename = strings.TrimSpace(in.Filename)
	if in.Name == "" || in.Email == "" || in.Filename == "" {
		return SubmissionResult{}, ErrInvalidInput
	}
	if !strings.Contains(in.Email, "@") {
		return SubmissionResult{}, ErrInvalidInput
	}
	if !allowedResumeExts[strings.ToLower(filepath.Ext(in.Filename))] {
		return SubmissionResult{}, ErrInvalidInput
	}

	now := u.now()
	first, last := candidate.SplitFullName(in.Name)
	resumeID := uuid.NewString()
	storageKey := filestore.NewKey(in.Filename, now)

	uploadGrant, err := u.signer.Sign(storageKey, signedurl.MethodPut, u.files.UploadTTL)
	if err != nil {
		return SubmissionResult{}, ErrInternal
	}
	downloadGrant, err := u.signer.Sign(storageKey, signedurl.MethodGet, u.files.DownloadTTL)
	if err != nil {
		return SubmissionResult{}, ErrInternal
	}
	uploadURL := signedurl.BuildURL(u.app.PublicBaseURL, storageKey, uploadGrant)
	resumeURL := signedurl.BuildURL(u.app.PublicBaseURL, storageKey, downloadGrant)

	c := candidate.Candidate{
		ResumeID:    resumeID,
		FirstName:   first,
		LastName:    last,
		Email:       in.Email,
		Phone:       strings.TrimSpace(in.Phone),
		Gender:      candidate.Gender(strings.TrimSpace(in.Gender)),
		Address:     strings.TrimSpace(in.Address),
		LinkedIn:    strings.TrimSpace(in.LinkedIn),
		Marks12:     strings.TrimSpace(in.Marks12),
		Pass12:      strings.TrimSpace(in.Pass12),
		GradMarks:   strings.TrimSpace(in.GradMarks),
		GradYear:    strings.TrimSpace(in.GradYear),
		Department:  strings.TrimSpace(in.Department),
		Experience:  strings.TrimSpace(in.Experience),
		WorkPref:    candidate.WorkPref(strings.TrimSpace(in.WorkPref)),
		Skills:      in.Skills,
		Status:      candidate.StatusUploaded,
		SubmittedAt: candidate.FormatSubmissionTime(now),
		ResumeURL:   resumeURL,
		StorageKey:  storageKey,
		JobID:       strings.TrimSpace(in.JobID),
		JobTitle:    strings.TrimSpace(in.JobTitle),
	}

	if err := u.repo.Create(ctx, candidate.Normalize(c)); err != nil {
		return SubmissionResult{}, ErrInternal
	}

	if u.mailer != nil {
		msg := mail.UploadConfirmationMessage(c)
		if err := u.mailer.Send(ctx, msg); err != nil && u.logger != nil {
			u.logger.Printf("SUBMIT confirmation email failed | resume_id=%s error=%v", resumeID, err)
		}
	}

	return SubmissionResult{
		ResumeID:    resumeID,
		UploadURL:   uploadURL,
		ResumeURL:   resumeURL,
		ContentType: filestore.ContentType(in.Filename),
	}, nil
}

// CompleteUpload is called once the presigned PUT lands. Processing
// runs inline on the caller's goroutine, handlers dispatch it async.
func (u *Resume) CompleteUpload(ctx context.Context, storageKey string) error {
	c, err := u.repo.GetByStorageKey(ctx, storageKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if u.processor == nil {
		return nil
	}
	if err := u.processor.Process(ctx, c.ResumeID); err != nil {
		if u.logger != nil {
			u.logger.Printf("UPLOAD processing failed | resume_id=%s error=%v", c.ResumeID, err)
		}
		return ErrInternal
	}
	return nil
}
