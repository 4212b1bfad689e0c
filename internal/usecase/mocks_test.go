package usecase

import (
	"context"
	"time"

	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/domain/posting"
	"talent-bridge/internal/mail"
	"talent-bridge/internal/repository"
)

type mockCandidateRepo struct {
	items      []candidate.Candidate
	listErr    error
	getErr     error
	updateErr  error
	createErr  error
	created    []candidate.Candidate
	statusSets map[string]candidate.Status
	counts     map[string]int
}

func (m *mockCandidateRepo) Create(_ context.Context, c candidate.Candidate) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, c)
	return nil
}

func (m *mockCandidateRepo) GetByID(_ context.Context, resumeID string) (candidate.Candidate, error) {
	if m.getErr != nil {
		return candidate.Candidate{}, m.getErr
	}
	for _, c := range m.items {
		if c.ResumeID == resumeID {
			return c, nil
		}
	}
	return candidate.Candidate{}, repository.ErrNotFound
}

func (m *mockCandidateRepo) GetByStorageKey(_ context.Context, key string) (candidate.Candidate, error) {
	for _, c := range m.items {
		if c.StorageKey == key {
			return c, nil
		}
	}
	return candidate.Candidate{}, repository.ErrNotFound
}

func (m *mockCandidateRepo) List(context.Context) ([]candidate.Candidate, error) {
	return m.items, m.listErr
}

func (m *mockCandidateRepo) UpdateStatus(_ context.Context, resumeID string, status candidate.Status) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.statusSets == nil {
		m.statusSets = map[string]candidate.Status{}
	}
	m.statusSets[resumeID] = status
	return nil
}

func (m *mockCandidateRepo) UpdateExtraction(context.Context, string, repository.ExtractionUpdate) error {
	return nil
}

func (m *mockCandidateRepo) CountByJobID(context.Context) (map[string]int, error) {
	return m.counts, nil
}

type mockPostingRepo struct {
	items      []posting.JobPosting
	createErr  error
	created    []posting.JobPosting
	statusSets map[string]posting.Status
	updated    []posting.JobPosting
	deleted    []string
}

func (m *mockPostingRepo) Create(_ context.Context, p posting.JobPosting) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, p)
	return nil
}

func (m *mockPostingRepo) GetByID(_ context.Context, jobID string) (posting.JobPosting, error) {
	for _, p := range m.items {
		if p.JobID == jobID {
			return p, nil
		}
	}
	return posting.JobPosting{}, repository.ErrNotFound
}

func (m *mockPostingRepo) List(context.Context) ([]posting.JobPosting, error) {
	return m.items, nil
}

func (m *mockPostingRepo) UpdateStatus(_ context.Context, jobID string, status posting.Status) error {
	if m.statusSets == nil {
		m.statusSets = map[string]posting.Status{}
	}
	m.statusSets[jobID] = status
	return nil
}

func (m *mockPostingRepo) UpdateDetails(_ context.Context, p posting.JobPosting) error {
	m.updated = append(m.updated, p)
	return nil
}

func (m *mockPostingRepo) Delete(_ context.Context, jobID string) error {
	m.deleted = append(m.deleted, jobID)
	return nil
}

type mockMailer struct {
	sent []mail.Message
	err  error
}

func (m *mockMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type mockRegistry struct {
	entries map[string]string
	setErr  error
	getErr  error
}

func (m *mockRegistry) Set(_ context.Context, key, value string, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.entries == nil {
		m.entries = map[string]string{}
	}
	m.entries[key] = value
	return nil
}

func (m *mockRegistry) Exists(_ context.Context, key string) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	_, ok := m.entries[key]
	return ok, nil
}

func (m *mockRegistry) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}
