package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"talent-bridge/internal/database"
	"talent-bridge/internal/domain/candidate"
)

var ErrNotFound = errors.New("not found")

type CandidateRepository interface {
	Create(ctx context.Context, c candidate.Candidate) error
	GetByID(ctx context.Context, resumeID string) (candidate.Candidate, error)
	GetByStorageKey(ctx context.Context, key string) (candidate.Candidate, error)
	List(ctx context.Context) ([]candidate.Candidate, error)
	UpdateStatus(ctx context.Context, resumeID string, status candidate.Status) error
	UpdateExtraction(ctx context.Context, resumeID string, upd ExtractionUpdate) error
	CountByJobID(ctx context.Context) (map[string]int, error)
}

// ExtractionUpdate carries the processing pipeline's output for one
// submission.
type ExtractionUpdate struct {
	ExtractedText   string
	Skills          []string
	Entities        candidate.Entities
	MatchedSkills   []string
	MatchPercentage float64
	Status          candidate.Status
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `resume_id, first_name, last_name, email, phone, address, gender, linkedin,
	marks12, pass12, grad_marks, grad_year, department, experience, work_pref,
	skills, entities, matched_skills, match_percentage, status, submitted_at,
	storage_key, job_id, job_title, resume_url`

func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	skills, err := json.Marshal(emptyIfNil(c.Skills))
	if err != nil {
		return err
	}
	entities, err := json.Marshal(c.Entities)
	if err != nil {
		return err
	}
	matched, err := json.Marshal(emptyIfNil(c.MatchedSkills))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO candidates (`+candidateColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		         $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`,
		c.ResumeID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, string(c.Gender), c.LinkedIn,
		c.Marks12, c.Pass12, c.GradMarks, c.GradYear, c.Department, c.Experience, string(c.WorkPref),
		skills, entities, matched, c.MatchPercentage, string(c.Status), c.SubmittedAt,
		c.StorageKey, c.JobID, c.JobTitle, c.ResumeURL,
	)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, resumeID string) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE resume_id = $1`, resumeID)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) GetByStorageKey(ctx context.Context, key string) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE storage_key = $1`, key)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) List(ctx context.Context) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidateFromRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) UpdateStatus(ctx context.Context, resumeID string, status candidate.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE candidates SET status = $1, updated_at = now() WHERE resume_id = $2`,
		string(status), resumeID)
	if err != nil {
		return fmt.Errorf("update candidate status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) UpdateExtraction(ctx context.Context, resumeID string, upd ExtractionUpdate) error {
	skills, err := json.Marshal(emptyIfNil(upd.Skills))
	if err != nil {
		return err
	}
	entities, err := json.Marshal(upd.Entities)
	if err != nil {
		return err
	}
	matched, err := json.Marshal(emptyIfNil(upd.MatchedSkills))
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx,
		`UPDATE candidates
		 SET extracted_text = $1, skills = $2, entities = $3, matched_skills = $4,
		     match_percentage = $5, status = $6, updated_at = now()
		 WHERE resume_id = $7`,
		upd.ExtractedText, skills, entities, matched,
		upd.MatchPercentage, string(upd.Status), resumeID)
	if err != nil {
		return fmt.Errorf("update candidate extraction: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) CountByJobID(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id, COUNT(1) FROM candidates WHERE job_id <> '' GROUP BY job_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

func scanCandidate(row database.Row) (candidate.Candidate, error) {
	return scanCandidateInto(row.Scan)
}

func scanCandidateFromRows(rows database.Rows) (candidate.Candidate, error) {
	return scanCandidateInto(rows.Scan)
}

func scanCandidateInto(scan func(dest ...any) error) (candidate.Candidate, error) {
	var c candidate.Candidate
	var gender, workPref, status string
	var skills, entities, matched []byte

	err := scan(
		&c.ResumeID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &gender, &c.LinkedIn,
		&c.Marks12, &c.Pass12, &c.GradMarks, &c.GradYear, &c.Department, &c.Experience, &workPref,
		&skills, &entities, &matched, &c.MatchPercentage, &status, &c.SubmittedAt,
		&c.StorageKey, &c.JobID, &c.JobTitle, &c.ResumeURL,
	)
	if err != nil {
		if isNoRows(err) {
			return candidate.Candidate{}, ErrNotFound
		}
		return candidate.Candidate{}, err
	}

	c.Gender = candidate.Gender(gender)
	c.WorkPref = candidate.WorkPref(workPref)
	c.Status = candidate.Status(status)

	if len(skills) > 0 {
		_ = json.Unmarshal(skills, &c.Skills)
	}
	if len(entities) > 0 {
		_ = json.Unmarshal(entities, &c.Entities)
	}
	if len(matched) > 0 {
		_ = json.Unmarshal(matched, &c.MatchedSkills)
	}
	return c, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
