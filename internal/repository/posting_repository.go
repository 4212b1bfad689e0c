package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"talent-bridge/internal/database"
	"talent-bridge/internal/domain/posting"
)

type PostingRepository interface {
	Create(ctx context.Context, p posting.JobPosting) error
	GetByID(ctx context.Context, jobID string) (posting.JobPosting, error)
	List(ctx context.Context) ([]posting.JobPosting, error)
	UpdateStatus(ctx context.Context, jobID string, status posting.Status) error
	UpdateDetails(ctx context.Context, p posting.JobPosting) error
	Delete(ctx context.Context, jobID string) error
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

const postingColumns = `job_id, job_title, department, location, work_type, work_mode, experience_level,
	min_experience, max_experience, min_salary, max_salary, currency, job_description,
	responsibilities, requirements, qualifications, skills, benefits,
	positions_available, reporting_to, contact_email, application_deadline,
	is_urgent, allow_remote, travel_required, background_check_required, posted_date, status`

func (r *PostgresPostingRepository) Create(ctx context.Context, p posting.JobPosting) error {
	lists, err := marshalPostingLists(p)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (`+postingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		         $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`,
		p.JobID, p.JobTitle, p.Department, p.Location, p.WorkType, p.WorkMode, p.ExperienceLevel,
		p.MinExperience, p.MaxExperience, p.MinSalary, p.MaxSalary, p.Currency, p.JobDescription,
		lists[0], lists[1], lists[2], lists[3], lists[4],
		p.PositionsAvailable, p.ReportingTo, p.ContactEmail, p.ApplicationDeadline,
		p.IsUrgent, p.AllowRemote, p.TravelRequired, p.BackgroundCheckRequired, p.PostedDate, string(p.Status),
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *PostgresPostingRepository) GetByID(ctx context.Context, jobID string) (posting.JobPosting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postingColumns+` FROM jobs WHERE job_id = $1`, jobID)
	return scanPostingInto(row.Scan)
}

func (r *PostgresPostingRepository) List(ctx context.Context) ([]posting.JobPosting, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postingColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]posting.JobPosting, 0)
	for rows.Next() {
		p, err := scanPostingInto(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostingRepository) UpdateStatus(ctx context.Context, jobID string, status posting.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = now() WHERE job_id = $2`,
		string(status), jobID)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPostingRepository) UpdateDetails(ctx context.Context, p posting.JobPosting) error {
	lists, err := marshalPostingLists(p)
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET job_title = $1, department = $2, location = $3, work_type = $4, work_mode = $5,
		     experience_level = $6, min_experience = $7, max_experience = $8,
		     min_salary = $9, max_salary = $10, currency = $11, job_description = $12,
		     responsibilities = $13, requirements = $14, qualifications = $15,
		     skills = $16, benefits = $17, positions_available = $18, reporting_to = $19,
		     contact_email = $20, application_deadline = $21, is_urgent = $22,
		     allow_remote = $23, travel_required = $24, background_check_required = $25,
		     updated_at = now()
		 WHERE job_id = $26`,
		p.JobTitle, p.Department, p.Location, p.WorkType, p.WorkMode,
		p.ExperienceLevel, p.MinExperience, p.MaxExperience,
		p.MinSalary, p.MaxSalary, p.Currency, p.JobDescription,
		lists[0], lists[1], lists[2], lists[3], lists[4],
		p.PositionsAvailable, p.ReportingTo,
		p.ContactEmail, p.ApplicationDeadline, p.IsUrgent,
		p.AllowRemote, p.TravelRequired, p.BackgroundCheckRequired,
		p.JobID)
	if err != nil {
		return fmt.Errorf("update job details: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPostingRepository) Delete(ctx context.Context, jobID string) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE job_id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalPostingLists(p posting.JobPosting) ([5][]byte, error) {
	var out [5][]byte
	fields := [5][]string{p.Responsibilities, p.Requirements, p.Qualifications, p.Skills, p.Benefits}
	for i, f := range fields {
		b, err := json.Marshal(emptyIfNil(f))
		if err != nil {
			return out, err
		}
		out[i] = b
	}
	return out, nil
}

func scanPostingInto(scan func(dest ...any) error) (posting.JobPosting, error) {
	var p posting.JobPosting
	var status string
	var responsibilities, requirements, qualifications, skills, benefits []byte

	err := scan(
		&p.JobID, &p.JobTitle, &p.Department, &p.Location, &p.WorkType, &p.WorkMode, &p.ExperienceLevel,
		&p.MinExperience, &p.MaxExperience, &p.MinSalary, &p.MaxSalary, &p.Currency, &p.JobDescription,
		&responsibilities, &requirements, &qualifications, &skills, &benefits,
		&p.PositionsAvailable, &p.ReportingTo, &p.ContactEmail, &p.ApplicationDeadline,
		&p.IsUrgent, &p.AllowRemote, &p.TravelRequired, &p.BackgroundCheckRequired, &p.PostedDate, &status,
	)
	if err != nil {
		if isNoRows(err) {
			return posting.JobPosting{}, ErrNotFound
		}
		return posting.JobPosting{}, err
	}

	p.Status = posting.Status(status)
	for _, pair := range []struct {
		raw []byte
		dst *[]string
	}{
		{responsibilities, &p.Responsibilities},
		{requirements, &p.Requirements},
		{qualifications, &p.Qualifications},
		{skills, &p.Skills},
		{benefits, &p.Benefits},
	} {
		if len(pair.raw) > 0 {
			_ = json.Unmarshal(pair.raw, pair.dst)
		}
	}
	return p, nil
}
