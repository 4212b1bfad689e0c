package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"talent-bridge/internal/database"
	"talent-bridge/internal/domain/posting"
)

type JobPostingsSeeder struct{}

func (JobPostingsSeeder) Name() string { return "job_postings" }

func (JobPostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "job_id", "job_title", "department", "status"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []posting.JobPosting{
		{
			JobTitle:            "Backend Engineer",
			Department:          "Engineering",
			Location:            "Bengaluru",
			WorkType:            "Full-time",
			WorkMode:            "Hybrid",
			ExperienceLevel:     "Mid",
			MinExperience:       2,
			MaxExperience:       5,
			MinSalary:           900000,
			MaxSalary:           1800000,
			Currency:            "INR",
			JobDescription:      "Build and operate the services behind the hiring portal.",
			Skills:              []string{"Go", "PostgreSQL", "Redis", "Docker"},
			PositionsAvailable:  2,
			ApplicationDeadline: "2027-12-31",
			Status:              posting.StatusActive,
		},
		{
			JobTitle:            "HR Operations Associate",
			Department:          "Human Resources",
			Location:            "Pune",
			WorkType:            "Full-time",
			WorkMode:            "Office",
			ExperienceLevel:     "Entry",
			MinExperience:       0,
			MaxExperience:       2,
			MinSalary:           400000,
			MaxSalary:           700000,
			Currency:            "INR",
			JobDescription:      "Coordinate interview scheduling and candidate communication.",
			Skills:              []string{"Excel", "Agile"},
			PositionsAvailable:  1,
			ApplicationDeadline: "2027-12-31",
			Status:              posting.StatusActive,
		},
	}

	for _, p := range items {
		p.JobID = posting.NewJobID(p.Department)
		lists := make([][]byte, 0, 5)
		for _, l := range [][]string{p.Responsibilities, p.Requirements, p.Qualifications, p.Skills, p.Benefits} {
			if l == nil {
				l = []string{}
			}
			b, err := json.Marshal(l)
			if err != nil {
				return err
			}
			lists = append(lists, b)
		}

		_, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (
				job_id, job_title, department, location, work_type, work_mode,
				experience_level, min_experience, max_experience, min_salary, max_salary,
				currency, job_description, responsibilities, requirements, qualifications,
				skills, benefits, positions_available, reporting_to, contact_email,
				application_deadline, is_urgent, allow_remote, travel_required,
				background_check_required, posted_date, status
			) VALUES (
				$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
				$19,$20,$21,$22,$23,$24,$25,$26,$27,$28
			) ON CONFLICT (job_id) DO NOTHING`,
			p.JobID, p.JobTitle, p.Department, p.Location, p.WorkType, p.WorkMode,
			p.ExperienceLevel, p.MinExperience, p.MaxExperience, p.MinSalary, p.MaxSalary,
			p.Currency, p.JobDescription, lists[0], lists[1], lists[2],
			lists[3], lists[4], p.PositionsAvailable, p.ReportingTo, p.ContactEmail,
			p.ApplicationDeadline, p.IsUrgent, p.AllowRemote, p.TravelRequired,
			p.BackgroundCheckRequired, p.PostedDate, string(p.Status),
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
