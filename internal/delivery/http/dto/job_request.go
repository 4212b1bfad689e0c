package dto

import "talent-bridge/internal/domain/posting"

type CreateJobRequest struct {
	JobTitle        string `json:"jobTitle"`
	Department      string `json:"department"`
	Location        string `json:"location"`
	WorkType        string `json:"workType"`
	WorkMode        string `json:"workMode"`
	ExperienceLevel string `json:"experienceLevel"`

	MinExperience int     `json:"minExperience"`
	MaxExperience int     `json:"maxExperience"`
	MinSalary     float64 `json:"minSalary"`
	MaxSalary     float64 `json:"maxSalary"`
	Currency      string  `json:"currency"`

	JobDescription   string   `json:"jobDescription"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Qualifications   []string `json:"qualifications"`
	Skills           []string `json:"skills"`
	Benefits         []string `json:"benefits"`

	PositionsAvailable  int    `json:"positionsAvailable"`
	ReportingTo         string `json:"reportingTo"`
	ContactEmail        string `json:"contactEmail"`
	ApplicationDeadline string `json:"applicationDeadline"`

	IsUrgent                bool `json:"isUrgent"`
	AllowRemote             bool `json:"allowRemote"`
	TravelRequired          bool `json:"travelRequired"`
	BackgroundCheckRequired bool `json:"backgroundCheckRequired"`

	Status string `json:"status"`
}

// JobActionRequest drives the jobs status endpoint: one action plus
// the posting fields that action needs.
type JobActionRequest struct {
	Action string `json:"action"`
	JobID  string `json:"job_id"`
	CreateJobRequest
}

func (r CreateJobRequest) ToPosting() posting.JobPosting {
	return posting.JobPosting{
		JobTitle:                r.JobTitle,
		Department:              r.Department,
		Location:                r.Location,
		WorkType:                r.WorkType,
		WorkMode:                r.WorkMode,
		ExperienceLevel:         r.ExperienceLevel,
		MinExperience:           r.MinExperience,
		MaxExperience:           r.MaxExperience,
		MinSalary:               r.MinSalary,
		MaxSalary:               r.MaxSalary,
		Currency:                r.Currency,
		JobDescription:          r.JobDescription,
		Responsibilities:        r.Responsibilities,
		Requirements:            r.Requirements,
		Qualifications:          r.Qualifications,
		Skills:                  r.Skills,
		Benefits:                r.Benefits,
		PositionsAvailable:      r.PositionsAvailable,
		ReportingTo:             r.ReportingTo,
		ContactEmail:            r.ContactEmail,
		ApplicationDeadline:     r.ApplicationDeadline,
		IsUrgent:                r.IsUrgent,
		AllowRemote:             r.AllowRemote,
		TravelRequired:          r.TravelRequired,
		BackgroundCheckRequired: r.BackgroundCheckRequired,
		Status:                  posting.Status(r.Status),
	}
}
