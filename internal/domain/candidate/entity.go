package candidate

import "time"

// Status is the closed set of pipeline states a submission can be in.
// The backend never invents values outside this set; anything unknown
// coming off the wire normalizes to StatusNotAvailable.
type Status string

const (
	StatusNotAvailable         Status = "Not Available"
	StatusUploaded             Status = "Uploaded"
	StatusUnderReview          Status = "Under Review"
	StatusAdvanced             Status = "Advanced"
	StatusAdvancedByHOD        Status = "Advanced by HOD"
	StatusAdvancedForInterview Status = "Advanced for Interview"
	StatusRejected             Status = "Rejected"
)

func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusUploaded, StatusUnderReview, StatusAdvanced,
		StatusAdvancedByHOD, StatusAdvancedForInterview, StatusRejected:
		return Status(s)
	default:
		return StatusNotAvailable
	}
}

// KnownStatus parses a status that must name a real pipeline state,
// unlike ParseStatus it refuses unknown values instead of bucketing
// them under Not Available.
func KnownStatus(s string) (Status, bool) {
	st := ParseStatus(s)
	if st == StatusNotAvailable {
		return "", false
	}
	return st, true
}

func (s Status) Terminal() bool {
	return s == StatusRejected
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

type WorkPref string

const (
	WorkFromHome WorkPref = "Work From Home"
	WorkOffice   WorkPref = "Office"
	WorkHybrid   WorkPref = "Hybrid"
)

// Entities groups the named entities extracted from the resume text.
type Entities struct {
	Person       []string `json:"PERSON,omitempty"`
	Location     []string `json:"LOCATION,omitempty"`
	Organization []string `json:"ORGANIZATION,omitempty"`
	Date         []string `json:"DATE,omitempty"`
}

// Candidate is one resume submission tracked through the review pipeline.
// Department, experience and skills are open string sets: HR and the
// extraction pipeline can introduce new values at any time, so nothing
// here enumerates them.
type Candidate struct {
	ResumeID string `json:"resume_id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Gender    Gender `json:"gender"`
	LinkedIn  string `json:"linkedin,omitempty"`

	Marks12   string `json:"marks12,omitempty"`
	Pass12    string `json:"pass12,omitempty"`
	GradMarks string `json:"grad_marks,omitempty"`
	GradYear  string `json:"grad_year,omitempty"`

	Department string   `json:"department,omitempty"`
	Experience string   `json:"experience,omitempty"`
	WorkPref   WorkPref `json:"work_pref"`

	Skills          []string `json:"skills,omitempty"`
	Entities        Entities `json:"entities"`
	MatchedSkills   []string `json:"matched_skills,omitempty"`
	MatchPercentage float64  `json:"match_percentage"`

	Status Status `json:"status"`

	SubmittedAt string `json:"datetime,omitempty"`
	ResumeURL   string `json:"resume_url,omitempty"`
	StorageKey  string `json:"-"`
	JobID       string `json:"jobId,omitempty"`
	JobTitle    string `json:"jobTitle,omitempty"`

	// SubmittedTime is the parsed form of SubmittedAt, filled by Normalize.
	SubmittedTime time.Time `json:"-"`
}

func (c Candidate) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
