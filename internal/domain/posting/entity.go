package posting

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// JobPosting is one open requisition candidates can apply against.
type JobPosting struct {
	JobID string `json:"job_id"`

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

	PostedDate string `json:"postedDate"`
	Status     Status `json:"status"`

	// SubmissionCount is derived by joining candidates on jobId.
	// It is never stored.
	SubmissionCount int `json:"submissionCount,omitempty"`
}

// NewJobID builds a human-scannable id: department upper-cased with
// spaces stripped, plus a short uuid suffix, e.g. "ENGINEERING-3f9a1c2b".
func NewJobID(department string) string {
	dept := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(department), " ", ""))
	if dept == "" {
		dept = "GENERIC"
	}
	return dept + "-" + uuid.NewString()[:8]
}

// DeadlineLayout is the date-only format the posting form submits.
const DeadlineLayout = "2006-01-02"

func parseDeadline(s string) (time.Time, bool) {
	t, err := time.Parse(DeadlineLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
