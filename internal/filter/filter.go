// Package filter composes the per-view filter criteria into a single
// pure pass over an in-memory collection. Filtering never sorts and
// never fabricates records: the output is always an order-preserving
// subset of the input, so re-running with the same inputs yields the
// same result.
package filter

import (
	"strings"
	"time"

	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/domain/posting"
)

// CandidateFilter holds the candidate-view criteria. Zero values mean
// "no constraint". All non-empty criteria are ANDed together.
type CandidateFilter struct {
	Search     string
	Gender     string
	Department string
	Experience string
	WorkPref   string
	Status     string

	// DateFrom/DateTo bound the submission date inclusively; each side
	// is optional independently.
	DateFrom time.Time
	DateTo   time.Time

	// IncludeRejected lets archive views opt back in. Active views keep
	// it false so rejected candidates stay hidden even with no status
	// filter set.
	IncludeRejected bool
}

// Candidates returns the subset of in matching every non-empty criterion.
func Candidates(in []candidate.Candidate, f CandidateFilter) []candidate.Candidate {
	out := make([]candidate.Candidate, 0, len(in))
	for _, c := range in {
		if matchCandidate(c, f) {
			out = append(out, c)
		}
	}
	return out
}

func matchCandidate(c candidate.Candidate, f CandidateFilter) bool {
	if c.Status == candidate.StatusRejected &&
		!f.IncludeRejected && f.Status != string(candidate.StatusRejected) {
		return false
	}

	if !searchMatch(f.Search, c.FirstName, c.LastName, c.Email) {
		return false
	}
	if !equalsOrEmpty(f.Gender, string(c.Gender)) {
		return false
	}
	if !equalsOrEmpty(f.Department, c.Department) {
		return false
	}
	if !equalsOrEmpty(f.Experience, c.Experience) {
		return false
	}
	if !equalsOrEmpty(f.WorkPref, string(c.WorkPref)) {
		return false
	}
	if !equalsOrEmpty(f.Status, string(c.Status)) {
		return false
	}

	if !f.DateFrom.IsZero() || !f.DateTo.IsZero() {
		t := submittedTime(c)
		if !f.DateFrom.IsZero() && t.Before(f.DateFrom) {
			return false
		}
		if !f.DateTo.IsZero() && t.After(f.DateTo) {
			return false
		}
	}

	return true
}

// JobFilter holds the job-listing criteria.
type JobFilter struct {
	Search          string
	Department      string
	Location        string
	WorkType        string
	WorkMode        string
	ExperienceLevel string
	Status          string
}

// Jobs returns the subset of in matching every non-empty criterion.
func Jobs(in []posting.JobPosting, f JobFilter) []posting.JobPosting {
	out := make([]posting.JobPosting, 0, len(in))
	for _, j := range in {
		if matchJob(j, f) {
			out = append(out, j)
		}
	}
	return out
}

func matchJob(j posting.JobPosting, f JobFilter) bool {
	if !searchMatch(f.Search, j.JobTitle, j.Department, j.Location) {
		return false
	}
	if !equalsOrEmpty(f.Department, j.Department) {
		return false
	}
	if !equalsOrEmpty(f.Location, j.Location) {
		return false
	}
	if !equalsOrEmpty(f.WorkType, j.WorkType) {
		return false
	}
	if !equalsOrEmpty(f.WorkMode, j.WorkMode) {
		return false
	}
	if !equalsOrEmpty(f.ExperienceLevel, j.ExperienceLevel) {
		return false
	}
	if !equalsOrEmpty(f.Status, string(j.Status)) {
		return false
	}
	return true
}

// equalsOrEmpty is the enum-filter predicate: an empty criterion always
// matches; otherwise the record field must equal it exactly. A record
// missing the field (empty string) never matches a non-empty criterion.
func equalsOrEmpty(criterion, field string) bool {
	return criterion == "" || criterion == field
}

// searchMatch is the text-search predicate: case-insensitive substring
// over the given fields, matching if ANY field contains the term. Empty
// fields are skipped; the remaining fields are still checked.
func searchMatch(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func submittedTime(c candidate.Candidate) time.Time {
	if !c.SubmittedTime.IsZero() {
		return c.SubmittedTime
	}
	return candidate.ParseSubmissionTime(c.SubmittedAt)
}
