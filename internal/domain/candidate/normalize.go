package candidate

import (
	"sort"
	"strings"
)

// Normalize maps a raw fetched record into a consistent shape: status
// collapsed into the known set, submission timestamp parsed, nil slices
// replaced so views can range without guards. It never drops a record.
func Normalize(c Candidate) Candidate {
	c.Status = ParseStatus(string(c.Status))
	c.SubmittedTime = ParseSubmissionTime(c.SubmittedAt)

	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Department = strings.TrimSpace(c.Department)

	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.MatchedSkills == nil {
		c.MatchedSkills = []string{}
	}
	if c.Entities.Organization == nil {
		c.Entities.Organization = []string{}
	}

	if c.JobID == "Unknown" {
		c.JobID = ""
	}
	if c.JobTitle == "Untitled Job" {
		c.JobTitle = ""
	}

	return c
}

// NormalizeAll normalizes every record, preserving input order.
func NormalizeAll(in []Candidate) []Candidate {
	out := make([]Candidate, 0, len(in))
	for _, c := range in {
		out = append(out, Normalize(c))
	}
	return out
}

// SortNewestFirst orders candidates by submission time, newest first.
// Records with unparseable timestamps carry the zero time and land last.
// The sort is stable so equal timestamps keep their fetched order.
func SortNewestFirst(in []Candidate) []Candidate {
	out := make([]Candidate, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedTime.After(out[j].SubmittedTime)
	})
	return out
}

// SplitFullName splits a submitted full name into first and last parts
// on the first whitespace run, the way the intake form stores it.
func SplitFullName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
