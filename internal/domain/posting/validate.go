package posting

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ValidationError carries field-keyed messages so forms can render them
// inline. It satisfies error for plumbing through usecases.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid job posting"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid job posting: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

// Validate enforces the submission-time invariants: required descriptive
// fields, max >= min for the salary and experience pairs, a deadline that
// is not in the past, and at least one open position. It returns nil or
// a *ValidationError listing every failing field.
func Validate(p JobPosting, now time.Time) error {
	var ve ValidationError

	if strings.TrimSpace(p.JobTitle) == "" {
		ve.add("jobTitle", "job title is required")
	}
	if strings.TrimSpace(p.Department) == "" {
		ve.add("department", "department is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		ve.add("location", "location is required")
	}
	if strings.TrimSpace(p.JobDescription) == "" {
		ve.add("jobDescription", "job description is required")
	}
	if strings.TrimSpace(p.ContactEmail) == "" {
		ve.add("contactEmail", "contact email is required")
	} else if !strings.Contains(p.ContactEmail, "@") {
		ve.add("contactEmail", "contact email is not a valid address")
	}

	if p.MinExperience < 0 {
		ve.add("minExperience", "experience cannot be negative")
	}
	if p.MaxExperience < p.MinExperience {
		ve.add("maxExperience", "max experience must be at least min experience")
	}

	if p.MinSalary < 0 {
		ve.add("minSalary", "salary cannot be negative")
	}
	if p.MaxSalary < p.MinSalary {
		ve.add("maxSalary", "max salary must be at least min salary")
	}

	if p.PositionsAvailable < 1 {
		ve.add("positionsAvailable", "at least one position is required")
	}

	if strings.TrimSpace(p.ApplicationDeadline) != "" {
		deadline, ok := parseDeadline(p.ApplicationDeadline)
		if !ok {
			ve.add("applicationDeadline", "deadline must be in YYYY-MM-DD format")
		} else if deadline.Before(now.Truncate(24 * time.Hour)) {
			ve.add("applicationDeadline", "deadline cannot be in the past")
		}
	}

	if len(ve.Fields) > 0 {
		return &ve
	}
	return nil
}
