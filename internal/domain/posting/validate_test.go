package posting

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validPosting() JobPosting {
	return JobPosting{
		JobTitle:            "Backend Engineer",
		Department:          "Engineering",
		Location:            "Bengaluru",
		JobDescription:      "Build the hiring portal services.",
		ContactEmail:        "hr@example.com",
		MinExperience:       2,
		MaxExperience:       5,
		MinSalary:           900000,
		MaxSalary:           1800000,
		PositionsAvailable:  2,
		ApplicationDeadline: "2027-12-31",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return ve.Fields
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(validPosting(), time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SalaryRangeInverted(t *testing.T) {
	p := validPosting()
	p.MinSalary = 800000
	p.MaxSalary = 500000
	fields := fieldsOf(t, Validate(p, time.Now()))
	if _, ok := fields["maxSalary"]; !ok {
		t.Fatalf("expected maxSalary error, got %v", fields)
	}
}

func TestValidate_ExperienceRangeInverted(t *testing.T) {
	p := validPosting()
	p.MinExperience = 6
	p.MaxExperience = 3
	fields := fieldsOf(t, Validate(p, time.Now()))
	if _, ok := fields["maxExperience"]; !ok {
		t.Fatalf("expected maxExperience error, got %v", fields)
	}
}

func TestValidate_RequiredFieldsAllReported(t *testing.T) {
	fields := fieldsOf(t, Validate(JobPosting{PositionsAvailable: 1}, time.Now()))
	for _, f := range []string{"jobTitle", "department", "location", "jobDescription", "contactEmail"} {
		if _, ok := fields[f]; !ok {
			t.Fatalf("expected %s to be reported, got %v", f, fields)
		}
	}
}

func TestValidate_DeadlineInPast(t *testing.T) {
	p := validPosting()
	p.ApplicationDeadline = "2020-01-01"
	fields := fieldsOf(t, Validate(p, time.Now()))
	if _, ok := fields["applicationDeadline"]; !ok {
		t.Fatalf("expected deadline error, got %v", fields)
	}
}

func TestValidate_DeadlineBadFormat(t *testing.T) {
	p := validPosting()
	p.ApplicationDeadline = "31/12/2027"
	fields := fieldsOf(t, Validate(p, time.Now()))
	if msg, ok := fields["applicationDeadline"]; !ok || !strings.Contains(msg, "YYYY-MM-DD") {
		t.Fatalf("expected format error, got %v", fields)
	}
}

func TestNewJobID_Format(t *testing.T) {
	id := NewJobID("Human Resources")
	if !strings.HasPrefix(id, "HUMANRESOURCES-") {
		t.Fatalf("unexpected prefix: %s", id)
	}
	suffix := strings.TrimPrefix(id, "HUMANRESOURCES-")
	if len(suffix) != 8 {
		t.Fatalf("expected 8-char suffix, got %q", suffix)
	}
}
