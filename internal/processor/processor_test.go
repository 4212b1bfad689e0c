package processor

import (
	"reflect"
	"testing"

	"talent-bridge/internal/domain/candidate"
)

func TestExtractSkills(t *testing.T) {
	text := `Senior developer with 5 years of Python and Django.
Deployed services on AWS with Docker and Kubernetes.
Comfortable with PostgreSQL and Redis.`

	got := ExtractSkills(text)

	for _, want := range []string{"Python", "Django", "AWS", "Docker", "Kubernetes", "SQL", "Redis"} {
		found := false
		for _, s := range got {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %s in %v", want, got)
		}
	}
}

func TestExtractSkills_EmptyText(t *testing.T) {
	if got := ExtractSkills(""); got != nil {
		t.Fatalf("expected nil for empty text, got %v", got)
	}
}

func TestMatchSkills(t *testing.T) {
	matched, pct := MatchSkills(
		[]string{"python", "Docker", "AWS"},
		[]string{"Python", "Kubernetes", "Docker", "Terraform"},
	)
	if !reflect.DeepEqual(matched, []string{"Python", "Docker"}) {
		t.Fatalf("unexpected matched set: %v", matched)
	}
	if pct != 50 {
		t.Fatalf("expected 50%%, got %v", pct)
	}
}

func TestMatchSkills_NoRequirements(t *testing.T) {
	matched, pct := MatchSkills([]string{"Go"}, nil)
	if matched != nil || pct != 0 {
		t.Fatalf("expected empty result, got %v %v", matched, pct)
	}
}

func TestMatchSkills_NoOverlap(t *testing.T) {
	matched, pct := MatchSkills([]string{"Figma"}, []string{"Go", "Kafka"})
	if matched != nil || pct != 0 {
		t.Fatalf("expected zero match, got %v %v", matched, pct)
	}
}

func TestExtractEntities(t *testing.T) {
	text := `Worked at Acme Technologies from Jan 2020 - Present.
Graduated from State University in 2019.
Previously at Initech Solutions, Mumbai.`

	c := candidate.Candidate{FirstName: "Priya", LastName: "Sharma", Address: "Mumbai"}
	ents := ExtractEntities(text, c)

	if !reflect.DeepEqual(ents.Person, []string{"Priya Sharma"}) {
		t.Fatalf("person: %v", ents.Person)
	}
	if !reflect.DeepEqual(ents.Location, []string{"Mumbai"}) {
		t.Fatalf("location: %v", ents.Location)
	}

	wantOrg := map[string]bool{"Acme Technologies": true, "State University": true, "Initech Solutions": true}
	for _, o := range ents.Organization {
		if !wantOrg[o] {
			t.Fatalf("unexpected organization %q in %v", o, ents.Organization)
		}
		delete(wantOrg, o)
	}
	if len(wantOrg) != 0 {
		t.Fatalf("missing organizations: %v (got %v)", wantOrg, ents.Organization)
	}

	if len(ents.Date) == 0 {
		t.Fatalf("expected date mentions, got none")
	}
}
