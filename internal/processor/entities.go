package processor

import (
	"regexp"
	"sort"
	"strings"

	"talent-bridge/internal/domain/candidate"
)

var (
	datePattern = regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{4}\s*[-–]\s*(?:\d{4}|[Pp]resent))\b`)

	orgSuffixes = []string{
		"Inc", "Inc.", "LLC", "Ltd", "Ltd.", "Pvt", "Corp", "Corp.",
		"Technologies", "Solutions", "Systems", "Consulting", "Labs",
		"University", "College", "Institute",
	}
)

// ExtractEntities runs lightweight pattern heuristics over resume
// text. It is intentionally shallow, the form fields remain the
// source of truth for identity, these only enrich the HR view.
func ExtractEntities(text string, c candidate.Candidate) candidate.Entities {
	ents := candidate.Entities{}

	if name := strings.TrimSpace(c.FullName()); name != "" {
		ents.Person = []string{name}
	}
	if loc := strings.TrimSpace(c.Address); loc != "" {
		ents.Location = []string{loc}
	}

	ents.Date = dedupe(datePattern.FindAllString(text, 20))
	ents.Organization = findOrganizations(text)
	return ents
}

// findOrganizations looks for a known company or school suffix and
// grabs the run of capitalized words in front of it, e.g.
// "Acme Technologies" or "State University".
func findOrganizations(text string) []string {
	var orgs []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		for i := 1; i < len(words); i++ {
			if !isOrgSuffix(words[i]) {
				continue
			}
			start := i
			for start > 0 && isCapitalized(words[start-1]) && i-start < 3 {
				start--
			}
			if start == i {
				continue
			}
			org := strings.TrimRight(strings.Join(words[start:i+1], " "), ",.;")
			orgs = append(orgs, org)
		}
		if len(orgs) >= 10 {
			break
		}
	}
	return dedupe(orgs)
}

func isCapitalized(word string) bool {
	return word != "" && word[0] >= 'A' && word[0] <= 'Z'
}

func isOrgSuffix(word string) bool {
	word = strings.TrimRight(word, ",;")
	for _, s := range orgSuffixes {
		if strings.EqualFold(word, s) {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
