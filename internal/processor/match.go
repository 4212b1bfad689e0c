package processor

import (
	"math"
	"strings"
)

// MatchSkills intersects the candidate's skills with a posting's
// required skills, case-insensitively, and scores the overlap as a
// percentage of the requirements covered.
func MatchSkills(candidateSkills, requiredSkills []string) (matched []string, percentage float64) {
	if len(requiredSkills) == 0 {
		return nil, 0
	}

	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		s = strings.TrimSpace(strings.ToLower(s))
		if s != "" {
			have[s] = true
		}
	}

	matched = make([]string, 0, len(requiredSkills))
	for _, req := range requiredSkills {
		key := strings.TrimSpace(strings.ToLower(req))
		if key == "" {
			continue
		}
		if have[key] {
			matched = append(matched, req)
		}
	}
	if len(matched) == 0 {
		return nil, 0
	}

	percentage = float64(len(matched)) / float64(len(requiredSkills)) * 100
	return matched, math.Round(percentage*100) / 100
}
