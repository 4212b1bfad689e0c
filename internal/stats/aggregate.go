// Package stats reduces candidate collections into chart-ready buckets.
// Every aggregation recomputes from scratch; there is no incremental
// state to drift.
package stats

import (
	"sort"
	"time"

	"talent-bridge/internal/domain/candidate"
)

// Bucket is one named slice of a pie or bar chart.
type Bucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// UnknownBucket collects records whose bucketing field is empty.
const UnknownBucket = "Not Available"

// CountBy buckets records by the value key extracts, one bucket per
// distinct observed value. No fixed enumeration: new values coming from
// the backend appear automatically. Counts always sum to len(in).
// Output is sorted by count descending, then name, for stable charts.
func CountBy(in []candidate.Candidate, key func(candidate.Candidate) string) []Bucket {
	counts := make(map[string]int)
	for _, c := range in {
		k := key(c)
		if k == "" {
			k = UnknownBucket
		}
		counts[k]++
	}

	out := make([]Bucket, 0, len(counts))
	for name, n := range counts {
		out = append(out, Bucket{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ByGender, ByStatus and ByDepartment are the dashboard's standard keys.
func ByGender(c candidate.Candidate) string     { return string(c.Gender) }
func ByStatus(c candidate.Candidate) string     { return string(c.Status) }
func ByDepartment(c candidate.Candidate) string { return c.Department }

// Window returns the candidates submitted within the last days days of
// now, preserving input order.
func Window(in []candidate.Candidate, now time.Time, days int) []candidate.Candidate {
	cutoff := now.AddDate(0, 0, -days)
	out := make([]candidate.Candidate, 0, len(in))
	for _, c := range in {
		t := c.SubmittedTime
		if t.IsZero() {
			t = candidate.ParseSubmissionTime(c.SubmittedAt)
		}
		if t.IsZero() {
			continue
		}
		if !t.Before(cutoff) && !t.After(now) {
			out = append(out, c)
		}
	}
	return out
}

// RecencyHistogram partitions candidates into fixed, mutually exclusive
// submission-age windows, checked in order: each record lands in the
// first window whose lower bound it satisfies. A record older than 90
// days is counted in none of them; that gap is inherited behavior the
// dashboards rely on and is reproduced here deliberately.
func RecencyHistogram(in []candidate.Candidate, now time.Time) []Bucket {
	buckets := []Bucket{
		{Name: "Last 7 days"},
		{Name: "Previous 7 days"},
		{Name: "Previous 14 days"},
		{Name: "Previous 60 days"},
	}
	bounds := []int{7, 14, 30, 90}

	for _, c := range in {
		t := c.SubmittedTime
		if t.IsZero() {
			t = candidate.ParseSubmissionTime(c.SubmittedAt)
		}
		if t.IsZero() || t.After(now) {
			continue
		}
		age := int(now.Sub(t).Hours() / 24)
		for i, limit := range bounds {
			if age < limit {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}
