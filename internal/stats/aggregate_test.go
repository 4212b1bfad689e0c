package stats

import (
	"testing"
	"time"

	"talent-bridge/internal/domain/candidate"
)

func TestCountBy_SumAndUnknownBucket(t *testing.T) {
	in := []candidate.Candidate{
		{ResumeID: "1", Gender: "F"},
		{ResumeID: "2", Gender: "F"},
		{ResumeID: "3", Gender: "M"},
		{ResumeID: "4"}, // no gender recorded
	}

	buckets := CountBy(in, ByGender)

	sum := 0
	sawUnknown := false
	for _, b := range buckets {
		sum += b.Count
		if b.Name == UnknownBucket {
			sawUnknown = true
			if b.Count != 1 {
				t.Fatalf("expected 1 in %q, got %d", UnknownBucket, b.Count)
			}
		}
	}
	if sum != len(in) {
		t.Fatalf("bucket counts sum to %d, want %d", sum, len(in))
	}
	if !sawUnknown {
		t.Fatalf("missing %q bucket", UnknownBucket)
	}
}

func TestCountBy_SortedByCountThenName(t *testing.T) {
	in := []candidate.Candidate{
		{Department: "Engineering"},
		{Department: "Engineering"},
		{Department: "Design"},
		{Department: "Accounts"},
	}
	buckets := CountBy(in, ByDepartment)
	if buckets[0].Name != "Engineering" {
		t.Fatalf("expected Engineering first, got %s", buckets[0].Name)
	}
	// Ties break alphabetically for stable chart order.
	if buckets[1].Name != "Accounts" || buckets[2].Name != "Design" {
		t.Fatalf("tie order wrong: %v", buckets)
	}
}

func daysAgo(now time.Time, d int) string {
	return candidate.FormatSubmissionTime(now.AddDate(0, 0, -d))
}

func TestWindow(t *testing.T) {
	now := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	in := []candidate.Candidate{
		{ResumeID: "in", SubmittedAt: daysAgo(now, 10)},
		{ResumeID: "edge", SubmittedAt: daysAgo(now, 30)},
		{ResumeID: "out", SubmittedAt: daysAgo(now, 31)},
		{ResumeID: "none"},
	}
	out := Window(candidate.NormalizeAll(in), now, 30)
	if len(out) != 2 {
		t.Fatalf("expected 2 in the 30-day window, got %d", len(out))
	}
}

func TestRecencyHistogram_WindowAssignment(t *testing.T) {
	now := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	in := candidate.NormalizeAll([]candidate.Candidate{
		{ResumeID: "a", SubmittedAt: daysAgo(now, 1)},
		{ResumeID: "b", SubmittedAt: daysAgo(now, 6)},
		{ResumeID: "c", SubmittedAt: daysAgo(now, 10)},
		{ResumeID: "d", SubmittedAt: daysAgo(now, 20)},
		{ResumeID: "e", SubmittedAt: daysAgo(now, 45)},
	})

	buckets := RecencyHistogram(in, now)

	want := []int{2, 1, 1, 1}
	for i, w := range want {
		if buckets[i].Count != w {
			t.Fatalf("bucket %q: expected %d, got %d", buckets[i].Name, w, buckets[i].Count)
		}
	}
}

func TestRecencyHistogram_Over90DaysFallsOutside(t *testing.T) {
	// Records older than 90 days land in no bucket. That hole is the
	// long-standing dashboard contract; widening the last window would
	// silently change every historical chart.
	now := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	in := candidate.NormalizeAll([]candidate.Candidate{
		{ResumeID: "ancient", SubmittedAt: daysAgo(now, 120)},
	})

	total := 0
	for _, b := range RecencyHistogram(in, now) {
		total += b.Count
	}
	if total != 0 {
		t.Fatalf("expected >90-day record to be uncounted, got total %d", total)
	}
}
