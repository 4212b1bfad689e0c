package candidate

import (
	"strconv"
	"strings"
	"time"
)

// SubmissionTimeLayout is the locale format submissions carry:
// day first, then month, e.g. "17/07/2025, 21:49:58".
const SubmissionTimeLayout = "02/01/2006, 15:04:05"

// ParseSubmissionTime parses a submission timestamp. It fails soft: an
// empty or malformed string yields the zero time so broken records sort
// oldest instead of breaking a listing.
func ParseSubmissionTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	if t, err := time.Parse(SubmissionTimeLayout, s); err == nil {
		return t
	}

	// Date-only fallback, seen on records submitted before the form
	// started recording the time of day.
	datePart, _, _ := strings.Cut(s, ",")
	fields := strings.Split(strings.TrimSpace(datePart), "/")
	if len(fields) != 3 {
		return time.Time{}
	}

	day, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// FormatSubmissionTime renders t in the submission locale format.
func FormatSubmissionTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(SubmissionTimeLayout)
}
