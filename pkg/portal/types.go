package portal

import (
	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/domain/posting"
	"talent-bridge/internal/filter"
)

// The domain and filter packages live under internal/, which outside
// modules cannot import. Everything the client-facing API mentions is
// aliased here so a consumer can construct filters, postings and
// candidates through this package alone.

type (
	Candidate       = candidate.Candidate
	CandidateStatus = candidate.Status
	Gender          = candidate.Gender
	WorkPref        = candidate.WorkPref
	Entities        = candidate.Entities

	JobPosting      = posting.JobPosting
	JobStatus       = posting.Status
	ValidationError = posting.ValidationError
	CandidateFilter = filter.CandidateFilter
	JobFilter       = filter.JobFilter
	CandidateStore  = Store[candidate.Candidate, filter.CandidateFilter]
	JobPostingStore = Store[posting.JobPosting, filter.JobFilter]
)

const (
	StatusNotAvailable         = candidate.StatusNotAvailable
	StatusUploaded             = candidate.StatusUploaded
	StatusUnderReview          = candidate.StatusUnderReview
	StatusAdvanced             = candidate.StatusAdvanced
	StatusAdvancedByHOD        = candidate.StatusAdvancedByHOD
	StatusAdvancedForInterview = candidate.StatusAdvancedForInterview
	StatusRejected             = candidate.StatusRejected

	JobStatusActive   = posting.StatusActive
	JobStatusInactive = posting.StatusInactive
)
