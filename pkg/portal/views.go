package portal

import (
	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/domain/posting"
	"talent-bridge/internal/filter"
)

// NewCandidateStore builds the HR dashboard's candidate view over the
// filter engine, keyed by resume id.
func NewCandidateStore(client *Client) *CandidateStore {
	return NewStore(
		client.FetchCandidates,
		func(c candidate.Candidate) string { return c.ResumeID },
		filter.Candidates,
	)
}

// NewJobStore builds the postings view, keyed by job id.
func NewJobStore(client *Client) *JobPostingStore {
	return NewStore(
		client.FetchJobs,
		func(p posting.JobPosting) string { return p.JobID },
		filter.Jobs,
	)
}
