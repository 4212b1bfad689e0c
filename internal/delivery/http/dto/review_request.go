package dto

type CreateReviewLinkRequest struct {
	ResumeID      string   `json:"resume_id"`
	ReviewerEmail string   `json:"reviewer_email"`
	CCEmails      []string `json:"cc_emails"`

	// CCRaw accepts the comma-separated form the portal's input field
	// produces; it is merged with CCEmails after splitting.
	CCRaw string `json:"cc"`

	// CandidateName and Department ride along from the dashboard for
	// display purposes; the stored record stays authoritative and both
	// are re-derived server-side before the email goes out.
	CandidateName string `json:"candidate_name"`
	Department    string `json:"department"`
}

// ReviewDecisionRequest carries an external reviewer's verdict.
type ReviewDecisionRequest struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

// AllowedReviewDecision limits reviewers to the two terminal calls
// they are asked to make; everything else stays HR-only.
func AllowedReviewDecision(status string) bool {
	switch status {
	case "Advanced by HOD", "Rejected":
		return true
	default:
		return false
	}
}
