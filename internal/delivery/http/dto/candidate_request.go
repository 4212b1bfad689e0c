package dto

// UpdateCandidateStatusRequest mirrors the historical payload shape;
// email and first_name ride along for auditability but resume_id and
// status drive the update.
type UpdateCandidateStatusRequest struct {
	ResumeID  string `json:"resume_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Status    string `json:"status"`
}
