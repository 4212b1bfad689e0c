// Package portal is the Go client for the recruitment portal API plus
// the view-state machinery its dashboards run on. Everything here is
// safe to embed in another service or a terminal UI.
package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/domain/posting"
)

// Client talks to the portal API. HR-only calls attach the bearer
// token when one is set; public calls work without it.
type Client struct {
	http  *resty.Client
	token string
}

func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// SetToken installs the HR bearer token for authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) req(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if c.token != "" {
		r.SetAuthToken(c.token)
	}
	return r
}

// apiError turns a non-2xx envelope into a readable error.
func apiError(op string, resp *resty.Response) error {
	msg := gjson.GetBytes(resp.Body(), "message").String()
	if msg == "" {
		msg = resp.Status()
	}
	return fmt.Errorf("%s: %s", op, msg)
}

func (c *Client) FetchCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	resp, err := c.req(ctx).Get("/api/v1/candidates")
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("fetch candidates", resp)
	}

	var out []candidate.Candidate
	data := gjson.GetBytes(resp.Body(), "data")
	if err := json.Unmarshal([]byte(data.Raw), &out); err != nil {
		return nil, fmt.Errorf("fetch candidates: decode: %w", err)
	}
	return candidate.NormalizeAll(out), nil
}

// FetchJobs flattens the server's department-grouped payload into a
// single slice; grouping is a server presentation detail the client
// re-derives locally when needed.
func (c *Client) FetchJobs(ctx context.Context) ([]posting.JobPosting, error) {
	resp, err := c.req(ctx).Get("/api/v1/jobs")
	if err != nil {
		return nil, fmt.Errorf("fetch jobs: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("fetch jobs", resp)
	}

	var out []posting.JobPosting
	var decodeErr error
	gjson.GetBytes(resp.Body(), "data").ForEach(func(_, group gjson.Result) bool {
		group.ForEach(func(_, item gjson.Result) bool {
			var p posting.JobPosting
			if err := json.Unmarshal([]byte(item.Raw), &p); err != nil {
				decodeErr = err
				return false
			}
			out = append(out, p)
			return true
		})
		return decodeErr == nil
	})
	if decodeErr != nil {
		return nil, fmt.Errorf("fetch jobs: decode: %w", decodeErr)
	}
	return out, nil
}

func (c *Client) UpdateCandidateStatus(ctx context.Context, resumeID, email, firstName, status string) error {
	resp, err := c.req(ctx).
		SetBody(map[string]string{
			"resume_id":  resumeID,
			"email":      email,
			"first_name": firstName,
			"status":     status,
		}).
		Post("/api/v1/candidates/status")
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if resp.IsError() {
		return apiError("update status", resp)
	}
	return nil
}

// SubmissionForm is the application form payload for SubmitResume.
type SubmissionForm struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Gender     string   `json:"gender"`
	Address    string   `json:"address"`
	Department string   `json:"department"`
	Experience string   `json:"experience"`
	WorkPref   string   `json:"work_pref"`
	Skills     []string `json:"skills"`
	JobID      string   `json:"jobId"`
	JobTitle   string   `json:"jobTitle"`
	Filename   string   `json:"filename"`
}

// SubmitResume runs the two-phase submission: register metadata, then
// PUT the raw bytes to the presigned URL. A failed second phase fails
// the whole submission, the registered record stays in Uploaded and
// never reaches review.
func (c *Client) SubmitResume(ctx context.Context, form SubmissionForm, fileBytes []byte) (resumeID string, err error) {
	resp, err := c.req(ctx).SetBody(form).Post("/api/v1/resumes")
	if err != nil {
		return "", fmt.Errorf("submit resume: %w", err)
	}
	if resp.IsError() {
		return "", apiError("submit resume", resp)
	}

	body := resp.Body()
	resumeID = gjson.GetBytes(body, "data.resume_id").String()
	uploadURL := gjson.GetBytes(body, "data.upload_url").String()
	contentType := gjson.GetBytes(body, "data.content_type").String()
	if resumeID == "" || uploadURL == "" {
		return "", fmt.Errorf("submit resume: malformed registration response")
	}

	up, err := resty.New().SetTimeout(2*time.Minute).R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(fileBytes).
		Put(uploadURL)
	if err != nil {
		return "", fmt.Errorf("upload resume file: %w", err)
	}
	if up.IsError() {
		return "", apiError("upload resume file", up)
	}
	return resumeID, nil
}

// PostJob validates locally before any network call; a ValidationError
// from posting.Validate comes back as-is.
func (c *Client) PostJob(ctx context.Context, p posting.JobPosting) (posting.JobPosting, error) {
	if err := posting.Validate(p, time.Now()); err != nil {
		return posting.JobPosting{}, err
	}

	resp, err := c.req(ctx).SetBody(p).Post("/api/v1/jobs")
	if err != nil {
		return posting.JobPosting{}, fmt.Errorf("post job: %w", err)
	}
	if resp.IsError() {
		return posting.JobPosting{}, apiError("post job", resp)
	}

	var created posting.JobPosting
	data := gjson.GetBytes(resp.Body(), "data")
	if err := json.Unmarshal([]byte(data.Raw), &created); err != nil {
		return posting.JobPosting{}, fmt.Errorf("post job: decode: %w", err)
	}
	return created, nil
}

// UpdateJobStatus drives the action endpoint: update_status,
// update_job_details or delete.
func (c *Client) UpdateJobStatus(ctx context.Context, action string, p posting.JobPosting) error {
	payload := map[string]any{
		"action": action,
		"job_id": p.JobID,
	}
	if action == "update_job_details" || action == "update_status" {
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("job action: encode: %w", err)
		}
		if err := json.Unmarshal(b, &payload); err != nil {
			return fmt.Errorf("job action: encode: %w", err)
		}
		payload["action"] = action
		payload["job_id"] = p.JobID
	}

	resp, err := c.req(ctx).SetBody(payload).Post("/api/v1/jobs/status")
	if err != nil {
		return fmt.Errorf("job action %s: %w", action, err)
	}
	if resp.IsError() {
		return apiError("job action "+action, resp)
	}
	return nil
}

// CreateReviewLink requests a tokenized reviewer link for cand. The
// candidate's name and department ride along for the reviewer email;
// the server still re-derives both from the stored record.
func (c *Client) CreateReviewLink(ctx context.Context, cand candidate.Candidate, reviewerEmail string, ccEmails []string) error {
	resp, err := c.req(ctx).
		SetBody(map[string]any{
			"resume_id":      cand.ResumeID,
			"reviewer_email": reviewerEmail,
			"cc_emails":      ccEmails,
			"candidate_name": cand.FullName(),
			"department":     cand.Department,
		}).
		Post("/api/v1/review/links")
	if err != nil {
		return fmt.Errorf("create review link: %w", err)
	}
	if resp.IsError() {
		return apiError("create review link", resp)
	}
	return nil
}

func (c *Client) ValidateReviewToken(ctx context.Context, token string) (candidate.Candidate, error) {
	resp, err := c.req(ctx).
		SetQueryParam("token", token).
		Get("/api/v1/review/validate")
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("validate review token: %w", err)
	}
	if resp.IsError() {
		return candidate.Candidate{}, apiError("validate review token", resp)
	}

	var out candidate.Candidate
	data := gjson.GetBytes(resp.Body(), "data.candidate")
	if err := json.Unmarshal([]byte(data.Raw), &out); err != nil {
		return candidate.Candidate{}, fmt.Errorf("validate review token: decode: %w", err)
	}
	return candidate.Normalize(out), nil
}

// SubmitReviewDecision posts a reviewer's terminal verdict through
// the tokenized decision endpoint.
func (c *Client) SubmitReviewDecision(ctx context.Context, token, status string) error {
	resp, err := c.req(ctx).
		SetBody(map[string]string{"token": token, "status": status}).
		Post("/api/v1/candidates/status/review")
	if err != nil {
		return fmt.Errorf("review decision: %w", err)
	}
	if resp.IsError() {
		return apiError("review decision", resp)
	}
	return nil
}
