package portal

import (
	"context"
	"errors"
	"fmt"

	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/mail"
)

// BridgeState is the reviewer page's lifecycle.
type BridgeState string

const (
	// StateAccessDenied: no token in the URL, nothing was or will be
	// requested from the server.
	StateAccessDenied BridgeState = "access_denied"
	StatePending      BridgeState = "pending"
	StateReady        BridgeState = "ready"
	StateInvalid      BridgeState = "invalid"
	StateCompleted    BridgeState = "completed"
)

var (
	ErrAccessDenied     = errors.New("access denied: no review token")
	ErrDecisionComplete = errors.New("decision already recorded")
	ErrBridgeNotReady   = errors.New("token not validated yet")
	ErrBadDecision      = errors.New("decision not permitted for reviewers")
)

// ReviewDecisions are the only two calls an external reviewer makes.
var ReviewDecisions = []string{
	string(candidate.StatusAdvancedByHOD),
	string(candidate.StatusRejected),
}

// Bridge drives the external reviewer flow: token in, candidate out,
// one terminal decision.
type Bridge struct {
	client *Client
	token  string

	state     BridgeState
	candidate candidate.Candidate
}

// NewBridge inspects the token before anything else. An empty token
// short-circuits to AccessDenied; no network traffic happens then or
// later.
func NewBridge(client *Client, token string) *Bridge {
	b := &Bridge{client: client, token: token, state: StatePending}
	if token == "" {
		b.state = StateAccessDenied
	}
	return b
}

func (b *Bridge) State() BridgeState { return b.state }

// Candidate is valid only in StateReady or StateCompleted.
func (b *Bridge) Candidate() candidate.Candidate { return b.candidate }

// Validate exchanges the token for the candidate under review.
func (b *Bridge) Validate(ctx context.Context) (candidate.Candidate, error) {
	switch b.state {
	case StateAccessDenied:
		return candidate.Candidate{}, ErrAccessDenied
	case StateCompleted:
		return b.candidate, nil
	}

	c, err := b.client.ValidateReviewToken(ctx, b.token)
	if err != nil {
		b.state = StateInvalid
		return candidate.Candidate{}, err
	}
	b.candidate = c
	b.state = StateReady
	return c, nil
}

// Decide submits one of the two terminal verdicts. After a success
// the bridge is completed and refuses any further decision.
func (b *Bridge) Decide(ctx context.Context, status string) error {
	switch b.state {
	case StateAccessDenied:
		return ErrAccessDenied
	case StateCompleted:
		return ErrDecisionComplete
	case StateReady:
	default:
		return ErrBridgeNotReady
	}

	allowed := false
	for _, d := range ReviewDecisions {
		if d == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrBadDecision
	}

	if err := b.client.SubmitReviewDecision(ctx, b.token, status); err != nil {
		return err
	}
	b.candidate.Status = candidate.ParseStatus(status)
	b.state = StateCompleted
	return nil
}

// InitiateReview is the HR side of the bridge: send a tokenized link
// to an external reviewer. The CC field accepts the raw comma-separated
// text an input box produces. Not idempotent, a double click sends two
// links.
func InitiateReview(ctx context.Context, client *Client, cand candidate.Candidate, reviewerEmail, ccRaw string) (string, error) {
	if reviewerEmail == "" {
		return "", fmt.Errorf("reviewer email is required")
	}
	cc := mail.SplitCCList(ccRaw)
	if err := client.CreateReviewLink(ctx, cand, reviewerEmail, cc); err != nil {
		return "", fmt.Errorf("failed to send review request: %w", err)
	}
	return "Review request sent to " + reviewerEmail, nil
}
