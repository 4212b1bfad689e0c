package ws

import (
	"encoding/json"
	"time"
)

// ResumeProcessedEvent tells HR dashboards that a new submission has
// finished extraction and is ready for review.
type ResumeProcessedEvent struct {
	Type          string   `json:"type"`
	ResumeID      string   `json:"resume_id"`
	CandidateName string   `json:"candidate_name"`
	Email         string   `json:"email"`
	Department    string   `json:"department"`
	Skills        []string `json:"skills"`
	Timestamp     string   `json:"timestamp"`
}

// NotifyResumeProcessed broadcasts the event to all connected clients.
// A nil hub is a no-op so the pipeline can run without the server.
func NotifyResumeProcessed(h *Hub, evt ResumeProcessedEvent) {
	if h == nil {
		return
	}
	evt.Type = "resume_processed"
	if evt.Timestamp == "" {
		evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
