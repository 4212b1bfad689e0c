package processor

import (
	"context"
	"log"
	"time"

	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/infrastructure/filestore"
	"talent-bridge/internal/repository"
	"talent-bridge/internal/ws"
)

// Processor enriches a stored submission after its file lands: text
// extraction, skill and entity detection, match scoring against the
// applied posting, then a broadcast to connected dashboards.
type Processor struct {
	candidates repository.CandidateRepository
	postings   repository.PostingRepository
	files      *filestore.Store
	hub        *ws.Hub
	logger     *log.Logger
}

func New(candidates repository.CandidateRepository, postings repository.PostingRepository, files *filestore.Store, hub *ws.Hub, logger *log.Logger) *Processor {
	return &Processor{
		candidates: candidates,
		postings:   postings,
		files:      files,
		hub:        hub,
		logger:     logger,
	}
}

// Process runs the enrichment pipeline for one submission. Extraction
// failures degrade to form-field data only, the submission still moves
// to Under Review so it never disappears from the dashboard.
func (p *Processor) Process(ctx context.Context, resumeID string) error {
	c, err := p.candidates.GetByID(ctx, resumeID)
	if err != nil {
		return err
	}

	text := p.extractText(c)

	skills := ExtractSkills(text)
	if len(skills) == 0 {
		skills = c.Skills
	}
	ents := ExtractEntities(text, c)

	var matchedSkills []string
	var matchPct float64
	if c.JobID != "" {
		if posting, err := p.postings.GetByID(ctx, c.JobID); err == nil {
			matchedSkills, matchPct = MatchSkills(skills, posting.Skills)
		} else if p.logger != nil {
			p.logger.Printf("PROCESS posting lookup failed | resume_id=%s job_id=%s error=%v", resumeID, c.JobID, err)
		}
	}

	upd := repository.ExtractionUpdate{
		ExtractedText:   text,
		Skills:          skills,
		Entities:        ents,
		MatchedSkills:   matchedSkills,
		MatchPercentage: matchPct,
		Status:          candidate.StatusUnderReview,
	}
	if err := p.candidates.UpdateExtraction(ctx, resumeID, upd); err != nil {
		return err
	}

	ws.NotifyResumeProcessed(p.hub, ws.ResumeProcessedEvent{
		ResumeID:      resumeID,
		CandidateName: c.FullName(),
		Email:         c.Email,
		Department:    c.Department,
		Skills:        skills,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
	if p.logger != nil {
		p.logger.Printf("PROCESS done | resume_id=%s skills=%d match=%.2f", resumeID, len(skills), matchPct)
	}
	return nil
}

func (p *Processor) extractText(c candidate.Candidate) string {
	if p.files == nil || c.StorageKey == "" {
		return ""
	}
	path, err := p.files.LocalPath(c.StorageKey)
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("PROCESS file missing | resume_id=%s key=%s error=%v", c.ResumeID, c.StorageKey, err)
		}
		return ""
	}
	text, err := ExtractText(path)
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("PROCESS extract failed | resume_id=%s error=%v", c.ResumeID, err)
		}
		return ""
	}
	return text
}
