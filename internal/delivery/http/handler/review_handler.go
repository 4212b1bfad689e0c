package handler

import (
	"errors"

	"talent-bridge/internal/delivery/http/dto"
	"talent-bridge/internal/mail"
	"talent-bridge/internal/pkg/response"
	"talent-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReviewHandler struct {
	uc         usecase.ReviewUsecase
	candidates usecase.CandidateUsecase
}

func NewReviewHandler(uc usecase.ReviewUsecase, candidates usecase.CandidateUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc, candidates: candidates}
}

// RegisterRoutes splits the surface: issuing and revoking links is
// HR-only, validation is reached by external reviewers with nothing
// but the token.
func (h *ReviewHandler) RegisterRoutes(public, hr fiber.Router) {
	if hr != nil {
		hr.Post("/review/links", h.CreateLink)
		hr.Delete("/review/links", h.RevokeLink)
	}
	if public != nil {
		public.Get("/review/validate", h.Validate)
	}
}

func (h *ReviewHandler) CreateLink(c fiber.Ctx) error {
	var req dto.CreateReviewLinkRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	cc := append(mail.SplitCCList(req.CCRaw), req.CCEmails...)

	link, err := h.uc.CreateLink(c.Context(), req.ResumeID, req.ReviewerEmail, cc)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		case errors.Is(err, usecase.ErrNotFound):
			return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
		default:
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
		}
	}
	return response.Success(c, fiber.StatusOK, "Review link sent", link)
}

func (h *ReviewHandler) Validate(c fiber.Ctx) error {
	rc, err := h.uc.ValidateToken(c.Context(), c.Query("token"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		case errors.Is(err, usecase.ErrTokenExpired):
			return response.Error(c, fiber.StatusUnauthorized, "Token expired", nil)
		case errors.Is(err, usecase.ErrTokenRevoked):
			return response.Error(c, fiber.StatusUnauthorized, "Token revoked", nil)
		case errors.Is(err, usecase.ErrUnauthorized):
			return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
		case errors.Is(err, usecase.ErrNotFound):
			return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
		default:
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rc)
}

func (h *ReviewHandler) RevokeLink(c fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.RevokeToken(c.Context(), req.Token); err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, "Review link revoked", nil)
}

// Decide applies an external reviewer's terminal decision. The token
// scopes the write to exactly the candidate it was issued for, and a
// used token is revoked so the link goes dead afterwards.
func (h *ReviewHandler) Decide(c fiber.Ctx) error {
	var req dto.ReviewDecisionRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if !dto.AllowedReviewDecision(req.Status) {
		return response.Error(c, fiber.StatusBadRequest, "decision not permitted", nil)
	}

	rc, err := h.uc.ValidateToken(c.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTokenExpired):
			return response.Error(c, fiber.StatusUnauthorized, "Token expired", nil)
		case errors.Is(err, usecase.ErrTokenRevoked):
			return response.Error(c, fiber.StatusUnauthorized, "Token revoked", nil)
		default:
			return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
		}
	}

	updated, err := h.candidates.UpdateStatus(c.Context(), rc.Candidate.ResumeID, req.Status)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	_ = h.uc.RevokeToken(c.Context(), req.Token)

	return response.Success(c, fiber.StatusOK, "Decision recorded", updated)
}
