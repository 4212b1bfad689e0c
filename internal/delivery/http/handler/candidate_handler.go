package handler

import (
	"errors"

	"talent-bridge/internal/delivery/http/dto"
	"talent-bridge/internal/pkg/response"
	"talent-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc    usecase.CandidateUsecase
	stats usecase.StatsUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase, stats usecase.StatsUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc, stats: stats}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/candidates")
	grp.Get("/", h.List)
	grp.Get("/stats", h.Stats)
	grp.Get("/:resume_id", h.Get)
	grp.Post("/status", h.UpdateStatus)
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("resume_id"))
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
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}

func (h *CandidateHandler) UpdateStatus(c fiber.Ctx) error {
	var req dto.UpdateCandidateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), req.ResumeID, req.Status)
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
	return response.Success(c, fiber.StatusOK, "Status updated successfully", updated)
}

func (h *CandidateHandler) Stats(c fiber.Ctx) error {
	overview, err := h.stats.Overview(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, overview)
}
