package handler

import (
	"errors"

	"talent-bridge/internal/delivery/http/dto"
	"talent-bridge/internal/domain/posting"
	"talent-bridge/internal/pkg/response"
	"talent-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.PostingUsecase
}

func NewJobHandler(uc usecase.PostingUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes wires the public listing and the HR management
// endpoints; the caller decides which router carries auth.
func (h *JobHandler) RegisterRoutes(public, hr fiber.Router) {
	if public != nil {
		public.Get("/jobs", h.List)
	}
	if hr != nil {
		hr.Post("/jobs", h.Create)
		hr.Post("/jobs/status", h.Action)
	}
}

func (h *JobHandler) List(c fiber.Ctx) error {
	grouped, err := h.uc.ListGrouped(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, grouped)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), req.ToPosting())
	if err != nil {
		return postingError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Job created successfully", created)
}

func (h *JobHandler) Action(c fiber.Ctx) error {
	var req dto.JobActionRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	p := req.ToPosting()
	p.JobID = req.JobID

	result, err := h.uc.Apply(c.Context(), req.Action, p)
	if err != nil {
		return postingError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func postingError(c fiber.Ctx, err error) error {
	var verr *posting.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.ValidationFailed(c, verr.Fields)
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrNotFound):
		return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
