package handler

import (
	"errors"

	"talent-bridge/internal/delivery/http/dto"
	"talent-bridge/internal/pkg/response"
	"talent-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/resumes", h.Submit)
}

// Submit is phase one of the two-phase submission: record plus
// presigned upload URL. The file itself arrives through /files.
func (h *ResumeHandler) Submit(c fiber.Ctx) error {
	var req dto.SubmitResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	result, err := h.uc.RegisterSubmission(c.Context(), usecase.SubmissionInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Gender:     req.Gender,
		Address:    req.Address,
		LinkedIn:   req.LinkedIn,
		Marks12:    req.Marks12,
		Pass12:     req.Pass12,
		GradMarks:  req.GradMarks,
		GradYear:   req.GradYear,
		Department: req.Department,
		Experience: req.Experience,
		WorkPref:   req.WorkPref,
		Skills:     req.Skills,
		JobID:      req.JobID,
		JobTitle:   req.JobTitle,
		Filename:   req.Filename,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, "Submission registered", result)
}
