package handler

import (
	"bytes"
	"context"
	"errors"
	"log"
	"time"

	"talent-bridge/internal/infrastructure/filestore"
	"talent-bridge/internal/pkg/response"
	"talent-bridge/internal/pkg/signedurl"
	"talent-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const maxResumeBytes = 10 << 20

// FileHandler serves the presigned upload/download surface. Every
// request must carry a grant token scoped to the exact key and method.
type FileHandler struct {
	files   *filestore.Store
	signer  *signedurl.Signer
	resumes usecase.ResumeUsecase
	logger  *log.Logger
}

func NewFileHandler(files *filestore.Store, signer *signedurl.Signer, resumes usecase.ResumeUsecase, logger *log.Logger) *FileHandler {
	return &FileHandler{files: files, signer: signer, resumes: resumes, logger: logger}
}

func (h *FileHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Put("/files/*", h.Upload)
	app.Get("/files/*", h.Download)
}

func (h *FileHandler) Upload(c fiber.Ctx) error {
	key := c.Params("*")
	if err := h.signer.Verify(c.Query("grant"), key, signedurl.MethodPut); err != nil {
		return response.Error(c, fiber.StatusForbidden, response.MessageForbidden, nil)
	}

	body := c.Body()
	if len(body) == 0 {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if len(body) > maxResumeBytes {
		return response.Error(c, fiber.StatusRequestEntityTooLarge, "file too large", nil)
	}

	if err := h.files.Put(key, bytes.NewReader(body)); err != nil {
		if errors.Is(err, filestore.ErrBadKey) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	// Enrichment runs off the request path; the browser gets its ack as
	// soon as the bytes are durable.
	go func(storageKey string) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := h.resumes.CompleteUpload(ctx, storageKey); err != nil && h.logger != nil {
			h.logger.Printf("FILES post-upload processing failed | key=%s error=%v", storageKey, err)
		}
	}(key)

	return response.Success(c, fiber.StatusOK, "Upload complete", fiber.Map{"key": key})
}

func (h *FileHandler) Download(c fiber.Ctx) error {
	key := c.Params("*")
	if err := h.signer.Verify(c.Query("grant"), key, signedurl.MethodGet); err != nil {
		return response.Error(c, fiber.StatusForbidden, response.MessageForbidden, nil)
	}

	rc, err := h.files.Open(key)
	if err != nil {
		switch {
		case errors.Is(err, filestore.ErrBadKey):
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		case errors.Is(err, filestore.ErrNotFound):
			return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
		default:
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
		}
	}

	c.Set(fiber.HeaderContentType, filestore.ContentType(key))
	return c.SendStream(rc)
}
