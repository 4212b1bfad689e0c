package app

import (
	"fmt"
	"strings"
	"time"

	"talent-bridge/internal/config"
	"talent-bridge/internal/delivery/http/handler"
	"talent-bridge/internal/delivery/http/middleware"
	"talent-bridge/internal/delivery/http/routes"
	"talent-bridge/internal/pkg/hrauth"
	"talent-bridge/internal/pkg/reviewtoken"
	"talent-bridge/internal/pkg/signedurl"
	"talent-bridge/internal/processor"
	"talent-bridge/internal/repository"
	"talent-bridge/internal/usecase"
	"talent-bridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: 12 << 20,
	})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	candidates := repository.NewPostgresCandidateRepository(c.DB)
	postings := repository.NewPostgresPostingRepository(c.DB)

	signer := signedurl.NewSigner(cfg.Files.URLSecret)
	reviewTokens := reviewtoken.NewHMACService(cfg.Review.TokenSecret, cfg.Review.TokenTTL)
	hrTokens := hrauth.NewHMACService(cfg.Auth.HRTokenSecret, 24*time.Hour)

	proc := processor.New(candidates, postings, c.Files, c.Hub, c.Logger)

	candidateUC := usecase.NewCandidateUsecase(candidates, c.Mailer, c.Logger)
	statsUC := usecase.NewStatsUsecase(candidates, c.Redis, c.Logger)
	resumeUC := usecase.NewResumeUsecase(candidates, signer, c.Mailer, proc, cfg.App, cfg.Files, c.Logger)
	postingUC := usecase.NewPostingUsecase(postings, candidates, c.Logger)
	reviewUC := usecase.NewReviewUsecase(reviewTokens, c.Redis, candidates, c.Mailer, cfg.App, c.Logger)

	registry := &routes.Registry{
		Health:    handler.NewHealthHandler(c.DB, c.Redis),
		Candidate: handler.NewCandidateHandler(candidateUC, statsUC),
		Resume:    handler.NewResumeHandler(resumeUC),
		File:      handler.NewFileHandler(c.Files, signer, resumeUC, c.Logger),
		Job:       handler.NewJobHandler(postingUC),
		Review:    handler.NewReviewHandler(reviewUC, candidateUC),
		WS:        ws.NewHandler(c.Hub, c.Logger),
		Auth:      middleware.NewAuthMiddleware(hrTokens),
	}
	registry.Register(f)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
