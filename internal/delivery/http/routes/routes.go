package routes

import (
	"talent-bridge/internal/delivery/http/handler"
	"talent-bridge/internal/delivery/http/middleware"
	"talent-bridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry owns the HTTP surface. Three zones: public (application
// form, reviewer validation, presigned files), HR (bearer-token
// gated), and the notification websocket.
type Registry struct {
	Health    *handler.HealthHandler
	Candidate *handler.CandidateHandler
	Resume    *handler.ResumeHandler
	File      *handler.FileHandler
	Job       *handler.JobHandler
	Review    *handler.ReviewHandler
	WS        *ws.Handler

	Auth *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)
	r.File.RegisterRoutes(app)
	app.Get("/ws/notifications", r.WS.HandleNotificationsWS)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	hr := v1.Group("", r.Auth.Middleware())

	r.Resume.RegisterRoutes(v1)
	r.Job.RegisterRoutes(v1, hr)
	r.Review.RegisterRoutes(v1, hr)

	// Candidate data and stats are HR-only; reviewer access goes
	// through the tokenized validate endpoint instead.
	r.Candidate.RegisterRoutes(hr)

	// The shared status endpoint serves both HR (bearer token) and
	// reviewers (review token); the handler-level split lives here so
	// the reviewer path stays outside the auth group.
	v1.Post("/candidates/status/review", r.reviewDecision)
}

// reviewDecision lets a tokenized reviewer submit a terminal decision
// without HR credentials: the review token in the body is validated
// and then the regular status update runs for that candidate only.
func (r *Registry) reviewDecision(c fiber.Ctx) error {
	return r.Review.Decide(c)
}
