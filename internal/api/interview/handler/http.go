package interviewHandler

import (
	interviewService "InterviewGolang/internal/api/interview/service"
	"InterviewGolang/internal/coaching"
	"InterviewGolang/internal/middleware"
	"InterviewGolang/pkg/inference"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type InterviewHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	interviewService interviewService.IInterviewService
	registry         *coaching.Registry
	inference        inference.IInference
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	is interviewService.IInterviewService,
	registry *coaching.Registry,
	inference inference.IInference,
) *InterviewHandler {
	return &InterviewHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		interviewService: is,
		registry:         registry,
		inference:        inference,
	}
}

func (h *InterviewHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	interviews := srv.Group("/interviews")

	interviews.Post("/", h.middleware.NewTokenMiddleware, h.CreateSession)
	interviews.Get("/", h.middleware.NewTokenMiddleware, h.GetSessions)
	interviews.Get("/:id", h.middleware.NewTokenMiddleware, h.GetSession)
	interviews.Post("/:id/finish", h.middleware.NewTokenMiddleware, h.FinishSession)
	interviews.Get("/:id/report", h.middleware.NewTokenMiddleware, h.GetReport)
	interviews.Post("/:id/questions/:questionId/answer/start", h.middleware.NewTokenMiddleware, h.StartAnswer)
	interviews.Post("/:id/questions/:questionId/answer/stop", h.middleware.NewTokenMiddleware, h.StopAnswer)

	interviews.Use("/:id/coaching/ws", wsMiddleware)
	interviews.Get("/:id/coaching/ws", websocket.New(h.handleCoachingWebSocket))
}
