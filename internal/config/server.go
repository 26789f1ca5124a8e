package config

import (
	"InterviewGolang/database/postgres"
	authHandler "InterviewGolang/internal/api/auth/handler"
	authRepository "InterviewGolang/internal/api/auth/repository"
	authService "InterviewGolang/internal/api/auth/service"
	interviewHandler "InterviewGolang/internal/api/interview/handler"
	interviewRepository "InterviewGolang/internal/api/interview/repository"
	interviewService "InterviewGolang/internal/api/interview/service"
	"InterviewGolang/internal/coaching"
	"InterviewGolang/internal/middleware"
	"InterviewGolang/pkg/audio"
	"InterviewGolang/pkg/bcrypt"
	"InterviewGolang/pkg/gemini"
	"InterviewGolang/pkg/google"
	"InterviewGolang/pkg/inference"
	"InterviewGolang/pkg/openai"
	"InterviewGolang/pkg/redis"
	"InterviewGolang/pkg/s3"
	"InterviewGolang/pkg/smtp"
	"InterviewGolang/pkg/utils"
	"InterviewGolang/pkg/whatsapp"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine          *fiber.App
	db              *sqlx.DB
	log             *logrus.Logger
	middleware      middleware.Middleware
	validator       *validator.Validate
	utils           utils.IUtils
	bcryptUtils     bcrypt.IBcrypt
	handlers        []handler
	googleProvider  google.ItfGoogle
	redisServer     redis.IRedis
	smtpMailer      smtp.ItfSmtp
	whatsappClient  whatsapp.IWhatsappSender
	geminiClient    gemini.IGemini
	chatGPTClient   openai.IChatGPT
	transcriber     *audio.TranscriptionService
	ttsClient       *audio.TTSService
	s3Client        s3.ItfS3
	inferenceClient inference.IInference
	registry        *coaching.Registry
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithChatGPTClient() ServerOption {
	return func(s *Server) error {
		s.chatGPTClient = openai.NewChatGPT()
		return nil
	}
}

func WithSpeechServices() ServerOption {
	return func(s *Server) error {
		s.transcriber = audio.NewTranscriptionService(os.Getenv("OPENAI_API_KEY"))
		s.ttsClient = audio.NewTTSService(os.Getenv("ELEVENLABS_API_KEY"), os.Getenv("ELEVENLABS_VOICE_ID"))
		return nil
	}
}

func WithInferenceClient() ServerOption {
	return func(s *Server) error {
		s.inferenceClient = inference.NewModelClient()
		return nil
	}
}

func WithCoachingRegistry() ServerOption {
	return func(s *Server) error {
		s.registry = coaching.NewRegistry()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.redisServer, s.s3Client, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider)

	// Interview Domain
	interviewRepo := interviewRepository.New(s.db, s.log)
	interviewServices := interviewService.NewInterviewService(
		s.log, interviewRepo, authRepo, s.registry, s.geminiClient, s.chatGPTClient,
		s.transcriber, s.ttsClient, s.s3Client, s.smtpMailer, s.whatsappClient,
		s.redisServer, s.utils)
	interviewHandlers := interviewHandler.New(s.log, s.validator, s.middleware, interviewServices, s.registry, s.inferenceClient)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, interviewHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1", s.middleware.NewRateLimiter)
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		s.Shutdown()
		return err
	}

	return nil
}

func (s *Server) Shutdown() {
	if s.inferenceClient != nil {
		s.inferenceClient.CloseConnections()
	}
	if s.whatsappClient != nil {
		s.whatsappClient.Disconnect()
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
