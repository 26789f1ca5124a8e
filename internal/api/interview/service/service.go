package interviewService

import (
	authRepository "InterviewGolang/internal/api/auth/repository"
	"InterviewGolang/internal/api/interview"
	interviewRepository "InterviewGolang/internal/api/interview/repository"
	"InterviewGolang/internal/coaching"
	"InterviewGolang/pkg/audio"
	"InterviewGolang/pkg/gemini"
	"InterviewGolang/pkg/openai"
	"InterviewGolang/pkg/redis"
	"InterviewGolang/pkg/s3"
	"InterviewGolang/pkg/smtp"
	"InterviewGolang/pkg/utils"
	"InterviewGolang/pkg/whatsapp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"mime/multipart"
)

type IInterviewService interface {
	CreateSession(ctx context.Context, req interview.CreateSessionRequest) (interview.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string, userID string) (interview.SessionResponse, error)
	GetSessionsByUser(ctx context.Context, userID string) ([]interview.SessionResponse, error)
	StartAnswer(ctx context.Context, sessionID string, questionID string, userID string) error
	StopAnswer(ctx context.Context, sessionID string, questionID string, userID string, durationSeconds int, audioFile *multipart.FileHeader) (interview.AnswerResponse, error)
	GetReport(ctx context.Context, sessionID string, userID string) (interview.ReportResponse, error)
	FinishSession(ctx context.Context, sessionID string, userID string) error
}

type interviewService struct {
	log                 *logrus.Logger
	interviewRepository interviewRepository.Repository
	authRepository      authRepository.Repository
	registry            *coaching.Registry
	gemini              gemini.IGemini
	chatGPT             openai.IChatGPT
	transcriber         *audio.TranscriptionService
	tts                 *audio.TTSService
	s3                  s3.ItfS3
	smtp                smtp.ItfSmtp
	whatsapp            whatsapp.IWhatsappSender
	redis               redis.IRedis
	utils               utils.IUtils
}

func NewInterviewService(
	log *logrus.Logger,
	ir interviewRepository.Repository,
	ar authRepository.Repository,
	registry *coaching.Registry,
	gemini gemini.IGemini,
	chatGPT openai.IChatGPT,
	transcriber *audio.TranscriptionService,
	tts *audio.TTSService,
	s3 s3.ItfS3,
	smtp smtp.ItfSmtp,
	whatsapp whatsapp.IWhatsappSender,
	redis redis.IRedis,
	utils utils.IUtils,
) IInterviewService {
	return &interviewService{
		log:                 log,
		interviewRepository: ir,
		authRepository:      ar,
		registry:            registry,
		gemini:              gemini,
		chatGPT:             chatGPT,
		transcriber:         transcriber,
		tts:                 tts,
		s3:                  s3,
		smtp:                smtp,
		whatsapp:            whatsapp,
		redis:               redis,
		utils:               utils,
	}
}
