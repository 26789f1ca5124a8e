package interviewService

import (
	"InterviewGolang/internal/api/interview"
	interviewRepository "InterviewGolang/internal/api/interview/repository"
	"InterviewGolang/internal/entity"
	contextPkg "InterviewGolang/pkg/context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultQuestionCount = 5

func (s *interviewService) CreateSession(ctx context.Context, req interview.CreateSessionRequest) (interview.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	questionCount := req.QuestionCount
	if questionCount == 0 {
		questionCount = defaultQuestionCount
	}

	questions, err := s.generateQuestions(ctx, req.TargetRole, questionCount)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"target_role": req.TargetRole,
			"error":       err.Error(),
		}).Error("Failed to generate interview questions")
		return interview.SessionResponse{}, interview.ErrQuestionGeneration
	}

	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return interview.SessionResponse{}, err
	}

	session := entity.InterviewSession{
		ID:         sessionID,
		UserID:     req.UserID,
		TargetRole: req.TargetRole,
		Status:     entity.InterviewStatusCreated,
		StartedAt:  time.Now(),
	}

	repo, err := s.interviewRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return interview.SessionResponse{}, err
	}
	defer func() {
		if err := repo.Rollback(); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Debug("Rollback after commit or failure")
		}
	}()

	if err := repo.Session.CreateSession(ctx, session); err != nil {
		return interview.SessionResponse{}, err
	}

	questionEntities := make([]entity.InterviewQuestion, 0, len(questions))
	for i, text := range questions {
		questionID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate ULID for question")
			return interview.SessionResponse{}, err
		}

		speechURL := s.generateQuestionSpeech(requestID, sessionID, text)

		question := entity.InterviewQuestion{
			ID:        questionID,
			SessionID: sessionID,
			Ordinal:   i + 1,
			Text:      text,
			SpeechURL: speechURL,
		}

		if err := repo.Question.CreateQuestion(ctx, question); err != nil {
			return interview.SessionResponse{}, err
		}
		questionEntities = append(questionEntities, question)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit session creation")
		return interview.SessionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"session_id":  sessionID,
		"target_role": req.TargetRole,
		"questions":   len(questionEntities),
	}).Info("Interview session created")

	return makeSessionResponse(session, questionEntities), nil
}

func (s *interviewService) GetSession(ctx context.Context, sessionID string, userID string) (interview.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.interviewRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return interview.SessionResponse{}, err
	}

	session, err := s.ownedSession(ctx, repo, sessionID, userID)
	if err != nil {
		return interview.SessionResponse{}, err
	}

	questions, err := repo.Question.GetQuestionsBySessionID(ctx, sessionID)
	if err != nil {
		return interview.SessionResponse{}, err
	}

	return makeSessionResponse(session, questions), nil
}

func (s *interviewService) GetSessionsByUser(ctx context.Context, userID string) ([]interview.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.interviewRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	sessions, err := repo.Session.GetSessionsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]interview.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, makeSessionResponse(session, nil))
	}

	return responses, nil
}

func (s *interviewService) FinishSession(ctx context.Context, sessionID string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.interviewRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	session, err := s.ownedSession(ctx, repo, sessionID, userID)
	if err != nil {
		return err
	}

	if session.Status == entity.InterviewStatusFinished {
		return interview.ErrSessionFinished
	}

	if err := repo.Session.FinishSession(ctx, sessionID); err != nil {
		return err
	}

	// Any live coaching connection stops feeding once the session is over.
	s.registry.Detach(sessionID)

	report, err := s.GetReport(ctx, sessionID, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Report unavailable after finishing session, skipping notifications")
		return nil
	}

	s.notifyReportReady(ctx, requestID, userID, report)

	return nil
}

// notifyReportReady sends the report summary over email and WhatsApp.
// Delivery failures are logged, never surfaced: the session is already
// finished by the time we get here.
func (s *interviewService) notifyReportReady(ctx context.Context, requestID string, userID string, report interview.ReportResponse) {
	authRepo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create auth client for report notification")
		return
	}

	user, err := authRepo.Users.GetByID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to load user for report notification")
		return
	}

	if user.Email != "" {
		if err := s.smtp.SendReportEmail(user.Email, report.TargetRole, report.OverallScore, report.Summary); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to send report email")
		}
	}

	if user.PhoneNumber != "" && s.whatsapp != nil && s.whatsapp.IsConnected() {
		if err := s.whatsapp.NotifyReportReady(ctx, user.PhoneNumber, report.TargetRole, report.OverallScore); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to send WhatsApp report notification")
		}
	}
}

func (s *interviewService) generateQuestions(ctx context.Context, targetRole string, count int) ([]string, error) {
	prompt := fmt.Sprintf(`You are an experienced interviewer hiring for the role of %q.
Write %d interview questions for a mock interview: a mix of behavioral and role-specific questions,
each answerable in one to three minutes of speech.
Respond ONLY with a JSON array of strings, no markdown, no numbering.`, targetRole, count)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := parseQuestionList(text)
	if err != nil {
		return nil, err
	}

	if len(questions) > count {
		questions = questions[:count]
	}

	return questions, nil
}

// parseQuestionList tolerates models wrapping the JSON array in prose or
// markdown fences.
func parseQuestionList(text string) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in model response")
	}

	var questions []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &questions); err != nil {
		return nil, fmt.Errorf("parsing question list: %w", err)
	}

	cleaned := make([]string, 0, len(questions))
	for _, q := range questions {
		q = strings.TrimSpace(q)
		if q != "" {
			cleaned = append(cleaned, q)
		}
	}

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}

	return cleaned, nil
}

// generateQuestionSpeech is best effort: a session without question audio
// is still usable, the client falls back to showing the text.
func (s *interviewService) generateQuestionSpeech(requestID string, sessionID string, text string) string {
	if s.tts == nil {
		return ""
	}

	speech, err := s.tts.GenerateAudio(text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to synthesize question speech")
		return ""
	}

	url, err := s.s3.UploadQuestionSpeech(sessionID, speech)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to upload question speech")
		return ""
	}

	return url
}

// ownedSession loads a session and enforces that it belongs to the caller.
func (s *interviewService) ownedSession(ctx context.Context, repo interviewRepository.Client, sessionID string, userID string) (entity.InterviewSession, error) {
	session, err := repo.Session.GetSessionByID(ctx, sessionID)
	if err != nil {
		return entity.InterviewSession{}, err
	}

	if session.UserID != userID {
		return entity.InterviewSession{}, interview.ErrSessionNotOwned
	}

	return session, nil
}

func makeSessionResponse(session entity.InterviewSession, questions []entity.InterviewQuestion) interview.SessionResponse {
	resp := interview.SessionResponse{
		ID:         session.ID,
		TargetRole: session.TargetRole,
		Status:     string(session.Status),
		StartedAt:  session.StartedAt,
		EndedAt:    session.EndedAt,
	}

	for _, q := range questions {
		resp.Questions = append(resp.Questions, interview.QuestionResponse{
			ID:         q.ID,
			Ordinal:    q.Ordinal,
			Text:       q.Text,
			SpeechURL:  q.SpeechURL,
			IsAnswered: q.IsAnswered,
		})
	}

	return resp
}
