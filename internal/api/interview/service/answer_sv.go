package interviewService

import (
	"InterviewGolang/internal/api/interview"
	"InterviewGolang/internal/entity"
	contextPkg "InterviewGolang/pkg/context"
	"InterviewGolang/pkg/textstats"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *interviewService) StartAnswer(ctx context.Context, sessionID string, questionID string, userID string) error {
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

	question, err := repo.Question.GetQuestionByID(ctx, questionID)
	if err != nil {
		return err
	}

	if question.SessionID != sessionID {
		return interview.ErrQuestionNotFound
	}

	if question.IsAnswered {
		return interview.ErrQuestionAlreadyAnswered
	}

	engine, ok := s.registry.Get(sessionID)
	if !ok {
		return interview.ErrNoLiveCoaching
	}

	if session.Status == entity.InterviewStatusCreated {
		if err := repo.Session.UpdateSessionStatus(ctx, sessionID, entity.InterviewStatusInProgress); err != nil {
			return err
		}
	}

	engine.StartAnswer()

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"session_id":  sessionID,
		"question_id": questionID,
	}).Info("Answer recording started")

	return nil
}

func (s *interviewService) StopAnswer(ctx context.Context, sessionID string, questionID string, userID string, durationSeconds int, audioFile *multipart.FileHeader) (interview.AnswerResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.interviewRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return interview.AnswerResponse{}, err
	}

	session, err := s.ownedSession(ctx, repo, sessionID, userID)
	if err != nil {
		return interview.AnswerResponse{}, err
	}

	if session.Status == entity.InterviewStatusFinished {
		return interview.AnswerResponse{}, interview.ErrSessionFinished
	}

	question, err := repo.Question.GetQuestionByID(ctx, questionID)
	if err != nil {
		return interview.AnswerResponse{}, err
	}

	if question.SessionID != sessionID {
		return interview.AnswerResponse{}, interview.ErrQuestionNotFound
	}

	if question.IsAnswered {
		return interview.AnswerResponse{}, interview.ErrQuestionAlreadyAnswered
	}

	engine, ok := s.registry.Get(sessionID)
	if !ok {
		return interview.AnswerResponse{}, interview.ErrNoLiveCoaching
	}

	postureDist, emotionDist := engine.StopAnswer()

	if err := s.utils.ValidateAudioFile(audioFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   audioFile.Filename,
			"error":      err.Error(),
		}).Warn("Invalid answer audio file")
		return interview.AnswerResponse{}, interview.ErrInvalidAudioFile
	}

	audioURL, err := s.s3.UploadAnswerAudio(sessionID, audioFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload answer audio")
		return interview.AnswerResponse{}, interview.ErrFailedToUploadAudio
	}

	transcript, err := s.transcribeUpload(ctx, requestID, audioFile)
	if err != nil {
		return interview.AnswerResponse{}, interview.ErrTranscriptionFailed
	}

	stats := textstats.Analyze(transcript, float64(durationSeconds))

	evaluation, err := s.chatGPT.EvaluateAnswer(ctx, question.Text, transcript)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to evaluate answer")
		return interview.AnswerResponse{}, interview.ErrEvaluationFailed
	}

	answerID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return interview.AnswerResponse{}, err
	}

	answer := entity.Answer{
		ID:              answerID,
		SessionID:       sessionID,
		QuestionID:      questionID,
		AudioURL:        audioURL,
		Transcript:      transcript,
		Score:           evaluation.Score,
		Feedback:        evaluation.Feedback,
		PostureSummary:  postureDist,
		EmotionSummary:  emotionDist,
		FillerWordCount: stats.FillerWordCount,
		WordsPerMinute:  stats.WordsPerMinute,
		DurationSeconds: durationSeconds,
		CreatedAt:       time.Now(),
	}

	txRepo, err := s.interviewRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction client")
		return interview.AnswerResponse{}, err
	}
	defer func() {
		_ = txRepo.Rollback()
	}()

	if err := txRepo.Answer.CreateAnswer(ctx, answer); err != nil {
		return interview.AnswerResponse{}, err
	}

	if err := txRepo.Question.MarkAnswered(ctx, questionID); err != nil {
		return interview.AnswerResponse{}, err
	}

	if err := txRepo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit answer")
		return interview.AnswerResponse{}, err
	}

	// The stored report, if any, no longer reflects this session.
	if err := s.redis.InvalidateReport(ctx, sessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate cached report")
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"session_id":  sessionID,
		"question_id": questionID,
		"score":       evaluation.Score,
	}).Info("Answer recorded and evaluated")

	return makeAnswerResponse(answer), nil
}

// transcribeUpload stages the uploaded recording in a temp file because
// the Whisper client reads from disk.
func (s *interviewService) transcribeUpload(ctx context.Context, requestID string, audioFile *multipart.FileHeader) (string, error) {
	src, err := audioFile.Open()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to open answer audio")
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "answer-*"+filepath.Ext(audioFile.Filename))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create temp file for transcription")
		return "", err
	}
	defer func() {
		tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to remove temp audio file")
		}
	}()

	if _, err := io.Copy(tmp, src); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to stage answer audio")
		return "", err
	}

	transcript, err := s.transcriber.TranscribeAudio(ctx, tmp.Name())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to transcribe answer audio")
		return "", err
	}

	return transcript, nil
}

func makeAnswerResponse(answer entity.Answer) interview.AnswerResponse {
	return interview.AnswerResponse{
		ID:              answer.ID,
		QuestionID:      answer.QuestionID,
		AudioURL:        answer.AudioURL,
		Transcript:      answer.Transcript,
		Score:           answer.Score,
		Feedback:        answer.Feedback,
		PostureSummary:  answer.PostureSummary,
		EmotionSummary:  answer.EmotionSummary,
		FillerWordCount: answer.FillerWordCount,
		WordsPerMinute:  answer.WordsPerMinute,
		DurationSeconds: answer.DurationSeconds,
	}
}
