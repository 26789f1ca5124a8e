package interviewRepository

import (
	"InterviewGolang/internal/entity"
	contextPkg "InterviewGolang/pkg/context"
	"context"
	"database/sql"
	"encoding/json"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type AnswerDB struct {
	ID              sql.NullString `db:"id"`
	SessionID       sql.NullString `db:"session_id"`
	QuestionID      sql.NullString `db:"question_id"`
	AudioURL        sql.NullString `db:"audio_url"`
	Transcript      sql.NullString `db:"transcript"`
	Score           sql.NullInt64  `db:"score"`
	Feedback        sql.NullString `db:"feedback"`
	PostureSummary  sql.NullString `db:"posture_summary"`
	EmotionSummary  sql.NullString `db:"emotion_summary"`
	FillerWordCount sql.NullInt64  `db:"filler_word_count"`
	WordsPerMinute  sql.NullInt64  `db:"words_per_minute"`
	DurationSeconds sql.NullInt64  `db:"duration_seconds"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r *answerRepository) CreateAnswer(c context.Context, answer entity.Answer) error {
	requestID := contextPkg.GetRequestID(c)

	postureJSON, err := json.Marshal(answer.PostureSummary)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAnswer posture summary marshal err")
		return err
	}

	emotionJSON, err := json.Marshal(answer.EmotionSummary)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAnswer emotion summary marshal err")
		return err
	}

	argsKV := map[string]interface{}{
		"id":                answer.ID,
		"session_id":        answer.SessionID,
		"question_id":       answer.QuestionID,
		"audio_url":         answer.AudioURL,
		"transcript":        answer.Transcript,
		"score":             answer.Score,
		"feedback":          answer.Feedback,
		"posture_summary":   string(postureJSON),
		"emotion_summary":   string(emotionJSON),
		"filler_word_count": answer.FillerWordCount,
		"words_per_minute":  answer.WordsPerMinute,
		"duration_seconds":  answer.DurationSeconds,
		"created_at":        time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateAnswer, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAnswer named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating answer")
		return err
	}

	return nil
}

func (r *answerRepository) GetAnswersBySessionID(c context.Context, sessionID string) ([]entity.Answer, error) {
	requestID := contextPkg.GetRequestID(c)
	var answers []AnswerDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(queryGetAnswersBySessionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAnswersBySessionID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &answers, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAnswersBySessionID execution err")
		return nil, err
	}

	result := make([]entity.Answer, 0, len(answers))
	for _, answer := range answers {
		result = append(result, r.makeAnswer(requestID, answer))
	}

	return result, nil
}

func (r *answerRepository) makeAnswer(requestID string, answer AnswerDB) entity.Answer {
	result := entity.Answer{
		ID:              answer.ID.String,
		SessionID:       answer.SessionID.String,
		QuestionID:      answer.QuestionID.String,
		AudioURL:        answer.AudioURL.String,
		Transcript:      answer.Transcript.String,
		Score:           int(answer.Score.Int64),
		Feedback:        answer.Feedback.String,
		FillerWordCount: int(answer.FillerWordCount.Int64),
		WordsPerMinute:  int(answer.WordsPerMinute.Int64),
		DurationSeconds: int(answer.DurationSeconds.Int64),
		CreatedAt:       answer.CreatedAt,
	}

	if answer.PostureSummary.Valid && answer.PostureSummary.String != "" {
		if err := json.Unmarshal([]byte(answer.PostureSummary.String), &result.PostureSummary); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to unmarshal posture summary")
		}
	}

	if answer.EmotionSummary.Valid && answer.EmotionSummary.String != "" {
		if err := json.Unmarshal([]byte(answer.EmotionSummary.String), &result.EmotionSummary); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to unmarshal emotion summary")
		}
	}

	return result
}
