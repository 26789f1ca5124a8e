package interviewRepository

import (
	"InterviewGolang/internal/api/interview"
	"InterviewGolang/internal/entity"
	contextPkg "InterviewGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type InterviewSessionDB struct {
	ID         sql.NullString `db:"id"`
	UserID     sql.NullString `db:"user_id"`
	TargetRole sql.NullString `db:"target_role"`
	Status     sql.NullString `db:"status"`
	StartedAt  time.Time      `db:"started_at"`
	EndedAt    sql.NullTime   `db:"ended_at"`
}

type InterviewQuestionDB struct {
	ID         sql.NullString `db:"id"`
	SessionID  sql.NullString `db:"session_id"`
	Ordinal    sql.NullInt64  `db:"ordinal"`
	Text       sql.NullString `db:"text"`
	SpeechURL  sql.NullString `db:"speech_url"`
	IsAnswered sql.NullBool   `db:"is_answered"`
}

func (r *sessionRepository) CreateSession(c context.Context, session entity.InterviewSession) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          session.ID,
		"user_id":     session.UserID,
		"target_role": session.TargetRole,
		"status":      session.Status,
		"started_at":  session.StartedAt,
	}

	query, args, err := sqlx.Named(queryCreateSession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSession named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating interview session")
		return err
	}

	return nil
}

func (r *sessionRepository) GetSessionByID(c context.Context, id string) (entity.InterviewSession, error) {
	requestID := contextPkg.GetRequestID(c)
	var session InterviewSessionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetSessionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSessionByID named query preparation err")
		return entity.InterviewSession{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&session); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetSessionByID no rows found")
			return entity.InterviewSession{}, interview.ErrSessionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSessionByID execution err")
		return entity.InterviewSession{}, err
	}

	return r.makeInterviewSession(session), nil
}

func (r *sessionRepository) GetSessionsByUserID(c context.Context, userID string) ([]entity.InterviewSession, error) {
	requestID := contextPkg.GetRequestID(c)
	var sessions []InterviewSessionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetSessionsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSessionsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &sessions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSessionsByUserID execution err")
		return nil, err
	}

	result := make([]entity.InterviewSession, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, r.makeInterviewSession(session))
	}

	return result, nil
}

func (r *sessionRepository) UpdateSessionStatus(c context.Context, id string, status entity.InterviewStatus) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":     id,
		"status": status,
	}

	query, args, err := sqlx.Named(queryUpdateSessionStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateSessionStatus named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateSessionStatus execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateSessionStatus rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateSessionStatus no rows affected")
		return interview.ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) FinishSession(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":       id,
		"status":   entity.InterviewStatusFinished,
		"ended_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryFinishSession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FinishSession named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FinishSession execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FinishSession rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("FinishSession no rows affected")
		return interview.ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) makeInterviewSession(session InterviewSessionDB) entity.InterviewSession {
	result := entity.InterviewSession{
		ID:         session.ID.String,
		UserID:     session.UserID.String,
		TargetRole: session.TargetRole.String,
		Status:     entity.InterviewStatus(session.Status.String),
		StartedAt:  session.StartedAt,
	}

	if session.EndedAt.Valid {
		endedAt := session.EndedAt.Time
		result.EndedAt = &endedAt
	}

	return result
}

func (r *questionRepository) CreateQuestion(c context.Context, question entity.InterviewQuestion) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          question.ID,
		"session_id":  question.SessionID,
		"ordinal":     question.Ordinal,
		"text":        question.Text,
		"speech_url":  question.SpeechURL,
		"is_answered": question.IsAnswered,
	}

	query, args, err := sqlx.Named(queryCreateQuestion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateQuestion named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating interview question")
		return err
	}

	return nil
}

func (r *questionRepository) GetQuestionByID(c context.Context, id string) (entity.InterviewQuestion, error) {
	requestID := contextPkg.GetRequestID(c)
	var question InterviewQuestionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetQuestionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetQuestionByID named query preparation err")
		return entity.InterviewQuestion{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&question); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetQuestionByID no rows found")
			return entity.InterviewQuestion{}, interview.ErrQuestionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetQuestionByID execution err")
		return entity.InterviewQuestion{}, err
	}

	return r.makeInterviewQuestion(question), nil
}

func (r *questionRepository) GetQuestionsBySessionID(c context.Context, sessionID string) ([]entity.InterviewQuestion, error) {
	requestID := contextPkg.GetRequestID(c)
	var questions []InterviewQuestionDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(queryGetQuestionsBySessionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetQuestionsBySessionID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &questions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetQuestionsBySessionID execution err")
		return nil, err
	}

	result := make([]entity.InterviewQuestion, 0, len(questions))
	for _, question := range questions {
		result = append(result, r.makeInterviewQuestion(question))
	}

	return result, nil
}

func (r *questionRepository) MarkAnswered(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryMarkQuestionAnswered, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkAnswered named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkAnswered execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkAnswered rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("MarkAnswered no rows affected")
		return interview.ErrQuestionNotFound
	}

	return nil
}

func (r *questionRepository) makeInterviewQuestion(question InterviewQuestionDB) entity.InterviewQuestion {
	return entity.InterviewQuestion{
		ID:         question.ID.String,
		SessionID:  question.SessionID.String,
		Ordinal:    int(question.Ordinal.Int64),
		Text:       question.Text.String,
		SpeechURL:  question.SpeechURL.String,
		IsAnswered: question.IsAnswered.Bool,
	}
}
