package interviewRepository

import (
	"InterviewGolang/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Session:  &sessionRepository{q: sqlExecutor, log: r.log},
		Question: &questionRepository{q: sqlExecutor, log: r.log},
		Answer:   &answerRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Session interface {
		CreateSession(c context.Context, session entity.InterviewSession) error
		GetSessionByID(c context.Context, id string) (entity.InterviewSession, error)
		GetSessionsByUserID(c context.Context, userID string) ([]entity.InterviewSession, error)
		UpdateSessionStatus(c context.Context, id string, status entity.InterviewStatus) error
		FinishSession(c context.Context, id string) error
	}

	Question interface {
		CreateQuestion(c context.Context, question entity.InterviewQuestion) error
		GetQuestionByID(c context.Context, id string) (entity.InterviewQuestion, error)
		GetQuestionsBySessionID(c context.Context, sessionID string) ([]entity.InterviewQuestion, error)
		MarkAnswered(c context.Context, id string) error
	}

	Answer interface {
		CreateAnswer(c context.Context, answer entity.Answer) error
		GetAnswersBySessionID(c context.Context, sessionID string) ([]entity.Answer, error)
	}

	Commit   func() error
	Rollback func() error
}

type sessionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type questionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type answerRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
