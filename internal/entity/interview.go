package entity

import "time"

type InterviewStatus string

const (
	InterviewStatusCreated    InterviewStatus = "CREATED"
	InterviewStatusInProgress InterviewStatus = "IN_PROGRESS"
	InterviewStatusFinished   InterviewStatus = "FINISHED"
)

type InterviewSession struct {
	ID         string          `db:"id" json:"id"`
	UserID     string          `db:"user_id" json:"user_id"`
	TargetRole string          `db:"target_role" json:"target_role"`
	Status     InterviewStatus `db:"status" json:"status"`
	StartedAt  time.Time       `db:"started_at" json:"started_at"`
	EndedAt    *time.Time      `db:"ended_at" json:"ended_at,omitempty"`
}

type InterviewQuestion struct {
	ID         string `db:"id" json:"id"`
	SessionID  string `db:"session_id" json:"session_id"`
	Ordinal    int    `db:"ordinal" json:"ordinal"`
	Text       string `db:"text" json:"text"`
	SpeechURL  string `db:"speech_url" json:"speech_url,omitempty"`
	IsAnswered bool   `db:"is_answered" json:"is_answered"`
}

type Answer struct {
	ID              string         `db:"id" json:"id"`
	SessionID       string         `db:"session_id" json:"session_id"`
	QuestionID      string         `db:"question_id" json:"question_id"`
	AudioURL        string         `db:"audio_url" json:"audio_url"`
	Transcript      string         `db:"transcript" json:"transcript"`
	Score           int            `db:"score" json:"score"`
	Feedback        string         `db:"feedback" json:"feedback"`
	PostureSummary  map[string]int `db:"-" json:"posture_summary"`
	EmotionSummary  map[string]int `db:"-" json:"emotion_summary"`
	FillerWordCount int            `db:"filler_word_count" json:"filler_word_count"`
	WordsPerMinute  int            `db:"words_per_minute" json:"words_per_minute"`
	DurationSeconds int            `db:"duration_seconds" json:"duration_seconds"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// Report is the per-session read-out assembled for the client once all
// answers are in.
type Report struct {
	SessionID           string         `json:"session_id"`
	TargetRole          string         `json:"target_role"`
	OverallScore        int            `json:"overall_score"`
	PostureDistribution map[string]int `json:"posture_distribution"`
	EmotionDistribution map[string]int `json:"emotion_distribution"`
	Summary             string         `json:"summary"`
	Answers             []Answer       `json:"answers"`
	GeneratedAt         time.Time      `json:"generated_at"`
}
