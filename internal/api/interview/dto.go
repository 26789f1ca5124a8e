package interview

import "time"

type CreateSessionRequest struct {
	UserID        string `json:"-"`
	TargetRole    string `json:"target_role" validate:"required,min=2,max=100"`
	QuestionCount int    `json:"question_count" validate:"omitempty,min=1,max=10"`
}

type QuestionResponse struct {
	ID         string `json:"id"`
	Ordinal    int    `json:"ordinal"`
	Text       string `json:"text"`
	SpeechURL  string `json:"speech_url,omitempty"`
	IsAnswered bool   `json:"is_answered"`
}

type SessionResponse struct {
	ID         string             `json:"id"`
	TargetRole string             `json:"target_role"`
	Status     string             `json:"status"`
	StartedAt  time.Time          `json:"started_at"`
	EndedAt    *time.Time         `json:"ended_at,omitempty"`
	Questions  []QuestionResponse `json:"questions,omitempty"`
}

type AnswerResponse struct {
	ID              string         `json:"id"`
	QuestionID      string         `json:"question_id"`
	AudioURL        string         `json:"audio_url,omitempty"`
	Transcript      string         `json:"transcript"`
	Score           int            `json:"score"`
	Feedback        string         `json:"feedback"`
	PostureSummary  map[string]int `json:"posture_summary"`
	EmotionSummary  map[string]int `json:"emotion_summary"`
	FillerWordCount int            `json:"filler_word_count"`
	WordsPerMinute  int            `json:"words_per_minute"`
	DurationSeconds int            `json:"duration_seconds"`
}

type ReportResponse struct {
	SessionID           string           `json:"session_id"`
	TargetRole          string           `json:"target_role"`
	OverallScore        int              `json:"overall_score"`
	PostureDistribution map[string]int   `json:"posture_distribution"`
	EmotionDistribution map[string]int   `json:"emotion_distribution"`
	Summary             string           `json:"summary"`
	Answers             []AnswerResponse `json:"answers"`
	GeneratedAt         time.Time        `json:"generated_at"`
}

// Messages exchanged on the live coaching WebSocket. The client sends
// control messages as JSON text frames and video frames as binary JPEG;
// the server pushes snapshots, alerts and calibration results.
type ClientMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

const (
	ClientMessageStart     = "start"
	ClientMessageCalibrate = "calibrate"

	ServerMessageSnapshot    = "snapshot"
	ServerMessageAlert       = "alert"
	ServerMessageCalibration = "calibration"
	ServerMessageError       = "error"
)

type SnapshotMessage struct {
	Type        string `json:"type"`
	PostureFlag string `json:"posture_flag,omitempty"`
	Emotion     string `json:"emotion,omitempty"`
	Calibrated  bool   `json:"calibrated"`
	Recording   bool   `json:"recording"`
}

type AlertMessage struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type CalibrationMessage struct {
	Type  string `json:"type"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
