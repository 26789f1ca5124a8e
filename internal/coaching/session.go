package coaching

import (
	"sync"
	"time"

	"InterviewGolang/pkg/emotion"
	"InterviewGolang/pkg/monitor"
	"InterviewGolang/pkg/pose"
)

const (
	// GoodPosture is recorded for frames that raised no flag.
	GoodPosture = "good"

	postureAlertThreshold = 5 * time.Second
	emotionAlertThreshold = 3 * time.Second

	postureAlertMessage = "Straighten up! Your posture has been off for a few seconds."
	emotionAlertMessage = "Take a breath and relax your face. You look tense."
)

// Snapshot is the live state pushed to the client after each frame.
type Snapshot struct {
	PostureFlag string `json:"posture_flag,omitempty"`
	Emotion     string `json:"emotion,omitempty"`
	Calibrated  bool   `json:"calibrated"`
	Recording   bool   `json:"recording"`
}

// Session is the per-interview coaching engine: baseline, recording flag,
// answer accumulators and the two sustained-condition monitors. All state
// below lives and dies with one interview; nothing leaks across sessions.
type Session struct {
	mu sync.Mutex

	thresholds pose.Thresholds
	baseline   *pose.Baseline
	recording  bool
	lastFrame  pose.Frame
	lastFlag   string
	lastLabel  string

	aggregator     *Aggregator
	postureMonitor *monitor.Monitor
	emotionMonitor *monitor.Monitor
}

func NewSession(notify monitor.NotifyFunc) *Session {
	return &Session{
		thresholds:     pose.DefaultThresholds(),
		aggregator:     NewAggregator(),
		postureMonitor: monitor.New(postureAlertThreshold, postureAlertMessage, monitor.SeverityWarning, notify),
		emotionMonitor: monitor.New(emotionAlertThreshold, emotionAlertMessage, monitor.SeverityInfo, notify),
	}
}

// Calibrate captures the baseline from the most recent frame. The baseline
// replaces any prior one; on failure nothing changes and the specific
// precondition error surfaces to the caller.
func (s *Session) Calibrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	baseline, err := pose.Calibrate(s.lastFrame, s.thresholds)
	if err != nil {
		return err
	}
	s.baseline = &baseline
	return nil
}

// HandleFrame classifies one pose frame. Classification always happens so
// the UI gets live feedback, but the accumulators and alert monitors only
// move while an answer is being recorded.
//
// The whole step runs under s.mu so the recording gate and the mutation it
// guards are one atomic unit with respect to StartAnswer/StopAnswer; once
// StopAnswer returns, no in-flight frame can record or arm a timer.
func (s *Session) HandleFrame(frame pose.Frame) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastFrame = frame

	flags := pose.Classify(frame, s.baseline, s.thresholds)

	label := GoodPosture
	if primary, ok := pose.Primary(flags); ok {
		label = string(primary)
	}
	s.lastFlag = label

	if s.recording {
		s.aggregator.RecordPosture(label)
		s.postureMonitor.Observe(isAdversePosture(flags))
	}
	return s.snapshotLocked()
}

// HandleExpressions classifies one expression score set, same gating rules
// as HandleFrame.
func (s *Session) HandleExpressions(scores emotion.Scores) Snapshot {
	label := emotion.Dominant(scores)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastLabel = label

	if s.recording {
		s.aggregator.RecordEmotion(label)
		s.emotionMonitor.Observe(emotion.IsNegative(label))
	}
	return s.snapshotLocked()
}

// StartAnswer clears both accumulators and begins feeding the monitors.
func (s *Session) StartAnswer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recording = true
	s.aggregator.Reset()
	s.postureMonitor.Reset()
	s.emotionMonitor.Reset()
}

// StopAnswer stops recording and reduces the accumulated labels to
// percentage distributions for the report. Holding s.mu while the monitors
// reset means no frame that is still in flight can re-arm them afterwards.
func (s *Session) StopAnswer() (postureDist, emotionDist map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recording = false
	s.postureMonitor.Reset()
	s.emotionMonitor.Reset()

	return s.aggregator.PostureDistribution(), s.aggregator.EmotionDistribution()
}

func (s *Session) Recording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recording
}

func (s *Session) Calibrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseline != nil
}

// Close tears the monitors down so no timer outlives the session.
func (s *Session) Close() {
	s.postureMonitor.Reset()
	s.emotionMonitor.Reset()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		PostureFlag: s.lastFlag,
		Emotion:     s.lastLabel,
		Calibrated:  s.baseline != nil,
		Recording:   s.recording,
	}
}

// isAdversePosture: a hidden-keypoints frame is "no signal", not bad
// posture, and must not arm the alert timer.
func isAdversePosture(flags []pose.Flag) bool {
	if len(flags) == 0 {
		return false
	}
	return flags[0] != pose.FlagKeypointsHidden
}
