package coaching

import (
	"errors"
	"sync"
	"testing"
	"time"

	"InterviewGolang/pkg/emotion"
	"InterviewGolang/pkg/monitor"
	"InterviewGolang/pkg/pose"
)

func goodFrame() pose.Frame {
	return pose.Frame{
		{Name: pose.LeftShoulder, X: 300, Y: 200},
		{Name: pose.RightShoulder, X: 100, Y: 200},
		{Name: pose.Nose, X: 200, Y: 100},
	}
}

func TestClassificationDoesNotAccumulateWhileIdle(t *testing.T) {
	s := NewSession(nil)

	snap := s.HandleFrame(goodFrame())
	if snap.PostureFlag != GoodPosture {
		t.Fatalf("live snapshot: got %q, want %q", snap.PostureFlag, GoodPosture)
	}
	s.HandleExpressions(emotion.Scores{{Label: emotion.Happy, Value: 0.9}})

	postureDist, emotionDist := s.StopAnswer()
	if len(postureDist) != 0 || len(emotionDist) != 0 {
		t.Fatalf("idle frames leaked into accumulators: %v %v", postureDist, emotionDist)
	}
}

func TestAnswerAccumulation(t *testing.T) {
	s := NewSession(nil)
	s.StartAnswer()

	s.HandleFrame(goodFrame())
	s.HandleFrame(goodFrame())
	s.HandleFrame(pose.Frame{}) // no signal
	s.HandleExpressions(emotion.Scores{{Label: emotion.Sad, Value: 0.8}})

	postureDist, emotionDist := s.StopAnswer()
	if postureDist[GoodPosture] != 67 {
		t.Errorf("good posture share: got %d, want 67", postureDist[GoodPosture])
	}
	if postureDist[string(pose.FlagKeypointsHidden)] != 33 {
		t.Errorf("hidden share: got %d, want 33", postureDist[string(pose.FlagKeypointsHidden)])
	}
	if emotionDist[emotion.Sad] != 100 {
		t.Errorf("sad share: got %d, want 100", emotionDist[emotion.Sad])
	}
}

func TestStartAnswerClearsPreviousAnswer(t *testing.T) {
	s := NewSession(nil)

	s.StartAnswer()
	s.HandleFrame(goodFrame())
	s.StopAnswer()

	s.StartAnswer()
	postureDist, _ := s.StopAnswer()
	if len(postureDist) != 0 {
		t.Fatalf("previous answer leaked: %v", postureDist)
	}
}

// The WS detection loops and the REST answer endpoints run on different
// goroutines. Once StopAnswer returns, a frame that was already in flight
// must not append to the accumulator or re-arm an alert timer.
func TestStopAnswerExcludesInFlightObservations(t *testing.T) {
	s := NewSession(nil)
	s.StartAnswer()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				s.HandleExpressions(emotion.Scores{{Label: emotion.Sad, Value: 0.9}})
			}
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				s.HandleFrame(goodFrame())
			}
		}
	}()

	time.Sleep(10 * time.Millisecond)
	s.StopAnswer()

	s.aggregator.mu.Lock()
	postureLen, emotionLen := len(s.aggregator.posture), len(s.aggregator.emotions)
	s.aggregator.mu.Unlock()

	close(stop)
	wg.Wait()

	s.aggregator.mu.Lock()
	defer s.aggregator.mu.Unlock()
	if len(s.aggregator.posture) != postureLen {
		t.Errorf("posture observations landed after StopAnswer: %d -> %d", postureLen, len(s.aggregator.posture))
	}
	if len(s.aggregator.emotions) != emotionLen {
		t.Errorf("emotion observations landed after StopAnswer: %d -> %d", emotionLen, len(s.aggregator.emotions))
	}
}

func TestCalibrateUsesLastFrame(t *testing.T) {
	s := NewSession(nil)

	if err := s.Calibrate(); !errors.Is(err, pose.ErrNotReady) {
		t.Fatalf("calibrate before any frame: got %v, want ErrNotReady", err)
	}

	s.HandleFrame(goodFrame())
	if err := s.Calibrate(); err != nil {
		t.Fatalf("calibrate after frame: %v", err)
	}
	if !s.Calibrated() {
		t.Fatal("session should report calibrated")
	}
}

func TestHiddenKeypointsDoNotArmPostureAlert(t *testing.T) {
	notified := make(chan string, 1)
	s := NewSession(func(msg string, _ monitor.Severity) {
		select {
		case notified <- msg:
		default:
		}
	})
	s.StartAnswer()

	// isAdversePosture treats a no-signal frame as neutral.
	if isAdversePosture([]pose.Flag{pose.FlagKeypointsHidden}) {
		t.Fatal("keypoints_hidden must not count as bad posture")
	}
	if !isAdversePosture([]pose.Flag{pose.FlagSlouching}) {
		t.Fatal("slouching must count as bad posture")
	}

	s.StopAnswer()
	select {
	case msg := <-notified:
		t.Fatalf("unexpected notification: %s", msg)
	default:
	}
}
