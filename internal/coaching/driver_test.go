package coaching

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"InterviewGolang/pkg/emotion"
	"InterviewGolang/pkg/pose"
)

type fakeSource struct {
	readyAfter time.Time
}

func (f *fakeSource) NextFrame(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Millisecond):
		return []byte{0xff, 0xd8}, nil
	}
}

func (f *fakeSource) Dimensions() (int, int) {
	if time.Now().Before(f.readyAfter) {
		return 0, 0
	}
	return 640, 480
}

type fakePoser struct{ calls int64 }

func (f *fakePoser) DetectPose(ctx context.Context, frame []byte) (pose.Frame, error) {
	atomic.AddInt64(&f.calls, 1)
	return goodFrame(), nil
}

type fakeExprer struct{}

func (f *fakeExprer) DetectExpressions(ctx context.Context, frame []byte) (emotion.Scores, error) {
	return emotion.Scores{{Label: emotion.Neutral, Value: 1}}, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestDriverWaitsForReadySource(t *testing.T) {
	source := &fakeSource{readyAfter: time.Now().Add(250 * time.Millisecond)}
	d := NewDriver(NewSession(nil), source, &fakePoser{}, &fakeExprer{}, testLogger())

	start := time.Now()
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer d.Stop()

	if waited := time.Since(start); waited < 200*time.Millisecond {
		t.Fatalf("Start returned after %v, before the source was ready", waited)
	}
}

func TestDriverStartGivesUpOnCancel(t *testing.T) {
	source := &fakeSource{readyAfter: time.Now().Add(time.Hour)}
	d := NewDriver(NewSession(nil), source, &fakePoser{}, &fakeExprer{}, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := d.Start(ctx); err == nil {
		t.Fatal("Start should fail when the source never becomes ready")
	}
}

func TestDriverStopIsDeterministic(t *testing.T) {
	source := &fakeSource{}
	poser := &fakePoser{}
	d := NewDriver(NewSession(nil), source, poser, &fakeExprer{}, testLogger())

	var snapshots int64
	d.OnSnapshot(func(Snapshot) { atomic.AddInt64(&snapshots, 1) })

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	d.Stop()

	if atomic.LoadInt64(&poser.calls) == 0 {
		t.Fatal("pose loop never ran")
	}

	// Nothing may fire after Stop returns.
	after := atomic.LoadInt64(&snapshots)
	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt64(&snapshots); got != after {
		t.Fatalf("snapshots kept arriving after Stop: %d -> %d", after, got)
	}

	// Stop twice is a no-op.
	d.Stop()
}
