package coaching

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"InterviewGolang/pkg/emotion"
	"InterviewGolang/pkg/pose"
)

// FrameSource hands out video frames and reports readiness through its
// natural dimensions.
type FrameSource interface {
	NextFrame(ctx context.Context) ([]byte, error)
	Dimensions() (width, height int)
}

// PoseInferencer is the external pose model: zero-or-one keypoint frame
// per input frame.
type PoseInferencer interface {
	DetectPose(ctx context.Context, frame []byte) (pose.Frame, error)
}

// ExpressionInferencer is the external expression model: zero-or-one
// score set per input frame.
type ExpressionInferencer interface {
	DetectExpressions(ctx context.Context, frame []byte) (emotion.Scores, error)
}

const (
	readinessPollInterval = 100 * time.Millisecond
	expressionInterval    = 1000 * time.Millisecond
)

// Driver owns the two detection loops of one session: a continuous pose
// loop that reschedules itself after each inference (back-to-back, never
// two in flight) and a fixed-interval expression loop. Both start together
// and stop together.
type Driver struct {
	session *Session
	source  FrameSource
	poser   PoseInferencer
	exprer  ExpressionInferencer
	log     *logrus.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	onSnapshot func(Snapshot)
}

func NewDriver(session *Session, source FrameSource, poser PoseInferencer, exprer ExpressionInferencer, log *logrus.Logger) *Driver {
	return &Driver{
		session: session,
		source:  source,
		poser:   poser,
		exprer:  exprer,
		log:     log,
	}
}

// OnSnapshot registers the live-state sink (the WebSocket push). Must be
// called before Start.
func (d *Driver) OnSnapshot(fn func(Snapshot)) {
	d.onSnapshot = fn
}

// Start blocks until the frame source reports non-zero dimensions, then
// launches both loops. Returns the context error if the caller gives up
// while waiting.
func (d *Driver) Start(ctx context.Context) error {
	if err := d.waitReady(ctx); err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(ctx)

	d.mu.Lock()
	d.cancel = cancel
	d.mu.Unlock()

	d.wg.Add(2)
	go d.poseLoop(loopCtx)
	go d.expressionLoop(loopCtx)

	return nil
}

// Stop cancels both loops and waits for their in-flight steps, then
// resets the session's monitors. After Stop returns no classification or
// alert can fire.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	d.wg.Wait()
	d.session.Close()
}

func (d *Driver) waitReady(ctx context.Context) error {
	ticker := time.NewTicker(readinessPollInterval)
	defer ticker.Stop()

	for {
		if w, h := d.source.Dimensions(); w > 0 && h > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (d *Driver) poseLoop(ctx context.Context) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frame, err := d.source.NextFrame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			d.log.WithField("error", err.Error()).Warn("Failed to read frame for pose detection")
			continue
		}

		keypoints, err := d.poser.DetectPose(ctx, frame)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			d.log.WithField("error", err.Error()).Warn("Pose inference failed")
			continue
		}

		if ctx.Err() != nil {
			return
		}
		d.push(d.session.HandleFrame(keypoints))
	}
}

func (d *Driver) expressionLoop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(expressionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		frame, err := d.source.NextFrame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			d.log.WithField("error", err.Error()).Warn("Failed to read frame for expression detection")
			continue
		}

		scores, err := d.exprer.DetectExpressions(ctx, frame)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			d.log.WithField("error", err.Error()).Warn("Expression inference failed")
			continue
		}

		if ctx.Err() != nil {
			return
		}
		d.push(d.session.HandleExpressions(scores))
	}
}

func (d *Driver) push(snap Snapshot) {
	if d.onSnapshot != nil {
		d.onSnapshot(snap)
	}
}
