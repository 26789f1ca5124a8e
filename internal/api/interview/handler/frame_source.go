package interviewHandler

import (
	"errors"
	"sync"

	"golang.org/x/net/context"
)

var errSourceClosed = errors.New("frame source closed")

// wsFrameSource adapts the WebSocket read loop to the detection driver.
// It keeps only the latest frame; both detection loops block in NextFrame
// until a frame newer than the one they last saw arrives, so a slow model
// never builds a backlog.
type wsFrameSource struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frame  []byte
	seq    uint64
	width  int
	height int
	closed bool
}

func newWSFrameSource() *wsFrameSource {
	s := &wsFrameSource{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *wsFrameSource) SetDimensions(width, height int) {
	s.mu.Lock()
	s.width = width
	s.height = height
	s.mu.Unlock()
}

func (s *wsFrameSource) Dimensions() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *wsFrameSource) Push(frame []byte) {
	s.mu.Lock()
	s.frame = frame
	s.seq++
	s.mu.Unlock()
	s.cond.Broadcast()
}

func (s *wsFrameSource) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cond.Broadcast()
}

func (s *wsFrameSource) NextFrame(ctx context.Context) ([]byte, error) {
	watchDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			// The lock guarantees the waiter is either before its
			// ctx.Err check or already parked in Wait.
			s.mu.Lock()
			s.cond.Broadcast()
			s.mu.Unlock()
		case <-watchDone:
		}
	}()
	defer close(watchDone)

	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.seq
	for s.seq == start {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.closed {
			return nil, errSourceClosed
		}
		s.cond.Wait()
	}

	return s.frame, nil
}
