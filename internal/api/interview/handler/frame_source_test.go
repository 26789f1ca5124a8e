package interviewHandler

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"golang.org/x/net/context"
)

func TestFrameSourcePushUnblocksWaiter(t *testing.T) {
	source := newWSFrameSource()

	type result struct {
		frame []byte
		err   error
	}
	done := make(chan result, 1)
	go func() {
		frame, err := source.NextFrame(context.Background())
		done <- result{frame, err}
	}()

	time.Sleep(20 * time.Millisecond)
	source.Push([]byte("jpeg-bytes"))

	select {
	case res := <-done:
		if res.err != nil {
			t.Fatalf("unexpected error: %v", res.err)
		}
		if !bytes.Equal(res.frame, []byte("jpeg-bytes")) {
			t.Errorf("unexpected frame payload: %q", res.frame)
		}
	case <-time.After(time.Second):
		t.Fatal("NextFrame did not return after Push")
	}
}

func TestFrameSourceDoesNotRedeliverOldFrame(t *testing.T) {
	source := newWSFrameSource()
	source.Push([]byte("stale"))

	c, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Only frames pushed after the call are delivered.
	if _, err := source.NextFrame(c); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestFrameSourceCancelledContext(t *testing.T) {
	source := newWSFrameSource()

	c, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.NextFrame(c); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFrameSourceClose(t *testing.T) {
	source := newWSFrameSource()

	done := make(chan error, 1)
	go func() {
		_, err := source.NextFrame(context.Background())
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	source.Close()

	select {
	case err := <-done:
		if !errors.Is(err, errSourceClosed) {
			t.Fatalf("expected errSourceClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("NextFrame did not return after Close")
	}
}

func TestFrameSourceDimensions(t *testing.T) {
	source := newWSFrameSource()

	if w, h := source.Dimensions(); w != 0 || h != 0 {
		t.Fatalf("expected zero dimensions before start, got %dx%d", w, h)
	}

	source.SetDimensions(640, 480)
	if w, h := source.Dimensions(); w != 640 || h != 480 {
		t.Fatalf("expected 640x480, got %dx%d", w, h)
	}
}
