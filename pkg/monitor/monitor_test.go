package monitor

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRecoveryBeforeThresholdCancelsSilently(t *testing.T) {
	var fired int64
	m := New(60*time.Millisecond, "sit up", SeverityWarning, func(string, Severity) {
		atomic.AddInt64(&fired, 1)
	})

	m.Observe(true)
	time.Sleep(20 * time.Millisecond)
	m.Observe(false)

	time.Sleep(100 * time.Millisecond)
	if n := atomic.LoadInt64(&fired); n != 0 {
		t.Fatalf("notification fired %d times after early recovery, want 0", n)
	}
	if m.Alerted() {
		t.Fatal("machine should be idle after recovery")
	}
}

func TestSustainedConditionFiresOnce(t *testing.T) {
	var fired int64
	m := New(50*time.Millisecond, "sit up", SeverityWarning, func(string, Severity) {
		atomic.AddInt64(&fired, 1)
	})

	m.Observe(true)
	time.Sleep(20 * time.Millisecond)
	m.Observe(true)
	time.Sleep(60 * time.Millisecond)

	if n := atomic.LoadInt64(&fired); n != 1 {
		t.Fatalf("got %d notifications, want exactly 1", n)
	}

	// Staying adverse must not repeat the notification.
	m.Observe(true)
	m.Observe(true)
	time.Sleep(80 * time.Millisecond)
	if n := atomic.LoadInt64(&fired); n != 1 {
		t.Fatalf("got %d notifications while still adverse, want 1", n)
	}
}

func TestNewEpisodeAllowsNewAlert(t *testing.T) {
	var fired int64
	m := New(40*time.Millisecond, "relax", SeverityInfo, func(string, Severity) {
		atomic.AddInt64(&fired, 1)
	})

	m.Observe(true)
	time.Sleep(60 * time.Millisecond)
	if n := atomic.LoadInt64(&fired); n != 1 {
		t.Fatalf("first episode: got %d, want 1", n)
	}

	// One good observation closes the episode; the machine keeps no
	// memory across episodes.
	m.Observe(false)
	m.Observe(true)
	time.Sleep(60 * time.Millisecond)
	if n := atomic.LoadInt64(&fired); n != 2 {
		t.Fatalf("second episode: got %d, want 2", n)
	}
}

func TestResetCancelsPendingTimer(t *testing.T) {
	var fired int64
	m := New(30*time.Millisecond, "sit up", SeverityWarning, func(string, Severity) {
		atomic.AddInt64(&fired, 1)
	})

	m.Observe(true)
	m.Reset()
	time.Sleep(60 * time.Millisecond)
	if n := atomic.LoadInt64(&fired); n != 0 {
		t.Fatalf("got %d notifications after Reset, want 0", n)
	}
}
