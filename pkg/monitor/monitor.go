// Package monitor implements a time-window watcher for adverse
// classifications: when a condition holds continuously past a configured
// threshold, one coaching notification fires for that episode. A single
// good observation ends the episode and re-arms the watcher.
package monitor

import (
	"sync"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// NotifyFunc is the fire-and-forget notification sink.
type NotifyFunc func(message string, severity Severity)

type Monitor struct {
	mu sync.Mutex

	threshold time.Duration
	message   string
	severity  Severity
	notify    NotifyFunc

	timer       *time.Timer
	lastAdverse bool
	alerted     bool
}

func New(threshold time.Duration, message string, severity Severity, notify NotifyFunc) *Monitor {
	return &Monitor{
		threshold: threshold,
		message:   message,
		severity:  severity,
		notify:    notify,
	}
}

// Observe feeds the latest classification into the machine.
//
// First adverse observation arms the timer. Any non-adverse observation
// cancels the pending timer and clears the alerted latch, so the very next
// adverse run starts a fresh episode. While alerted, further adverse
// observations are ignored.
func (m *Monitor) Observe(adverse bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !adverse {
		m.resetLocked()
		return
	}

	m.lastAdverse = true
	if m.alerted || m.timer != nil {
		return
	}
	m.timer = time.AfterFunc(m.threshold, m.elapsed)
}

// Reset forces the machine back to idle, cancelling any pending timer.
// Used when recording stops or the detection loops shut down.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

func (m *Monitor) resetLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.lastAdverse = false
	m.alerted = false
}

func (m *Monitor) elapsed() {
	m.mu.Lock()
	m.timer = nil

	// Re-check the most recent observation: a recovery that raced the
	// timer cancels the alert silently.
	fire := m.lastAdverse && !m.alerted
	if fire {
		m.alerted = true
	}
	notify := m.notify
	message := m.message
	severity := m.severity
	m.mu.Unlock()

	if fire && notify != nil {
		notify(message, severity)
	}
}

// Alerted reports whether the current episode already produced its
// notification.
func (m *Monitor) Alerted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alerted
}
