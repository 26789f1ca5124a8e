package coaching

import (
	"math"
	"sync"
)

// Aggregator accumulates per-frame labels for the answer currently being
// recorded. Both sequences are cleared when the next answer starts; they
// never outlive it.
type Aggregator struct {
	mu       sync.Mutex
	posture  []string
	emotions []string
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.posture = nil
	a.emotions = nil
}

func (a *Aggregator) RecordPosture(label string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.posture = append(a.posture, label)
}

func (a *Aggregator) RecordEmotion(label string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.emotions = append(a.emotions, label)
}

func (a *Aggregator) PostureDistribution() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Distribution(a.posture)
}

func (a *Aggregator) EmotionDistribution() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Distribution(a.emotions)
}

// Distribution reduces a label sequence to rounded per-label percentages.
// Each percentage is rounded independently, so the values need not sum to
// exactly 100. An empty input yields an empty map, not an error.
func Distribution(labels []string) map[string]int {
	dist := make(map[string]int)
	if len(labels) == 0 {
		return dist
	}

	counts := make(map[string]int)
	for _, label := range labels {
		counts[label]++
	}

	total := float64(len(labels))
	for label, count := range counts {
		dist[label] = int(math.Round(100 * float64(count) / total))
	}
	return dist
}
