package coaching

import (
	"reflect"
	"testing"
)

func TestDistributionEmpty(t *testing.T) {
	dist := Distribution(nil)
	if len(dist) != 0 {
		t.Fatalf("empty input: got %v, want empty map", dist)
	}
}

func TestDistributionIndependentRounding(t *testing.T) {
	dist := Distribution([]string{"A", "A", "B"})
	want := map[string]int{"A": 67, "B": 33}
	if !reflect.DeepEqual(dist, want) {
		t.Fatalf("got %v, want %v", dist, want)
	}
	// 67 + 33 happens to hit 100 here, but the percentages are rounded
	// per label and are not normalized.
}

func TestDistributionSingleLabel(t *testing.T) {
	dist := Distribution([]string{"good", "good", "good"})
	if dist["good"] != 100 || len(dist) != 1 {
		t.Fatalf("got %v, want {good:100}", dist)
	}
}

func TestAggregatorResetClearsBoth(t *testing.T) {
	a := NewAggregator()
	a.RecordPosture("slouching")
	a.RecordEmotion("sad")

	a.Reset()

	if len(a.PostureDistribution()) != 0 || len(a.EmotionDistribution()) != 0 {
		t.Fatal("accumulators should be empty after Reset")
	}
}
