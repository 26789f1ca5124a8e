package emotion

import "testing"

func TestDominant(t *testing.T) {
	scores := Scores{
		{Label: Happy, Value: 0.2},
		{Label: Sad, Value: 0.6},
		{Label: Neutral, Value: 0.2},
	}
	if got := Dominant(scores); got != Sad {
		t.Fatalf("got %q, want %q", got, Sad)
	}
}

func TestDominantTieFirstWins(t *testing.T) {
	scores := Scores{
		{Label: Neutral, Value: 0.4},
		{Label: Happy, Value: 0.4},
		{Label: Sad, Value: 0.2},
	}
	if got := Dominant(scores); got != Neutral {
		t.Fatalf("tie: got %q, want first-encountered %q", got, Neutral)
	}
}

func TestDominantNoFace(t *testing.T) {
	if got := Dominant(nil); got != NoFace {
		t.Fatalf("empty scores: got %q, want %q", got, NoFace)
	}
}

func TestIsNegative(t *testing.T) {
	for _, label := range []string{Sad, Angry, Fearful, Disgusted} {
		if !IsNegative(label) {
			t.Errorf("%q should be negative", label)
		}
	}
	for _, label := range []string{Happy, Neutral, Surprised, NoFace} {
		if IsNegative(label) {
			t.Errorf("%q should not be negative", label)
		}
	}
}
