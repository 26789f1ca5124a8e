package emotion

// Labels as produced by the expression inference service.
const (
	Neutral   = "neutral"
	Happy     = "happy"
	Sad       = "sad"
	Angry     = "angry"
	Fearful   = "fearful"
	Disgusted = "disgusted"
	Surprised = "surprised"

	// NoFace is the sentinel for frames without a detected subject. It is
	// not an emotion and never counts as negative.
	NoFace = "no_face"
)

// Score is one expression confidence in [0,1]. Scores keep the order the
// inference service emitted them in, which makes Dominant deterministic
// for a fixed input.
type Score struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Scores []Score

// Dominant returns the label with the highest confidence. Ties go to the
// first-encountered label. An empty score set means no face was detected.
func Dominant(scores Scores) string {
	if len(scores) == 0 {
		return NoFace
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.Value > best.Value {
			best = s
		}
	}
	return best.Label
}

// IsNegative reports whether a label should count toward the negative-mood
// coaching alert. Neutral and no_face do not.
func IsNegative(label string) bool {
	switch label {
	case Sad, Angry, Fearful, Disgusted:
		return true
	}
	return false
}
