package pose

import (
	"errors"
	"math"
)

var (
	ErrNotReady          = errors.New("no frame captured yet, still calibrating")
	ErrLandmarksHidden   = errors.New("shoulders or nose not detected")
	ErrShouldersTooClose = errors.New("cannot determine shoulder width")
)

// Baseline is the reference posture captured once during calibration:
// the vertical gap between the shoulder midpoint and the nose, normalized
// by shoulder width. Recalibration replaces it wholly.
type Baseline struct {
	Ratio float64 `json:"ratio"`
}

// Calibrate computes a fresh baseline from a known-good frame. Each
// precondition failure is reported distinctly so the caller can tell the
// user what to fix; no state is touched on failure.
func Calibrate(frame Frame, th Thresholds) (Baseline, error) {
	if len(frame) == 0 {
		return Baseline{}, ErrNotReady
	}

	ls, lsOK := frame.Lookup(LeftShoulder)
	rs, rsOK := frame.Lookup(RightShoulder)
	nose, noseOK := frame.Lookup(Nose)
	if !lsOK || !rsOK || !noseOK {
		return Baseline{}, ErrLandmarksHidden
	}

	shoulderWidth := math.Hypot(rs.X-ls.X, rs.Y-ls.Y)
	if shoulderWidth < th.MinShoulderWidth {
		return Baseline{}, ErrShouldersTooClose
	}

	shoulderMidY := (ls.Y + rs.Y) / 2
	return Baseline{Ratio: (shoulderMidY - nose.Y) / shoulderWidth}, nil
}
