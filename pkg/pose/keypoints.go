package pose

import "math"

// Landmark names as produced by the pose inference service.
const (
	Nose          = "nose"
	LeftEye       = "left_eye"
	RightEye      = "right_eye"
	LeftEar       = "left_ear"
	RightEar      = "right_ear"
	LeftShoulder  = "left_shoulder"
	RightShoulder = "right_shoulder"
	MouthLeft     = "mouth_left"
	MouthRight    = "mouth_right"
)

type Keypoint struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score float64 `json:"score,omitempty"`
}

// Frame is the keypoint set of one detected subject in one video frame.
type Frame []Keypoint

// Lookup returns the named keypoint. A keypoint whose coordinates are not
// finite numbers is treated as absent.
func (f Frame) Lookup(name string) (Keypoint, bool) {
	for _, kp := range f {
		if kp.Name == name {
			if !isFinite(kp.X) || !isFinite(kp.Y) {
				return Keypoint{}, false
			}
			return kp, true
		}
	}
	return Keypoint{}, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
