package pose

import "math"

type Flag string

const (
	FlagKeypointsHidden Flag = "keypoints_hidden"
	FlagSlouching       Flag = "slouching"
	FlagLookingDown     Flag = "looking_down"
	FlagLookingUp       Flag = "looking_up"
	FlagLeaningHead     Flag = "leaning_head"
	FlagTiltedShoulders Flag = "tilted_shoulders"
)

// Thresholds are empirical tuning constants carried over from field testing.
// They are configuration, not derivable values.
type Thresholds struct {
	SlouchDeviation  float64 // relative ratio drop below baseline
	LookDownTilt     float64
	LookUpTilt       float64
	HeadOffsetRatio  float64 // mouth-vs-shoulder midpoint offset, in shoulder widths
	ShoulderLevelDeg float64 // minimum |atan2| angle still considered level
	MinShoulderWidth float64 // calibration guard, pixel units
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SlouchDeviation:  0.25,
		LookDownTilt:     -0.2,
		LookUpTilt:       0.35,
		HeadOffsetRatio:  0.15,
		ShoulderLevelDeg: 174,
		MinShoulderWidth: 10,
	}
}

// Classify derives posture problem flags from a single frame. It is pure:
// temporal smoothing is the caller's concern. Flags come back in priority
// order; consumers usually surface only the first.
//
// Without a visible shoulder/nose triangle no judgment is made at all and
// the single FlagKeypointsHidden is returned.
func Classify(frame Frame, baseline *Baseline, th Thresholds) []Flag {
	ls, lsOK := frame.Lookup(LeftShoulder)
	rs, rsOK := frame.Lookup(RightShoulder)
	nose, noseOK := frame.Lookup(Nose)

	if !lsOK || !rsOK || !noseOK {
		return []Flag{FlagKeypointsHidden}
	}

	var flags []Flag

	shoulderWidth := math.Hypot(rs.X-ls.X, rs.Y-ls.Y)
	shoulderMidX := (ls.X + rs.X) / 2
	shoulderMidY := (ls.Y + rs.Y) / 2

	if baseline != nil && shoulderWidth > 0 {
		ratio := (shoulderMidY - nose.Y) / shoulderWidth
		deviation := (ratio - baseline.Ratio) / baseline.Ratio
		if deviation < -th.SlouchDeviation {
			flags = append(flags, FlagSlouching)
		}
	}

	le, leOK := frame.Lookup(LeftEye)
	re, reOK := frame.Lookup(RightEye)
	lear, learOK := frame.Lookup(LeftEar)
	rear, rearOK := frame.Lookup(RightEar)
	if leOK && reOK && learOK && rearOK {
		eyeDistance := math.Hypot(re.X-le.X, re.Y-le.Y)
		if eyeDistance > 0 {
			avgEarY := (lear.Y + rear.Y) / 2
			avgEyeY := (le.Y + re.Y) / 2
			tiltRatio := (avgEarY - avgEyeY) / eyeDistance
			if tiltRatio < th.LookDownTilt {
				flags = append(flags, FlagLookingDown)
			} else if tiltRatio > th.LookUpTilt {
				flags = append(flags, FlagLookingUp)
			}
		}
	}

	ml, mlOK := frame.Lookup(MouthLeft)
	mr, mrOK := frame.Lookup(MouthRight)
	if mlOK && mrOK {
		midMouthX := (ml.X + mr.X) / 2
		if math.Abs(midMouthX-shoulderMidX) > th.HeadOffsetRatio*shoulderWidth {
			flags = append(flags, FlagLeaningHead)
		}
	}

	angle := math.Abs(math.Atan2(rs.Y-ls.Y, rs.X-ls.X)) * 180 / math.Pi
	if angle < th.ShoulderLevelDeg {
		flags = append(flags, FlagTiltedShoulders)
	}

	return flags
}

// Primary reports the flag a UI should surface for the frame, or ok=false
// for a clean frame.
func Primary(flags []Flag) (Flag, bool) {
	if len(flags) == 0 {
		return "", false
	}
	return flags[0], true
}
