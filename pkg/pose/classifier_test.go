package pose

import (
	"math"
	"testing"
)

// levelFrame builds a subject facing the (mirrored) camera: shoulders
// level at 180 degrees, nose centered above the shoulder midpoint.
func levelFrame(noseY float64) Frame {
	return Frame{
		{Name: LeftShoulder, X: 300, Y: 200},
		{Name: RightShoulder, X: 100, Y: 200},
		{Name: Nose, X: 200, Y: noseY},
	}
}

func TestClassifyMissingTriangle(t *testing.T) {
	cases := []struct {
		name  string
		frame Frame
	}{
		{"empty", Frame{}},
		{"no nose", Frame{{Name: LeftShoulder, X: 300, Y: 200}, {Name: RightShoulder, X: 100, Y: 200}}},
		{"no left shoulder", Frame{{Name: RightShoulder, X: 100, Y: 200}, {Name: Nose, X: 200, Y: 100}}},
		{"nan nose", Frame{
			{Name: LeftShoulder, X: 300, Y: 200},
			{Name: RightShoulder, X: 100, Y: 200},
			{Name: Nose, X: math.NaN(), Y: 100},
		}},
	}

	for _, tc := range cases {
		flags := Classify(tc.frame, nil, DefaultThresholds())
		if len(flags) != 1 || flags[0] != FlagKeypointsHidden {
			t.Errorf("%s: got %v, want [keypoints_hidden]", tc.name, flags)
		}
	}
}

func TestClassifyCleanFrame(t *testing.T) {
	flags := Classify(levelFrame(100), nil, DefaultThresholds())
	if len(flags) != 0 {
		t.Fatalf("clean frame: got %v, want no flags", flags)
	}
}

func TestClassifySlouchingBoundary(t *testing.T) {
	baseline := &Baseline{Ratio: 0.5}

	// Ratio 0.375 = 0.75 of baseline: deviation is exactly -0.25, which
	// must NOT fire.
	flags := Classify(levelFrame(125), baseline, DefaultThresholds())
	if len(flags) != 0 {
		t.Fatalf("deviation -0.25 exactly: got %v, want no flags", flags)
	}

	// Ratio 0.35: deviation -0.3, strictly past the threshold.
	flags = Classify(levelFrame(130), baseline, DefaultThresholds())
	if len(flags) != 1 || flags[0] != FlagSlouching {
		t.Fatalf("deviation -0.3: got %v, want [slouching]", flags)
	}
}

func TestClassifyNoBaselineNoSlouch(t *testing.T) {
	// Even a collapsed posture cannot be judged without a baseline.
	flags := Classify(levelFrame(195), nil, DefaultThresholds())
	if len(flags) != 0 {
		t.Fatalf("no baseline: got %v, want no flags", flags)
	}
}

func TestClassifyHeadTilt(t *testing.T) {
	withFace := func(earY float64) Frame {
		return append(levelFrame(100),
			Keypoint{Name: LeftEye, X: 220, Y: 150},
			Keypoint{Name: RightEye, X: 180, Y: 150},
			Keypoint{Name: LeftEar, X: 240, Y: earY},
			Keypoint{Name: RightEar, X: 160, Y: earY},
		)
	}

	// Ears 10px above the eyes over a 40px eye distance: tilt -0.25.
	flags := Classify(withFace(140), nil, DefaultThresholds())
	if len(flags) != 1 || flags[0] != FlagLookingDown {
		t.Errorf("tilt -0.25: got %v, want [looking_down]", flags)
	}

	// Ears 15px below: tilt 0.375, past the (asymmetric) up threshold.
	flags = Classify(withFace(165), nil, DefaultThresholds())
	if len(flags) != 1 || flags[0] != FlagLookingUp {
		t.Errorf("tilt 0.375: got %v, want [looking_up]", flags)
	}

	// Within both thresholds: tilt 0.25 is fine.
	flags = Classify(withFace(160), nil, DefaultThresholds())
	if len(flags) != 0 {
		t.Errorf("tilt 0.25: got %v, want no flags", flags)
	}
}

func TestClassifyLeaningHead(t *testing.T) {
	frame := append(levelFrame(100),
		Keypoint{Name: MouthLeft, X: 250, Y: 160},
		Keypoint{Name: MouthRight, X: 240, Y: 160},
	)

	// Mouth midpoint 45px off a 200px shoulder width (limit is 30px).
	flags := Classify(frame, nil, DefaultThresholds())
	if len(flags) != 1 || flags[0] != FlagLeaningHead {
		t.Fatalf("offset mouth: got %v, want [leaning_head]", flags)
	}
}

func TestClassifyTiltedShoulders(t *testing.T) {
	frame := Frame{
		{Name: LeftShoulder, X: 300, Y: 200},
		{Name: RightShoulder, X: 100, Y: 230},
		{Name: Nose, X: 200, Y: 100},
	}

	// atan2(30, -200) is about 171.5 degrees, under the 174 degree line.
	flags := Classify(frame, nil, DefaultThresholds())
	if len(flags) != 1 || flags[0] != FlagTiltedShoulders {
		t.Fatalf("tilted shoulders: got %v, want [tilted_shoulders]", flags)
	}
}

func TestClassifyFlagPriority(t *testing.T) {
	baseline := &Baseline{Ratio: 0.5}
	frame := Frame{
		{Name: LeftShoulder, X: 300, Y: 200},
		{Name: RightShoulder, X: 100, Y: 230},
		{Name: Nose, X: 200, Y: 150},
	}

	flags := Classify(frame, baseline, DefaultThresholds())
	if len(flags) < 2 {
		t.Fatalf("expected multiple flags, got %v", flags)
	}
	if flags[0] != FlagSlouching {
		t.Errorf("first flag: got %v, want slouching", flags[0])
	}

	primary, ok := Primary(flags)
	if !ok || primary != FlagSlouching {
		t.Errorf("Primary: got %v/%v, want slouching/true", primary, ok)
	}
}
