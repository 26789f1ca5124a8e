package pose

import (
	"errors"
	"testing"
)

func TestCalibrateNotReady(t *testing.T) {
	if _, err := Calibrate(nil, DefaultThresholds()); !errors.Is(err, ErrNotReady) {
		t.Fatalf("nil frame: got %v, want ErrNotReady", err)
	}
	if _, err := Calibrate(Frame{}, DefaultThresholds()); !errors.Is(err, ErrNotReady) {
		t.Fatalf("empty frame: got %v, want ErrNotReady", err)
	}
}

func TestCalibrateLandmarksHidden(t *testing.T) {
	frame := Frame{
		{Name: LeftShoulder, X: 300, Y: 200},
		{Name: Nose, X: 200, Y: 100},
	}
	if _, err := Calibrate(frame, DefaultThresholds()); !errors.Is(err, ErrLandmarksHidden) {
		t.Fatalf("got %v, want ErrLandmarksHidden", err)
	}
}

func TestCalibrateShoulderWidthGuard(t *testing.T) {
	narrow := Frame{
		{Name: LeftShoulder, X: 203, Y: 200},
		{Name: RightShoulder, X: 198, Y: 200},
		{Name: Nose, X: 200, Y: 100},
	}
	if _, err := Calibrate(narrow, DefaultThresholds()); !errors.Is(err, ErrShouldersTooClose) {
		t.Fatalf("5px shoulders: got %v, want ErrShouldersTooClose", err)
	}

	wide := Frame{
		{Name: LeftShoulder, X: 225, Y: 200},
		{Name: RightShoulder, X: 175, Y: 200},
		{Name: Nose, X: 200, Y: 150},
	}
	baseline, err := Calibrate(wide, DefaultThresholds())
	if err != nil {
		t.Fatalf("50px shoulders: unexpected error %v", err)
	}
	if baseline.Ratio != 1.0 {
		t.Fatalf("ratio: got %v, want 1.0", baseline.Ratio)
	}
}

func TestCalibrateReplacesWholly(t *testing.T) {
	first := levelFrame(100)
	b1, err := Calibrate(first, DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}

	b2, err := Calibrate(levelFrame(150), DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	if b1.Ratio == b2.Ratio {
		t.Fatal("expected recalibration to produce a different ratio")
	}
}
