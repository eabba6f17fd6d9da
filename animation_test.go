package tilekit

import (
	"errors"
	"testing"
)

func framesOf(durations ...int) []Frame {
	frames := make([]Frame, len(durations))
	for i, d := range durations {
		frames[i] = Frame{Image: ImageRef{Index: i}, Duration: d}
	}
	return frames
}

func TestNewAnimationDefaults(t *testing.T) {
	a := NewAnimation(framesOf(100, 100))
	if !a.Loops || a.PingPong || a.LoopAtIndex != -1 {
		t.Errorf("defaults = loops %v, pingpong %v, loopAt %d; want true, false, -1",
			a.Loops, a.PingPong, a.LoopAtIndex)
	}
	if a.IsPlaying() {
		t.Error("a new animation must not be playing")
	}
	if a.Frame() != 0 || a.CurrentSprite().Index != 0 {
		t.Errorf("Frame() = %d, want 0", a.Frame())
	}

	// Update before Start is a no-op.
	a.Update(1000)
	if a.Frame() != 0 || a.Elapsed() != 0 {
		t.Errorf("stopped animation advanced to frame %d, elapsed %d", a.Frame(), a.Elapsed())
	}
}

func TestAnimationLoopWrap(t *testing.T) {
	a := NewAnimation(framesOf(100, 100))
	a.Start()
	a.Update(250)
	if a.Frame() != 0 {
		t.Errorf("Frame() = %d, want 0", a.Frame())
	}
	if a.Elapsed() != 50 {
		t.Errorf("Elapsed() = %d, want 50", a.Elapsed())
	}
}

func TestAnimationStepByStep(t *testing.T) {
	a := NewAnimation(framesOf(100, 50, 200))
	a.Start()

	steps := []struct {
		delta     int
		wantFrame int
	}{
		{99, 0},
		{1, 1},
		{49, 1},
		{1, 2},
		{199, 2},
		{1, 0},
	}
	for i, s := range steps {
		a.Update(s.delta)
		if a.Frame() != s.wantFrame {
			t.Fatalf("step %d: Frame() = %d, want %d", i, a.Frame(), s.wantFrame)
		}
	}
}

func TestAnimationNoLoopFinishes(t *testing.T) {
	a := NewAnimation(framesOf(100, 100, 100))
	a.Loops = false
	a.Start()
	a.Update(1000)

	if a.Frame() != 2 {
		t.Errorf("Frame() = %d, want last frame 2", a.Frame())
	}
	if !a.IsFinished() || a.IsPlaying() {
		t.Errorf("finished = %v, playing = %v; want true, false", a.IsFinished(), a.IsPlaying())
	}

	a.Update(500)
	if a.Frame() != 2 {
		t.Errorf("finished animation moved to frame %d", a.Frame())
	}

	a.Start()
	if a.IsFinished() || a.Frame() != 0 {
		t.Errorf("Start did not reset a finished animation: frame %d", a.Frame())
	}
}

func TestAnimationLoopAtIndex(t *testing.T) {
	a := NewAnimation(framesOf(10, 10, 10, 10))
	a.LoopAtIndex = 2
	a.Start()

	var seen []int
	for i := 0; i < 8; i++ {
		seen = append(seen, a.Frame())
		a.Update(10)
	}
	want := []int{0, 1, 2, 3, 2, 3, 2, 3}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frames = %v, want %v", seen, want)
		}
	}
}

func TestAnimationPingPong(t *testing.T) {
	a := NewAnimation(framesOf(10, 10, 10, 10))
	a.PingPong = true
	a.Start()

	var seen []int
	for i := 0; i < 12; i++ {
		seen = append(seen, a.Frame())
		a.Update(10)
		if a.Frame() < 0 || a.Frame() >= a.Len() {
			t.Fatalf("frame %d out of range", a.Frame())
		}
	}
	want := []int{0, 1, 2, 3, 2, 1, 0, 1, 2, 3, 2, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frames = %v, want %v", seen, want)
		}
	}
}

func TestAnimationPingPongTwoFrames(t *testing.T) {
	a := NewAnimation(framesOf(100, 100))
	a.PingPong = true
	a.Start()

	a.Update(100)
	if a.Frame() != 1 || a.Backward() {
		t.Fatalf("after first step: frame %d backward %v, want 1 false", a.Frame(), a.Backward())
	}
	a.Update(100)
	if a.Frame() != 0 || !a.Backward() {
		t.Fatalf("after last frame: frame %d backward %v, want 0 true", a.Frame(), a.Backward())
	}
	a.Update(100)
	if a.Frame() != 1 || a.Backward() {
		t.Fatalf("after return trip: frame %d backward %v, want 1 false", a.Frame(), a.Backward())
	}
}

func TestAnimationSingleFrame(t *testing.T) {
	for _, pingPong := range []bool{false, true} {
		a := NewAnimation(framesOf(10))
		a.PingPong = pingPong
		a.Start()
		a.Update(95)
		if a.Frame() != 0 {
			t.Errorf("pingPong=%v: Frame() = %d, want 0", pingPong, a.Frame())
		}
	}
}

func TestAnimationStopResume(t *testing.T) {
	a := NewAnimation(framesOf(100, 100, 100))
	a.Start()
	a.Update(130)

	a.Stop()
	frame, elapsed := a.Frame(), a.Elapsed()
	a.Update(500)
	if a.Frame() != frame || a.Elapsed() != elapsed {
		t.Fatalf("stopped animation moved: (%d, %d) -> (%d, %d)", frame, elapsed, a.Frame(), a.Elapsed())
	}

	a.Resume()
	if a.Frame() != frame || a.Elapsed() != elapsed {
		t.Fatalf("Resume changed the cursor: (%d, %d) -> (%d, %d)", frame, elapsed, a.Frame(), a.Elapsed())
	}
	a.Update(70)
	if a.Frame() != 2 {
		t.Errorf("after resume Frame() = %d, want 2", a.Frame())
	}

	a.Start()
	if a.Frame() != 0 || a.Elapsed() != 0 {
		t.Errorf("Start: (%d, %d), want (0, 0)", a.Frame(), a.Elapsed())
	}
}

func TestAnimationZeroDurationsTerminate(t *testing.T) {
	a := NewAnimation(framesOf(0, 0, 0))
	a.Start()
	a.Update(16) // must return

	b := NewAnimation(framesOf(0, 100))
	b.Start()
	b.Update(50)
	if b.Frame() != 1 || b.Elapsed() != 50 {
		t.Errorf("zero-duration frame not skipped: frame %d elapsed %d", b.Frame(), b.Elapsed())
	}
}

func TestAnimationSetFrame(t *testing.T) {
	a := NewAnimation(framesOf(100, 100, 100))
	a.Start()
	a.Update(50)
	a.SetFrame(7)
	if a.Frame() != 2 || a.Elapsed() != 0 {
		t.Errorf("SetFrame(7): frame %d elapsed %d, want 2, 0", a.Frame(), a.Elapsed())
	}
	a.SetFrame(-3)
	if a.Frame() != 0 {
		t.Errorf("SetFrame(-3): frame %d, want 0", a.Frame())
	}
}

func TestAnimationEmpty(t *testing.T) {
	a := NewAnimation(nil)
	a.Start()
	a.Update(100)
	if a.CurrentSprite() != NoImage {
		t.Errorf("CurrentSprite() = %v, want NoImage", a.CurrentSprite())
	}
}

func TestNewAnimationFromArrays(t *testing.T) {
	images := []ImageRef{{Index: 3}, {Index: 4}}

	a, err := NewAnimationFromArrays(images, []int{40, 60})
	if err != nil {
		t.Fatalf("NewAnimationFromArrays: %v", err)
	}
	if a.Len() != 2 || a.TotalDuration() != 100 {
		t.Errorf("Len %d TotalDuration %d, want 2, 100", a.Len(), a.TotalDuration())
	}

	tests := []struct {
		name      string
		images    []ImageRef
		durations []int
	}{
		{"length mismatch", images, []int{40}},
		{"negative duration", images, []int{40, -1}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnimationFromArrays(tt.images, tt.durations)
			if !errors.Is(err, ErrMalformedAnimationSpec) {
				t.Errorf("err = %v, want ErrMalformedAnimationSpec", err)
			}
		})
	}
}

func BenchmarkAnimationUpdate(b *testing.B) {
	a := NewAnimation(framesOf(16, 16, 16, 16, 16, 16))
	a.PingPong = true
	a.Start()
	b.ReportAllocs()
	for b.Loop() {
		a.Update(16)
	}
}
