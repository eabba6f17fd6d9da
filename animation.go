package tilekit

import "fmt"

// Frame is one image of an animation and how long it stays on screen.
type Frame struct {
	Image    ImageRef
	Duration int // milliseconds
}

// Animation plays a sequence of frames driven by elapsed time.
//
// A new animation is stopped on frame 0. Start plays it from the beginning,
// Stop pauses it in place and Resume continues from where it stopped.
// Update advances the clock; the current frame is available in every state.
//
// When playback runs past the last frame the first matching rule applies:
// PingPong reverses direction, LoopAtIndex >= 0 jumps to that frame, Loops
// wraps to frame 0, and otherwise the animation finishes on its last frame.
type Animation struct {
	// Loops restarts playback at frame 0 after the last frame.
	Loops bool
	// PingPong plays back and forth between the first and last frames.
	PingPong bool
	// LoopAtIndex, when >= 0, is the frame playback jumps to after the last
	// frame. -1 disables it.
	LoopAtIndex int

	frames []Frame

	elapsed  int // ms into the current frame
	index    int
	playing  bool
	backward bool
	finished bool
}

// NewAnimation creates a looping animation over frames. The slice is
// copied.
func NewAnimation(frames []Frame) *Animation {
	a := &Animation{
		Loops:       true,
		LoopAtIndex: -1,
		frames:      make([]Frame, len(frames)),
	}
	copy(a.frames, frames)
	return a
}

// NewAnimationFromArrays pairs images with durations (milliseconds). The
// arrays must be the same non-zero length and durations must not be
// negative.
func NewAnimationFromArrays(images []ImageRef, durations []int) (*Animation, error) {
	if len(images) != len(durations) {
		return nil, fmt.Errorf("tilekit: %d frames but %d durations: %w",
			len(images), len(durations), ErrMalformedAnimationSpec)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("tilekit: no frames: %w", ErrMalformedAnimationSpec)
	}
	frames := make([]Frame, len(images))
	for i := range images {
		if durations[i] < 0 {
			return nil, fmt.Errorf("tilekit: frame %d has negative duration %d: %w",
				i, durations[i], ErrMalformedAnimationSpec)
		}
		frames[i] = Frame{Image: images[i], Duration: durations[i]}
	}
	return NewAnimation(frames), nil
}

// Start plays the animation from frame 0, going forward.
func (a *Animation) Start() {
	a.elapsed = 0
	a.index = 0
	a.backward = false
	a.finished = false
	a.playing = true
}

// Restart is an alias for Start.
func (a *Animation) Restart() {
	a.Start()
}

// Stop pauses playback. The current frame and elapsed time are kept.
func (a *Animation) Stop() {
	a.playing = false
}

// Resume continues playback from the current frame and direction.
func (a *Animation) Resume() {
	a.finished = false
	a.playing = true
}

// Update advances playback by deltaMs milliseconds. It does nothing while
// the animation is stopped or finished.
func (a *Animation) Update(deltaMs int) {
	if !a.playing || len(a.frames) == 0 || deltaMs <= 0 {
		return
	}
	a.elapsed += deltaMs

	// zero-duration frames consume no time; cap how many can be skipped in
	// a row so an all-zero loop terminates
	zeroRun := 0
	for a.playing && a.elapsed >= a.frames[a.index].Duration {
		d := a.frames[a.index].Duration
		if d <= 0 {
			zeroRun++
			if zeroRun > 2*len(a.frames) {
				a.elapsed = 0
				return
			}
		} else {
			zeroRun = 0
		}
		a.elapsed -= d
		a.advance()
	}
}

// advance moves one frame in the current direction, applying the
// end-of-sequence rules.
func (a *Animation) advance() {
	last := len(a.frames) - 1

	if a.backward {
		if a.index > 0 {
			a.index--
			return
		}
		// the first frame was just shown; skip it on the way back out
		a.backward = false
		a.index = min(1, last)
		return
	}

	if a.index < last {
		a.index++
		return
	}

	switch {
	case a.PingPong:
		a.backward = true
		a.index = max(last-1, 0)
	case a.LoopAtIndex >= 0:
		a.index = min(a.LoopAtIndex, last)
	case a.Loops:
		a.index = 0
	default:
		a.index = last
		a.elapsed = 0
		a.finished = true
		a.playing = false
	}
}

// CurrentSprite returns the image of the current frame, or NoImage for an
// animation without frames.
func (a *Animation) CurrentSprite() ImageRef {
	if len(a.frames) == 0 {
		return NoImage
	}
	return a.frames[a.index].Image
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	return a.index
}

// SetFrame jumps to frame i (clamped to the valid range) and clears the
// time spent in the current frame.
func (a *Animation) SetFrame(i int) {
	if len(a.frames) == 0 {
		return
	}
	a.index = max(0, min(i, len(a.frames)-1))
	a.elapsed = 0
}

// Elapsed returns the milliseconds spent in the current frame.
func (a *Animation) Elapsed() int {
	return a.elapsed
}

// IsPlaying reports whether Update advances the animation.
func (a *Animation) IsPlaying() bool {
	return a.playing
}

// IsFinished reports whether a non-looping animation has played its last
// frame.
func (a *Animation) IsFinished() bool {
	return a.finished
}

// Backward reports whether a ping-pong animation is on its return trip.
func (a *Animation) Backward() bool {
	return a.backward
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}

// Frames returns the animation's frames. The slice must not be modified.
func (a *Animation) Frames() []Frame {
	return a.frames
}

// TotalDuration returns the sum of all frame durations in milliseconds.
func (a *Animation) TotalDuration() int {
	total := 0
	for _, f := range a.frames {
		total += f.Duration
	}
	return total
}
