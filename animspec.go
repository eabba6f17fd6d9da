package tilekit

import "fmt"

// AnimationSpec is the parsed description of one animation, as produced by
// an external loader. Frames are indexes into the named sprite sheet and
// Durations are milliseconds; both arrays have one entry per frame.
//
// When LoopAt is set, reaching the last frame jumps back to LoopAtIndex
// instead of applying Loops. LoopAtIndex is ignored otherwise, so the zero
// value of a spec plays once.
type AnimationSpec struct {
	Name        string
	Frames      []int
	Durations   []int
	Loops       bool
	PingPong    bool
	LoopAt      bool
	LoopAtIndex int
	Sheet       string
}

// Validate checks the frame and duration arrays and the loop index.
func (s AnimationSpec) Validate() error {
	if len(s.Frames) != len(s.Durations) {
		return fmt.Errorf("tilekit: animation %q: %d frames but %d durations: %w",
			s.Name, len(s.Frames), len(s.Durations), ErrMalformedAnimationSpec)
	}
	if len(s.Frames) == 0 {
		return fmt.Errorf("tilekit: animation %q: no frames: %w", s.Name, ErrMalformedAnimationSpec)
	}
	for i := range s.Frames {
		if s.Frames[i] < 0 {
			return fmt.Errorf("tilekit: animation %q: frame %d has negative index %d: %w",
				s.Name, i, s.Frames[i], ErrMalformedAnimationSpec)
		}
		if s.Durations[i] < 0 {
			return fmt.Errorf("tilekit: animation %q: frame %d has negative duration %d: %w",
				s.Name, i, s.Durations[i], ErrMalformedAnimationSpec)
		}
	}
	if s.LoopAt && (s.LoopAtIndex < 0 || s.LoopAtIndex >= len(s.Frames)) {
		return fmt.Errorf("tilekit: animation %q: loop index %d out of range: %w",
			s.Name, s.LoopAtIndex, ErrMalformedAnimationSpec)
	}
	return nil
}

// NewAnimationFromSpec builds a stopped animation from s using sheet for
// frame images. sheet may be nil when only frame indexes are needed.
func NewAnimationFromSpec(s AnimationSpec, sheet *SpriteSheet) (*Animation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	images := make([]ImageRef, len(s.Frames))
	for i, idx := range s.Frames {
		images[i] = ImageRef{Sheet: sheet, Index: idx}
	}
	a, err := NewAnimationFromArrays(images, s.Durations)
	if err != nil {
		return nil, err
	}
	a.Loops = s.Loops
	a.PingPong = s.PingPong
	if s.LoopAt {
		a.LoopAtIndex = s.LoopAtIndex
	}
	return a, nil
}

// BuildAnimator creates an animator holding one animation per spec. Each
// spec's Sheet must name an entry of sheets. The first spec becomes the
// current animation.
func BuildAnimator(specs []AnimationSpec, sheets map[string]*SpriteSheet) (*Animator, error) {
	r := NewAnimator()
	for _, s := range specs {
		sheet, ok := sheets[s.Sheet]
		if !ok {
			return nil, fmt.Errorf("tilekit: animation %q: sheet %q: %w", s.Name, s.Sheet, ErrNotFound)
		}
		a, err := NewAnimationFromSpec(s, sheet)
		if err != nil {
			return nil, err
		}
		if err := r.AddAnimation(s.Name, a); err != nil {
			return nil, err
		}
	}
	return r, nil
}
