package tilekit

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Animator owns a set of named animations and plays one of them at a time.
type Animator struct {
	anims       map[string]*Animation
	current     *Animation
	currentName string
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{anims: make(map[string]*Animation)}
}

// AddAnimation registers a under name. The first animation added becomes
// current but is not started.
func (r *Animator) AddAnimation(name string, a *Animation) error {
	if a == nil {
		return fmt.Errorf("tilekit: animation %q is nil", name)
	}
	if r.anims == nil {
		r.anims = make(map[string]*Animation)
	}
	if _, ok := r.anims[name]; ok {
		return fmt.Errorf("tilekit: animation %q: %w", name, ErrDuplicateKey)
	}
	r.anims[name] = a
	if r.current == nil {
		r.current = a
		r.currentName = name
	}
	return nil
}

// PlayAnimation makes name the current animation. A different animation
// that was current is stopped first, keeping its position. With restart
// the named animation plays from its first frame; otherwise it resumes
// where it was.
func (r *Animator) PlayAnimation(name string, restart bool) error {
	a, ok := r.anims[name]
	if !ok {
		return fmt.Errorf("tilekit: animation %q: %w", name, ErrNotFound)
	}
	if r.current != nil && r.current != a {
		r.current.Stop()
	}
	r.current = a
	r.currentName = name
	if restart {
		a.Start()
	} else {
		a.Resume()
	}
	if globalDebug {
		logger.Debug("play animation", zap.String("name", name), zap.Bool("restart", restart))
	}
	return nil
}

// Play is PlayAnimation with restart.
func (r *Animator) Play(name string) error {
	return r.PlayAnimation(name, true)
}

// Update advances the current animation by deltaMs milliseconds.
func (r *Animator) Update(deltaMs int) {
	if r.current == nil {
		return
	}
	r.current.Update(deltaMs)
}

// CurrentImage returns the current animation's frame image, or NoImage when
// the animator is empty.
func (r *Animator) CurrentImage() ImageRef {
	if r.current == nil {
		return NoImage
	}
	return r.current.CurrentSprite()
}

// Current returns the current animation, or nil.
func (r *Animator) Current() *Animation {
	return r.current
}

// CurrentName returns the name of the current animation, or "".
func (r *Animator) CurrentName() string {
	return r.currentName
}

// Animation returns the animation registered under name.
func (r *Animator) Animation(name string) (*Animation, bool) {
	a, ok := r.anims[name]
	return a, ok
}

// Names returns the registered animation names in sorted order.
func (r *Animator) Names() []string {
	names := make([]string, 0, len(r.anims))
	for name := range r.anims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
