package tilekit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup moves a Body along up to two eased axes. Each Update writes
// the step through Body.Move, so the movement shows up in the body's delta
// and the next CheckCollision resolves it against the map like any other
// movement.
//
// There is no global tween manager; callers run Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	axis   [2]int // 0 = X, 1 = Y
	target *Body
	Done   bool
}

// Update advances all tweens by dt seconds and moves the body. If the body
// has been disabled, Done is set to true and no movement occurs.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target == nil || g.target.Disabled {
		g.Done = true
		return
	}

	allDone := true
	var dx, dy float64
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if g.axis[i] == 0 {
			dx = float64(val) - g.target.X
		} else {
			dy = float64(val) - g.target.Y
		}
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if dx != 0 || dy != 0 {
		g.target.Move(dx, dy)
	}
}

// TweenPosition creates a TweenGroup that moves body to (toX, toY) over the
// given duration in seconds using the easing function.
func TweenPosition(body *Body, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: body}
	g.tweens[0] = gween.New(float32(body.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(body.Y), float32(toY), duration, fn)
	g.axis[0], g.axis[1] = 0, 1
	return g
}

// TweenX creates a TweenGroup that moves only body.X to toX.
func TweenX(body *Body, toX float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: body}
	g.tweens[0] = gween.New(float32(body.X), float32(toX), duration, fn)
	g.axis[0] = 0
	return g
}

// TweenY creates a TweenGroup that moves only body.Y to toY.
func TweenY(body *Body, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: body}
	g.tweens[0] = gween.New(float32(body.Y), float32(toY), duration, fn)
	g.axis[0] = 1
	return g
}
