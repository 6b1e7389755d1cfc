package wezzle

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween eases up to two entity fields toward target values using gween.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenOpacity, TweenRotation). Unlike the stepped variants, a tween is
// continuous: every NextFrame writes an interpolated value.
//
// If the target entity is disposed, the tween finishes immediately without
// writing.
type Tween struct {
	animation
	entity Entity
	tweens [2]*gween.Tween
	count  int
	from   [2]float64
	apply  func(vals [2]float64)
}

func newTween(e Entity, attrs Attr, to [2]float64, count int, d time.Duration, fn ease.TweenFunc,
	read func() [2]float64, apply func([2]float64)) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	t := &Tween{
		animation: newAnimation(),
		entity:    e,
		count:     count,
		apply:     apply,
	}
	t.claim(e, attrs)
	secs := float32(d.Seconds())
	t.begin = func() {
		t.from = read()
		for i := 0; i < count; i++ {
			t.tweens[i] = gween.New(float32(t.from[i]), float32(to[i]), secs, fn)
		}
	}
	return t
}

// NextFrame advances every tween by delta, then writes the values.
func (t *Tween) NextFrame(delta time.Duration) {
	if t.finished || !t.started {
		return
	}
	if t.gone() {
		t.finished = true
		return
	}

	dt := float32(delta.Seconds())
	var vals [2]float64
	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.apply(vals)
	t.finished = allDone
}

// CleanUp restores the values read when the tween started.
func (t *Tween) CleanUp() {
	if t.started && !t.released {
		t.apply(t.from)
	}
	t.release()
}

// TweenPosition creates a Tween that moves e to (toX, toY) over d.
func TweenPosition(e Entity, toX, toY float64, d time.Duration, fn ease.TweenFunc) *Tween {
	return newTween(e, AttrPosition, [2]float64{toX, toY}, 2, d, fn,
		func() [2]float64 { return [2]float64{e.X(), e.Y()} },
		func(v [2]float64) {
			e.SetX(v[0])
			e.SetY(v[1])
		})
}

// TweenSize creates a Tween that resizes e to w x h over d. The top-left
// corner stays put.
func TweenSize(e Entity, w, h int, d time.Duration, fn ease.TweenFunc) *Tween {
	return newTween(e, AttrSize, [2]float64{float64(w), float64(h)}, 2, d, fn,
		func() [2]float64 { return [2]float64{float64(e.Width()), float64(e.Height())} },
		func(v [2]float64) {
			e.SetWidth(int(math.Round(v[0])))
			e.SetHeight(int(math.Round(v[1])))
		})
}

// TweenOpacity creates a Tween that takes e's opacity to the target over d.
func TweenOpacity(e Entity, to int, d time.Duration, fn ease.TweenFunc) *Tween {
	return newTween(e, AttrOpacity, [2]float64{float64(to)}, 1, d, fn,
		func() [2]float64 { return [2]float64{float64(e.Opacity())} },
		func(v [2]float64) { e.SetOpacity(int(math.Round(v[0]))) })
}

// TweenRotation creates a Tween that rotates e to the target angle over d.
func TweenRotation(e Entity, to float64, d time.Duration, fn ease.TweenFunc) *Tween {
	return newTween(e, AttrRotation, [2]float64{to}, 1, d, fn,
		func() [2]float64 { return [2]float64{e.Rotation()} },
		func(v [2]float64) { e.SetRotation(v[0]) })
}
