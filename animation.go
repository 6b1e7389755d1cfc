package wezzle

import (
	"errors"
	"fmt"
	"time"
)

// Animation is a single time-driven visual effect. The Manager starts it,
// calls NextFrame once per tick until Finished reports true, then calls
// Finish and drops it. Instances are single-shot.
type Animation interface {
	// NextFrame advances the animation by delta. It is a no-op once the
	// animation has finished.
	NextFrame(delta time.Duration)

	// Start acquires attribute leases on the animated entities and fires the
	// start listeners. A second call is a no-op.
	Start() error

	// Finish releases leases, removes transient entities owned by the
	// animation and fires the finish listeners. Listeners fire exactly once
	// no matter how many times Finish is called.
	Finish()

	Started() bool
	Finished() bool

	Visible() bool
	// SetVisible sets the animation's visibility and propagates it to every
	// entity the animation drives.
	SetVisible(v bool)

	// CleanUp returns the animated entities to the rest state recorded when
	// the animation began and tears down transient entities. Safe to call
	// mid-animation and more than once.
	CleanUp()

	// OnStart and OnFinish register listeners. Every registered listener is
	// called, in registration order.
	OnStart(fn func())
	OnFinish(fn func())
}

// ErrInvalidConfig is wrapped by every constructor error caused by a bad
// configuration value.
var ErrInvalidConfig = errors.New("wezzle: invalid animation config")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// FinishRule decides when a composite effect is complete.
type FinishRule uint8

const (
	FinishFirst FinishRule = iota // done when any part is done
	FinishAll                     // done when every part is done
)

// lease is an attribute claim on one entity.
type lease struct {
	entity Entity
	attrs  Attr
}

// canceler is implemented by every animation in this package. cancel stops
// an animation that will never be finished normally: leases are released
// and transient entities torn down, but no listeners fire.
type canceler interface {
	cancel()
}

// animation holds the lifecycle state shared by every variant.
type animation struct {
	visible  bool
	started  bool
	finished bool
	notified bool

	onStart  []func()
	onFinish []func()

	// begin runs inside Start, after leases are acquired and before the
	// start listeners. Variants use it to record rest state and set the
	// initial frame.
	begin func()

	targets   []Entity
	leases    []lease
	teardown  []func()
	releasing bool
	released  bool
}

func newAnimation() animation {
	return animation{visible: true}
}

// claim registers e as a target and the attributes the animation will write.
func (a *animation) claim(e Entity, attrs Attr) {
	if e == nil {
		panic("wezzle: animation target must not be nil")
	}
	a.targets = append(a.targets, e)
	if attrs != 0 {
		a.leases = append(a.leases, lease{entity: e, attrs: attrs})
	}
}

// own registers fn to run exactly once when the animation finishes, is
// cancelled or is cleaned up.
func (a *animation) own(fn func()) {
	a.teardown = append(a.teardown, fn)
}

func (a *animation) Start() error {
	if a.started {
		return nil
	}
	for i, l := range a.leases {
		leaser, ok := l.entity.(Leaser)
		if !ok {
			continue
		}
		if err := leaser.Acquire(a, l.attrs); err != nil {
			for _, prev := range a.leases[:i] {
				if p, ok := prev.entity.(Leaser); ok {
					p.Release(a)
				}
			}
			return fmt.Errorf("start: %w", err)
		}
	}
	a.started = true
	if a.begin != nil {
		a.begin()
	}
	for _, fn := range a.onStart {
		fn()
	}
	return nil
}

func (a *animation) Finish() {
	if a.notified {
		return
	}
	a.finished = true
	a.notified = true
	a.release()
	for _, fn := range a.onFinish {
		fn()
	}
}

func (a *animation) cancel() {
	a.finished = true
	a.notified = true
	a.release()
}

// release drops leases and runs teardown functions. Only the first call has
// any effect.
func (a *animation) release() {
	if a.released || a.releasing {
		return
	}
	a.releasing = true
	for _, l := range a.leases {
		if leaser, ok := l.entity.(Leaser); ok {
			leaser.Release(a)
		}
	}
	for _, fn := range a.teardown {
		fn()
	}
	a.released = true
	a.releasing = false
}

func (a *animation) Started() bool  { return a.started }
func (a *animation) Finished() bool { return a.finished }
func (a *animation) Visible() bool  { return a.visible }

func (a *animation) SetVisible(v bool) {
	a.visible = v
	for _, e := range a.targets {
		e.SetVisible(v)
	}
}

// CleanUp on the base only releases; variants restore their rest state first.
func (a *animation) CleanUp() {
	a.release()
}

func (a *animation) OnStart(fn func()) {
	if fn != nil {
		a.onStart = append(a.onStart, fn)
	}
}

func (a *animation) OnFinish(fn func()) {
	if fn != nil {
		a.onFinish = append(a.onFinish, fn)
	}
}

// gone reports whether any target entity has been disposed by the scene.
func (a *animation) gone() bool {
	for _, e := range a.targets {
		if d, ok := e.(interface{ IsDisposed() bool }); ok && d.IsDisposed() {
			return true
		}
	}
	return false
}
