package wezzle

import "time"

// timed is the frame-stepping driver behind every discrete-step variant.
// Elapsed time accumulates into a counter; each whole period runs the step
// function once, and the first step that reports completion ends the
// animation. A bounded driver never steps past its duration. The number of
// steps therefore depends only on total elapsed time, not on how that time
// was split across NextFrame calls. Unstarted drivers ignore NextFrame.
type timed struct {
	animation

	wait     time.Duration // remaining suppression before the effect starts
	period   time.Duration
	duration time.Duration // 0 means unbounded
	counter  time.Duration
	elapsed  time.Duration // time since wait ran out
	stepped  time.Duration // effect time covered by steps so far

	// step applies one discrete frame and reports whether the effect is done.
	step func() bool

	// periodFn, when set, returns the length of the next period. Used by
	// variants whose phases have different lengths.
	periodFn func() time.Duration

	// enter applies the effect's first visual frame. Nothing visible changes
	// while the wait remains.
	enter   func()
	entered bool
}

func newTimed(wait, period, duration time.Duration) timed {
	return timed{
		animation: newAnimation(),
		wait:      wait,
		period:    period,
		duration:  duration,
	}
}

func (t *timed) NextFrame(delta time.Duration) {
	if t.finished || !t.started || delta <= 0 {
		return
	}
	if t.gone() {
		t.finished = true
		return
	}
	if t.wait > 0 {
		if delta < t.wait {
			t.wait -= delta
			return
		}
		delta -= t.wait
		t.wait = 0
	}
	t.enterEffect()

	t.elapsed += delta
	t.counter += delta
	for {
		p := t.nextPeriod()
		if p <= 0 {
			panic("wezzle: timed animation with non-positive period")
		}
		// A step that would land past the duration never runs.
		if t.duration > 0 && t.stepped+p > t.duration {
			break
		}
		if t.counter < p {
			break
		}
		t.counter -= p
		t.stepped += p
		if t.step() {
			t.finished = true
			return
		}
	}

	if t.duration > 0 && t.elapsed >= t.duration {
		t.finished = true
	}
}

// enterEffect runs enter once. Variants call it from begin when there is no
// wait; otherwise NextFrame calls it as the wait runs out.
func (t *timed) enterEffect() {
	if t.entered {
		return
	}
	t.entered = true
	if t.enter != nil {
		t.enter()
	}
}

func (t *timed) nextPeriod() time.Duration {
	if t.periodFn != nil {
		return t.periodFn()
	}
	return t.period
}

// Elapsed returns the time the effect has been running, excluding the wait.
func (t *timed) Elapsed() time.Duration {
	return t.elapsed
}

// orDefault returns def when d is zero.
func orDefault(d, def time.Duration) time.Duration {
	if d == 0 {
		return def
	}
	return d
}
