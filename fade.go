package wezzle

import "time"

// FadeKind selects the direction of a Fade.
type FadeKind uint8

const (
	FadeIn      FadeKind = iota // min -> max, then done
	FadeOut                     // max -> min, then done
	FadeLoopIn                  // min -> max -> min ... forever
	FadeLoopOut                 // max -> min -> max ... forever
)

// DefaultFadeDuration is used when FadeConfig.Duration is zero.
const DefaultFadeDuration = 500 * time.Millisecond

// FadeConfig configures a Fade. Zero values take defaults: Duration
// DefaultFadeDuration, MaxOpacity 100.
type FadeConfig struct {
	Kind       FadeKind      `yaml:"kind"`
	Wait       time.Duration `yaml:"wait"`
	Duration   time.Duration `yaml:"duration"`
	MinOpacity int           `yaml:"minOpacity"`
	MaxOpacity int           `yaml:"maxOpacity"`
}

// Fade ramps an entity's opacity linearly between MinOpacity and MaxOpacity
// over Duration.
type Fade struct {
	timed
	entity Entity
	cfg    FadeConfig

	opacity int
	delta   int // signed per-step change
	rest    int
}

// NewFade creates a fade on e. The entity's opacity is set to the starting
// bound once the wait runs out, or at Start when there is no wait.
func NewFade(e Entity, cfg FadeConfig) (*Fade, error) {
	if cfg.MaxOpacity == 0 {
		cfg.MaxOpacity = 100
	}
	cfg.Duration = orDefault(cfg.Duration, DefaultFadeDuration)
	switch {
	case cfg.Kind > FadeLoopOut:
		return nil, invalidf("fade: unknown kind %d", cfg.Kind)
	case cfg.Wait < 0:
		return nil, invalidf("fade: negative wait %v", cfg.Wait)
	case cfg.Duration < 0:
		return nil, invalidf("fade: negative duration %v", cfg.Duration)
	case cfg.MinOpacity < 0 || cfg.MaxOpacity > 100:
		return nil, invalidf("fade: opacity range [%d, %d] outside [0, 100]", cfg.MinOpacity, cfg.MaxOpacity)
	case cfg.MinOpacity >= cfg.MaxOpacity:
		return nil, invalidf("fade: min opacity %d not below max %d", cfg.MinOpacity, cfg.MaxOpacity)
	}

	period, step := fadeRate(cfg.MaxOpacity-cfg.MinOpacity, cfg.Duration)
	f := &Fade{
		timed:  newTimed(cfg.Wait, period, 0),
		entity: e,
		cfg:    cfg,
	}
	f.claim(e, AttrOpacity)
	f.begin = func() {
		f.rest = e.Opacity()
		switch cfg.Kind {
		case FadeIn, FadeLoopIn:
			f.opacity, f.delta = cfg.MinOpacity, step
		default:
			f.opacity, f.delta = cfg.MaxOpacity, -step
		}
		if f.wait == 0 {
			f.enterEffect()
		}
	}
	f.enter = func() {
		e.SetOpacity(f.opacity)
	}
	f.step = f.advance
	return f, nil
}

// fadeRate splits an opacity range over a duration into a period and a
// per-period step. Steps are 1 unless that would need a period under 1ms.
func fadeRate(span int, d time.Duration) (time.Duration, int) {
	period := d / time.Duration(span)
	if period >= time.Millisecond {
		return period, 1
	}
	ms := max(int(d/time.Millisecond), 1)
	return time.Millisecond, (span + ms - 1) / ms
}

func (f *Fade) advance() bool {
	f.opacity += f.delta
	loop := f.cfg.Kind == FadeLoopIn || f.cfg.Kind == FadeLoopOut
	switch {
	case f.delta > 0 && f.opacity >= f.cfg.MaxOpacity:
		f.opacity = f.cfg.MaxOpacity
		f.entity.SetOpacity(f.opacity)
		if !loop {
			return true
		}
		f.delta = -f.delta
	case f.delta < 0 && f.opacity <= f.cfg.MinOpacity:
		f.opacity = f.cfg.MinOpacity
		f.entity.SetOpacity(f.opacity)
		if !loop {
			return true
		}
		f.delta = -f.delta
	default:
		f.entity.SetOpacity(f.opacity)
	}
	return false
}

// CleanUp restores the opacity the entity had when the fade started.
func (f *Fade) CleanUp() {
	if f.started && !f.released {
		f.entity.SetOpacity(f.rest)
	}
	f.release()
}
