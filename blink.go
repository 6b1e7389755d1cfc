package wezzle

import "time"

// BlinkKind selects whether a Blink ends.
type BlinkKind uint8

const (
	BlinkFixed      BlinkKind = iota // ends after Duration
	BlinkContinuous                  // never ends
)

// BlinkConfig configures a Blink. ShowPeriod and HidePeriod default to
// 250ms.
type BlinkConfig struct {
	Kind       BlinkKind     `yaml:"kind"`
	Wait       time.Duration `yaml:"wait"`
	Duration   time.Duration `yaml:"duration"`
	ShowPeriod time.Duration `yaml:"showPeriod"`
	HidePeriod time.Duration `yaml:"hidePeriod"`
}

// Blink toggles an entity's visibility: shown for ShowPeriod, hidden for
// HidePeriod, repeating. The entity is shown when the blink starts and its
// original visibility comes back when the blink finishes or is cleaned up.
type Blink struct {
	timed
	entity  Entity
	cfg     BlinkConfig
	showing bool
	rest    bool
	toggles int
}

// NewBlink creates a blink on e.
func NewBlink(e Entity, cfg BlinkConfig) (*Blink, error) {
	cfg.ShowPeriod = orDefault(cfg.ShowPeriod, 250*time.Millisecond)
	cfg.HidePeriod = orDefault(cfg.HidePeriod, 250*time.Millisecond)
	switch {
	case cfg.Kind > BlinkContinuous:
		return nil, invalidf("blink: unknown kind %d", cfg.Kind)
	case cfg.Wait < 0 || cfg.Duration < 0 || cfg.ShowPeriod < 0 || cfg.HidePeriod < 0:
		return nil, invalidf("blink: negative timing")
	case cfg.Kind == BlinkFixed && cfg.Duration == 0:
		return nil, invalidf("blink: fixed blink needs a positive duration")
	}

	duration := cfg.Duration
	if cfg.Kind == BlinkContinuous {
		duration = 0
	}
	b := &Blink{
		timed:  newTimed(cfg.Wait, 0, duration),
		entity: e,
		cfg:    cfg,
	}
	b.claim(e, AttrVisibility)
	b.begin = func() {
		b.rest = e.Visible()
		b.showing = true
		e.SetVisible(true)
	}
	b.own(func() {
		if b.started {
			e.SetVisible(b.rest)
		}
	})
	b.periodFn = b.phase
	b.step = b.toggle
	return b, nil
}

func (b *Blink) phase() time.Duration {
	if b.showing {
		return b.cfg.ShowPeriod
	}
	return b.cfg.HidePeriod
}

func (b *Blink) toggle() bool {
	b.showing = !b.showing
	b.toggles++
	b.entity.SetVisible(b.showing)
	return false
}

// Toggles returns how many times the entity's visibility has flipped.
func (b *Blink) Toggles() int {
	return b.toggles
}
