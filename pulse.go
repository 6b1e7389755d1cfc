package wezzle

import "time"

// PulseConfig configures a Pulse. Zero values take defaults: Period 20ms,
// Step 1, Amplitude 4.
type PulseConfig struct {
	Wait      time.Duration `yaml:"wait"`
	Period    time.Duration `yaml:"period"`
	Step      int           `yaml:"step"`
	Amplitude int           `yaml:"amplitude"`
}

// Pulse makes an entity breathe: its size swings between -Amplitude and
// +Amplitude pixels around the starting size, centered. It never finishes on
// its own; remove it from the Manager and call CleanUp to stop it.
type Pulse struct {
	timed
	entity Entity
	cfg    PulseConfig
	box    sizeBox
	offset int
	dir    int
}

// NewPulse creates a pulse on e.
func NewPulse(e Entity, cfg PulseConfig) (*Pulse, error) {
	cfg.Period = orDefault(cfg.Period, 20*time.Millisecond)
	if cfg.Step == 0 {
		cfg.Step = 1
	}
	if cfg.Amplitude == 0 {
		cfg.Amplitude = 4
	}
	if cfg.Wait < 0 || cfg.Period < 0 || cfg.Step < 0 || cfg.Amplitude < 0 {
		return nil, invalidf("pulse: negative timing, step or amplitude")
	}
	p := &Pulse{
		timed:  newTimed(cfg.Wait, cfg.Period, 0),
		entity: e,
		cfg:    cfg,
	}
	p.claim(e, AttrPosition|AttrSize)
	p.begin = func() {
		p.box = recordBox(e)
		p.dir = -1
	}
	p.step = p.advance
	return p, nil
}

func (p *Pulse) advance() bool {
	p.offset += p.dir * p.cfg.Step
	if p.offset <= -p.cfg.Amplitude {
		p.offset = -p.cfg.Amplitude
		p.dir = 1
	} else if p.offset >= p.cfg.Amplitude {
		p.offset = p.cfg.Amplitude
		p.dir = -1
	}
	p.box.resizeBy(p.entity, p.offset)
	return false
}

// CleanUp restores the starting size and position.
func (p *Pulse) CleanUp() {
	if p.started && !p.released {
		p.box.restore(p.entity)
	}
	p.release()
}
