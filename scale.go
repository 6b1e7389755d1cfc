package wezzle

import "time"

// ScaleConfig configures Grow and Shrink.
type ScaleConfig struct {
	Wait   time.Duration `yaml:"wait"`
	Period time.Duration `yaml:"period"`
	Step   int           `yaml:"step"`
}

func (c *ScaleConfig) normalize(name string) error {
	c.Period = orDefault(c.Period, DefaultZoomPeriod)
	if c.Step == 0 {
		c.Step = DefaultZoomStep
	}
	if c.Wait < 0 || c.Period < 0 || c.Step < 0 {
		return invalidf("%s: negative timing or step", name)
	}
	return nil
}

// Scale grows an entity from nothing to its recorded size (Grow) or shrinks
// it from its recorded size to nothing (Shrink), anchored at its center.
type Scale struct {
	timed
	entity Entity
	cfg    ScaleConfig
	box    sizeBox
	grow   bool
	width  int
}

// NewGrow creates a grow animation. When it starts the entity is collapsed
// to 0x0 around its center and made visible.
func NewGrow(e Entity, cfg ScaleConfig) (*Scale, error) {
	return newScale(e, cfg, true)
}

// NewShrink creates a shrink animation ending at 0x0.
func NewShrink(e Entity, cfg ScaleConfig) (*Scale, error) {
	return newScale(e, cfg, false)
}

func newScale(e Entity, cfg ScaleConfig, grow bool) (*Scale, error) {
	name := "shrink"
	if grow {
		name = "grow"
	}
	if err := cfg.normalize(name); err != nil {
		return nil, err
	}
	s := &Scale{
		timed:  newTimed(cfg.Wait, cfg.Period, 0),
		entity: e,
		cfg:    cfg,
		grow:   grow,
	}
	attrs := AttrPosition | AttrSize
	if grow {
		attrs |= AttrVisibility
	}
	s.claim(e, attrs)
	s.begin = func() {
		s.box = recordBox(e)
		s.width = s.box.w
		if grow {
			s.width = 0
			s.box.resize(e, 0)
			e.SetVisible(true)
		}
	}
	s.step = s.advance
	return s, nil
}

func (s *Scale) advance() bool {
	if s.grow {
		s.width += s.cfg.Step
		if s.width >= s.box.w {
			s.box.restore(s.entity)
			return true
		}
	} else {
		s.width -= s.cfg.Step
		if s.width <= 0 {
			s.box.resize(s.entity, 0)
			return true
		}
	}
	s.box.resize(s.entity, s.width)
	return false
}

// CleanUp restores the recorded size and position.
func (s *Scale) CleanUp() {
	if s.started && !s.released {
		s.box.restore(s.entity)
	}
	s.release()
}
