package wezzle

import "time"

// FloatConfig configures a Float. Speed is in pixels per second along
// (DirX, DirY). With FadeOut the entity also loses FadeStep opacity per
// period once FadeWait has passed.
type FloatConfig struct {
	Wait     time.Duration `yaml:"wait"`
	Duration time.Duration `yaml:"duration"`
	Period   time.Duration `yaml:"period"`
	Speed    float64       `yaml:"speed"`
	DirX     float64       `yaml:"dirX"`
	DirY     float64       `yaml:"dirY"`
	FadeOut  bool          `yaml:"fadeOut"`
	FadeWait time.Duration `yaml:"fadeWait"`
	FadeStep int           `yaml:"fadeStep"`
}

// Float drifts an entity at constant velocity for Duration.
type Float struct {
	timed
	entity  Entity
	cfg     FloatConfig
	x0, y0  float64
	o0      int
	opacity int
	steps   int
}

// NewFloat creates a float on e. The entity is not owned by the animation.
func NewFloat(e Entity, cfg FloatConfig) (*Float, error) {
	cfg.Period = orDefault(cfg.Period, 10*time.Millisecond)
	if cfg.FadeOut && cfg.FadeStep == 0 {
		cfg.FadeStep = 5
	}
	switch {
	case cfg.Wait < 0 || cfg.Period < 0 || cfg.FadeWait < 0:
		return nil, invalidf("float: negative timing")
	case cfg.Duration <= 0:
		return nil, invalidf("float: needs a positive duration")
	case cfg.FadeStep < 0:
		return nil, invalidf("float: negative fade step %d", cfg.FadeStep)
	}

	f := &Float{
		timed:  newTimed(cfg.Wait, cfg.Period, cfg.Duration),
		entity: e,
		cfg:    cfg,
	}
	attrs := AttrPosition
	if cfg.FadeOut {
		attrs |= AttrOpacity
	}
	f.claim(e, attrs)
	f.begin = func() {
		f.x0, f.y0 = e.X(), e.Y()
		f.o0 = e.Opacity()
		f.opacity = f.o0
		if f.wait == 0 {
			f.enterEffect()
		}
	}
	f.step = f.advance
	return f, nil
}

// NewFloatText creates a text label at (x, y), adds it to layer and floats
// it. With a Wait the label stays hidden until the wait runs out. The label
// belongs to the animation: it is removed from the scene when
// the animation finishes, is cancelled or is cleaned up.
func NewFloatText(layers Layers, layer Layer, content string, x, y float64, cfg FloatConfig) (*Float, *Node, error) {
	label := NewText("float:"+content, content)
	label.SetPosition(x, y)
	f, err := NewFloat(label, cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Wait > 0 {
		label.SetVisible(false)
		f.enter = func() { label.SetVisible(true) }
		f.claim(label, AttrVisibility)
	}
	f.adopt(layers, layer, label)
	return f, label, nil
}

func (f *Float) advance() bool {
	f.steps++
	t := (time.Duration(f.steps) * f.cfg.Period).Seconds()
	f.entity.SetX(f.x0 + f.cfg.Speed*f.cfg.DirX*t)
	f.entity.SetY(f.y0 + f.cfg.Speed*f.cfg.DirY*t)
	if f.cfg.FadeOut && time.Duration(f.steps)*f.cfg.Period > f.cfg.FadeWait {
		f.opacity = max(f.opacity-f.cfg.FadeStep, 0)
		f.entity.SetOpacity(f.opacity)
	}
	return false
}

// CleanUp returns a borrowed entity to its starting position and opacity.
// Owned labels are simply removed.
func (f *Float) CleanUp() {
	if f.started && !f.released {
		f.entity.SetX(f.x0)
		f.entity.SetY(f.y0)
		if f.cfg.FadeOut {
			f.entity.SetOpacity(f.o0)
		}
	}
	f.release()
}
