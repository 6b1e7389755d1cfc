package wezzle

import (
	"math"
	"math/rand/v2"
	"time"
)

// JiggleConfig configures a Jiggle. Factor is the full rotation range in
// radians; each period the rotation is set to a random value within
// ±Factor/2 of the starting rotation.
//
// With FadeOut the entity also loses FadeStep opacity per period and the
// jiggle ends when opacity reaches MinOpacity. Without it the jiggle ends
// after Duration.
type JiggleConfig struct {
	Wait       time.Duration `yaml:"wait"`
	Duration   time.Duration `yaml:"duration"`
	Period     time.Duration `yaml:"period"`
	Factor     float64       `yaml:"factor"`
	FadeOut    bool          `yaml:"fadeOut"`
	FadeStep   int           `yaml:"fadeStep"`
	MinOpacity int           `yaml:"minOpacity"`

	// Rand is the random source; nil uses the global generator.
	Rand *rand.Rand `yaml:"-"`
}

// Jiggle shakes an entity by randomizing its rotation.
type Jiggle struct {
	timed
	entity  Entity
	cfg     JiggleConfig
	r0      float64
	o0      int
	opacity int
}

// NewJiggle creates a jiggle on e.
func NewJiggle(e Entity, cfg JiggleConfig) (*Jiggle, error) {
	cfg.Period = orDefault(cfg.Period, 50*time.Millisecond)
	if cfg.Factor == 0 {
		cfg.Factor = math.Pi / 8
	}
	if cfg.FadeOut && cfg.FadeStep == 0 {
		cfg.FadeStep = 8
	}
	switch {
	case cfg.Wait < 0 || cfg.Duration < 0 || cfg.Period < 0:
		return nil, invalidf("jiggle: negative timing")
	case !cfg.FadeOut && cfg.Duration == 0:
		return nil, invalidf("jiggle: needs a positive duration or FadeOut")
	case cfg.FadeOut && (cfg.FadeStep < 0 || cfg.MinOpacity < 0 || cfg.MinOpacity > 100):
		return nil, invalidf("jiggle: bad fade step %d or min opacity %d", cfg.FadeStep, cfg.MinOpacity)
	}

	duration := cfg.Duration
	if cfg.FadeOut {
		duration = 0
	}
	j := &Jiggle{
		timed:  newTimed(cfg.Wait, cfg.Period, duration),
		entity: e,
		cfg:    cfg,
	}
	attrs := AttrRotation
	if cfg.FadeOut {
		attrs |= AttrOpacity
	}
	j.claim(e, attrs)
	j.begin = func() {
		j.r0 = e.Rotation()
		j.o0 = e.Opacity()
		j.opacity = j.o0
	}
	j.step = j.advance
	return j, nil
}

func (j *Jiggle) random() float64 {
	if j.cfg.Rand != nil {
		return j.cfg.Rand.Float64()
	}
	return rand.Float64()
}

func (j *Jiggle) advance() bool {
	j.entity.SetRotation(j.r0 + (j.random()-0.5)*j.cfg.Factor)
	if !j.cfg.FadeOut {
		return false
	}
	j.opacity -= j.cfg.FadeStep
	if j.opacity <= j.cfg.MinOpacity {
		j.opacity = j.cfg.MinOpacity
		j.entity.SetOpacity(j.opacity)
		return true
	}
	j.entity.SetOpacity(j.opacity)
	return false
}

// CleanUp restores the starting rotation, and the starting opacity for a
// fading jiggle.
func (j *Jiggle) CleanUp() {
	if j.started && !j.released {
		j.entity.SetRotation(j.r0)
		if j.cfg.FadeOut {
			j.entity.SetOpacity(j.o0)
		}
	}
	j.release()
}
