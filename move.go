package wezzle

import (
	"math"
	"time"
)

// DefaultMovePeriod is the step length used when MoveConfig.Period is zero.
const DefaultMovePeriod = 10 * time.Millisecond

// MoveConfig configures a Move. Theta is in degrees, counter-clockwise from
// the positive X axis; Speed is in pixels per second, Gravity in pixels per
// second squared (pulling toward negative Y) and Omega in radians per second.
//
// Bounds are optional. With Finish set to FinishFirst motion ends as soon as
// any bound is reached; with FinishAll each bounded axis stops at its own
// bound and motion ends once every bounded axis has stopped. After motion
// ends the animation keeps running, without moving, until Duration has
// elapsed. Without any bounds, Duration is required and ends the motion.
type MoveConfig struct {
	Wait     time.Duration `yaml:"wait"`
	Duration time.Duration `yaml:"duration"`
	Period   time.Duration `yaml:"period"`
	Theta    float64       `yaml:"theta"`
	Speed    float64       `yaml:"speed"`
	Gravity  float64       `yaml:"gravity"`
	Omega    float64       `yaml:"omega"`

	MinX *float64 `yaml:"minX"`
	MaxX *float64 `yaml:"maxX"`
	MinY *float64 `yaml:"minY"`
	MaxY *float64 `yaml:"maxY"`

	Finish FinishRule `yaml:"finish"`
}

// Bound is a convenience for filling MoveConfig bounds.
func Bound(v float64) *float64 { return &v }

// Move is projectile motion evaluated in closed form:
//
//	x(t) = x0 + v·cos(θ)·t
//	y(t) = y0 + v·sin(θ)·t − ½·g·t²
//	r(t) = r0 + ω·t
type Move struct {
	timed
	entity Entity
	cfg    MoveConfig

	vx, vy float64
	x0, y0 float64
	r0     float64
	steps  int

	xStopped, yStopped bool
	moving             bool
}

// NewMove creates a move on e. The start position is taken when the
// animation starts.
func NewMove(e Entity, cfg MoveConfig) (*Move, error) {
	cfg.Period = orDefault(cfg.Period, DefaultMovePeriod)
	bounded := cfg.MinX != nil || cfg.MaxX != nil || cfg.MinY != nil || cfg.MaxY != nil
	switch {
	case cfg.Wait < 0 || cfg.Duration < 0 || cfg.Period < 0:
		return nil, invalidf("move: negative timing (wait %v, duration %v, period %v)", cfg.Wait, cfg.Duration, cfg.Period)
	case !bounded && cfg.Duration == 0:
		return nil, invalidf("move: unbounded move needs a positive duration")
	case cfg.MinX != nil && cfg.MaxX != nil && *cfg.MinX > *cfg.MaxX:
		return nil, invalidf("move: minX %v above maxX %v", *cfg.MinX, *cfg.MaxX)
	case cfg.MinY != nil && cfg.MaxY != nil && *cfg.MinY > *cfg.MaxY:
		return nil, invalidf("move: minY %v above maxY %v", *cfg.MinY, *cfg.MaxY)
	case cfg.Finish > FinishAll:
		return nil, invalidf("move: unknown finish rule %d", cfg.Finish)
	}

	rad := cfg.Theta * math.Pi / 180
	m := &Move{
		timed:  newTimed(cfg.Wait, cfg.Period, 0),
		entity: e,
		cfg:    cfg,
		vx:     cfg.Speed * math.Cos(rad),
		vy:     cfg.Speed * math.Sin(rad),
		moving: true,
	}
	attrs := AttrPosition
	if cfg.Omega != 0 {
		attrs |= AttrRotation
	}
	m.claim(e, attrs)
	m.begin = func() {
		m.x0, m.y0, m.r0 = e.X(), e.Y(), e.Rotation()
	}
	m.step = m.advance
	return m, nil
}

func (m *Move) advance() bool {
	m.steps++
	t := (time.Duration(m.steps) * m.cfg.Period).Seconds()
	if m.moving {
		m.moveTo(t)
	}
	return !m.moving && time.Duration(m.steps)*m.cfg.Period >= m.cfg.Duration
}

func (m *Move) moveTo(t float64) {
	cfg := &m.cfg
	if !m.xStopped {
		x := m.x0 + m.vx*t
		x, m.xStopped = clip(x, cfg.MinX, cfg.MaxX)
		m.entity.SetX(x)
	}
	if !m.yStopped {
		y := m.y0 + m.vy*t - 0.5*cfg.Gravity*t*t
		y, m.yStopped = clip(y, cfg.MinY, cfg.MaxY)
		m.entity.SetY(y)
	}
	if cfg.Omega != 0 {
		m.entity.SetRotation(m.r0 + cfg.Omega*t)
	}

	xBounded := cfg.MinX != nil || cfg.MaxX != nil
	yBounded := cfg.MinY != nil || cfg.MaxY != nil
	switch {
	case !xBounded && !yBounded:
		m.moving = time.Duration(m.steps)*cfg.Period < cfg.Duration
	case cfg.Finish == FinishFirst:
		m.moving = !m.xStopped && !m.yStopped
	default:
		m.moving = (xBounded && !m.xStopped) || (yBounded && !m.yStopped)
	}
}

// clip clamps v to the optional bounds and reports whether a bound was hit.
func clip(v float64, lo, hi *float64) (float64, bool) {
	if lo != nil && v <= *lo {
		return *lo, true
	}
	if hi != nil && v >= *hi {
		return *hi, true
	}
	return v, false
}

// Moving reports whether the entity is still in motion. After motion ends a
// move may keep running until its Duration elapses.
func (m *Move) Moving() bool {
	return m.moving && !m.finished
}

// CleanUp puts the entity back where the move started.
func (m *Move) CleanUp() {
	if m.started && !m.released {
		m.entity.SetX(m.x0)
		m.entity.SetY(m.y0)
		if m.cfg.Omega != 0 {
			m.entity.SetRotation(m.r0)
		}
	}
	m.release()
}
