package wezzle

import (
	"math"
	"time"
)

// ZoomKind selects the direction of a Zoom.
type ZoomKind uint8

const (
	ZoomIn      ZoomKind = iota // grow to MaxWidth, then done
	ZoomOut                     // shrink to MinWidth, then done
	ZoomLoopIn                  // grow, shrink, grow ... forever
	ZoomLoopOut                 // shrink, grow, shrink ... forever
)

const (
	// DefaultZoomPeriod is used when a size animation's Period is zero.
	DefaultZoomPeriod = 10 * time.Millisecond
	// DefaultZoomStep is used when a size animation's Step is zero.
	DefaultZoomStep = 2
)

// ZoomConfig configures a Zoom. Step is the width change per period in
// pixels; height follows with the entity's aspect ratio.
type ZoomConfig struct {
	Kind     ZoomKind      `yaml:"kind"`
	Wait     time.Duration `yaml:"wait"`
	Period   time.Duration `yaml:"period"`
	Step     int           `yaml:"step"`
	MinWidth int           `yaml:"minWidth"`
	MaxWidth int           `yaml:"maxWidth"`
}

// Zoom scales an entity about its center at a constant rate.
type Zoom struct {
	timed
	entity Entity
	cfg    ZoomConfig
	box    sizeBox

	width int
	dir   int
}

// NewZoom creates a zoom on e.
func NewZoom(e Entity, cfg ZoomConfig) (*Zoom, error) {
	cfg.Period = orDefault(cfg.Period, DefaultZoomPeriod)
	if cfg.Step == 0 {
		cfg.Step = DefaultZoomStep
	}
	switch {
	case cfg.Kind > ZoomLoopOut:
		return nil, invalidf("zoom: unknown kind %d", cfg.Kind)
	case cfg.Wait < 0 || cfg.Period < 0 || cfg.Step < 0:
		return nil, invalidf("zoom: negative timing or step")
	case cfg.MinWidth < 0 || cfg.MaxWidth <= cfg.MinWidth:
		return nil, invalidf("zoom: width range [%d, %d] is empty", cfg.MinWidth, cfg.MaxWidth)
	}

	z := &Zoom{
		timed:  newTimed(cfg.Wait, cfg.Period, 0),
		entity: e,
		cfg:    cfg,
	}
	z.claim(e, AttrPosition|AttrSize)
	z.begin = func() {
		z.box = recordBox(e)
		z.width = e.Width()
		z.dir = 1
		if cfg.Kind == ZoomOut || cfg.Kind == ZoomLoopOut {
			z.dir = -1
		}
	}
	z.step = z.advance
	return z, nil
}

func (z *Zoom) advance() bool {
	z.width += z.dir * z.cfg.Step
	done := false
	loop := z.cfg.Kind == ZoomLoopIn || z.cfg.Kind == ZoomLoopOut
	switch {
	case z.dir > 0 && z.width >= z.cfg.MaxWidth:
		z.width = z.cfg.MaxWidth
		done = !loop
		z.dir = -1
	case z.dir < 0 && z.width <= z.cfg.MinWidth:
		z.width = z.cfg.MinWidth
		done = !loop
		z.dir = 1
	}
	z.box.resize(z.entity, z.width)
	return done
}

// CleanUp restores the size and position the entity had when the zoom
// started.
func (z *Zoom) CleanUp() {
	if z.started && !z.released {
		z.box.restore(z.entity)
	}
	z.release()
}

// sizeBox is the rest geometry of an entity under a size animation.
type sizeBox struct {
	x, y   float64
	w, h   int
	cx, cy float64
	ratio  float64 // height / width
}

func recordBox(e Entity) sizeBox {
	b := sizeBox{x: e.X(), y: e.Y(), w: e.Width(), h: e.Height(), ratio: 1}
	if b.w > 0 {
		b.ratio = float64(b.h) / float64(b.w)
	}
	b.cx = b.x + float64(b.w)/2
	b.cy = b.y + float64(b.h)/2
	return b
}

// resize sets the entity to width w, keeping the aspect ratio and the
// recorded center.
func (b sizeBox) resize(e Entity, w int) {
	h := int(math.Round(float64(w) * b.ratio))
	e.SetWidth(w)
	e.SetHeight(h)
	e.SetX(b.cx - float64(w)/2)
	e.SetY(b.cy - float64(h)/2)
}

// resizeBy grows both dimensions by d pixels around the recorded center.
func (b sizeBox) resizeBy(e Entity, d int) {
	w, h := max(b.w+d, 0), max(b.h+d, 0)
	e.SetWidth(w)
	e.SetHeight(h)
	e.SetX(b.cx - float64(w)/2)
	e.SetY(b.cy - float64(h)/2)
}

func (b sizeBox) restore(e Entity) {
	e.SetWidth(b.w)
	e.SetHeight(b.h)
	e.SetX(b.x)
	e.SetY(b.y)
}
