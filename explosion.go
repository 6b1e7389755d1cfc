package wezzle

import "time"

// ExplosionConfig configures an Explosion. Zero values take defaults:
// Period 10ms, Step 4, MinWidth 2, MaxWidth 64, Color white.
type ExplosionConfig struct {
	Wait     time.Duration `yaml:"wait"`
	Period   time.Duration `yaml:"period"`
	Step     int           `yaml:"step"`
	MinWidth int           `yaml:"minWidth"`
	MaxWidth int           `yaml:"maxWidth"`
	Color    Color         `yaml:"color"`
}

// Explosion is a square overlay that bursts out from a point to MaxWidth and
// collapses back to MinWidth. The overlay node is created and added to the
// scene by NewExplosion and removed by the animation exactly once.
type Explosion struct {
	timed
	overlay *Node
	cfg     ExplosionConfig
	box     sizeBox
	width   int
	dir     int
}

// NewExplosion creates an explosion centered on (cx, cy).
func NewExplosion(layers Layers, layer Layer, cx, cy float64, cfg ExplosionConfig) (*Explosion, error) {
	cfg.Period = orDefault(cfg.Period, 10*time.Millisecond)
	if cfg.Step == 0 {
		cfg.Step = 4
	}
	if cfg.MinWidth == 0 {
		cfg.MinWidth = 2
	}
	if cfg.MaxWidth == 0 {
		cfg.MaxWidth = 64
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}
	switch {
	case cfg.Wait < 0 || cfg.Period < 0 || cfg.Step < 0:
		return nil, invalidf("explosion: negative timing or step")
	case cfg.MinWidth < 0 || cfg.MaxWidth <= cfg.MinWidth:
		return nil, invalidf("explosion: width range [%d, %d] is empty", cfg.MinWidth, cfg.MaxWidth)
	}

	overlay := NewRect("explosion", cfg.MinWidth, cfg.MinWidth, cfg.Color)
	overlay.SetPosition(cx-float64(cfg.MinWidth)/2, cy-float64(cfg.MinWidth)/2)
	overlay.SetVisible(false)

	x := &Explosion{
		timed:   newTimed(cfg.Wait, cfg.Period, 0),
		overlay: overlay,
		cfg:     cfg,
		box:     recordBox(overlay),
		width:   cfg.MinWidth,
		dir:     1,
	}
	x.claim(overlay, AttrPosition|AttrSize|AttrVisibility)
	x.adopt(layers, layer, overlay)
	x.begin = func() {
		if x.wait == 0 {
			x.enterEffect()
		}
	}
	x.enter = func() {
		overlay.SetVisible(true)
	}
	x.step = x.advance
	return x, nil
}

func (x *Explosion) advance() bool {
	x.width += x.dir * x.cfg.Step
	done := false
	if x.dir > 0 && x.width >= x.cfg.MaxWidth {
		x.width = x.cfg.MaxWidth
		x.dir = -1
	} else if x.dir < 0 && x.width <= x.cfg.MinWidth {
		x.width = x.cfg.MinWidth
		done = true
	}
	x.box.resize(x.overlay, x.width)
	return done
}

// Overlay returns the node the explosion draws with.
func (x *Explosion) Overlay() *Node {
	return x.overlay
}
