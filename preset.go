package wezzle

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by the Presets lookups for a missing name.
var ErrUnknownPreset = errors.New("wezzle: unknown preset")

// Presets holds named animation configs loaded from YAML. Durations are
// written as Go duration strings ("500ms", "1.5s"), kinds and rules by name:
//
//	fades:
//	  appear: {kind: in, duration: 300ms}
//	moves:
//	  drop: {theta: 270, speed: 400, maxY: 480, finish: all}
type Presets struct {
	Fades      map[string]FadeConfig      `yaml:"fades"`
	Moves      map[string]MoveConfig      `yaml:"moves"`
	Zooms      map[string]ZoomConfig      `yaml:"zooms"`
	Scales     map[string]ScaleConfig     `yaml:"scales"`
	Pulses     map[string]PulseConfig     `yaml:"pulses"`
	Jiggles    map[string]JiggleConfig    `yaml:"jiggles"`
	Blinks     map[string]BlinkConfig     `yaml:"blinks"`
	Floats     map[string]FloatConfig     `yaml:"floats"`
	Explosions map[string]ExplosionConfig `yaml:"explosions"`
}

// LoadPresets reads, parses and validates a presets file.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets parses and validates presets from YAML.
func ParsePresets(data []byte) (*Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid presets: %w", err)
	}
	return &p, nil
}

// Validate checks every preset by building it against a throwaway entity,
// so a preset is valid exactly when its constructor accepts it. Errors wrap
// ErrInvalidConfig and name the offending preset.
func (p *Presets) Validate() error {
	probe := func() *Node { return NewRect("preset", 16, 16, ColorWhite) }
	checks := []error{
		validateAll("fade", p.Fades, func(c FadeConfig) error { _, err := NewFade(probe(), c); return err }),
		validateAll("move", p.Moves, func(c MoveConfig) error { _, err := NewMove(probe(), c); return err }),
		validateAll("zoom", p.Zooms, func(c ZoomConfig) error { _, err := NewZoom(probe(), c); return err }),
		validateAll("scale", p.Scales, func(c ScaleConfig) error { _, err := NewGrow(probe(), c); return err }),
		validateAll("pulse", p.Pulses, func(c PulseConfig) error { _, err := NewPulse(probe(), c); return err }),
		validateAll("jiggle", p.Jiggles, func(c JiggleConfig) error { _, err := NewJiggle(probe(), c); return err }),
		validateAll("blink", p.Blinks, func(c BlinkConfig) error { _, err := NewBlink(probe(), c); return err }),
		validateAll("float", p.Floats, func(c FloatConfig) error { _, err := NewFloat(probe(), c); return err }),
		validateAll("explosion", p.Explosions, func(c ExplosionConfig) error {
			_, err := NewExplosion(discardLayers{}, LayerEffect, 0, 0, c)
			return err
		}),
	}
	return errors.Join(checks...)
}

func validateAll[T any](kind string, m map[string]T, check func(T) error) error {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if err := check(m[name]); err != nil {
			return fmt.Errorf("%s preset %q: %w", kind, name, err)
		}
	}
	return nil
}

func lookup[T any](kind string, m map[string]T, name string) (T, error) {
	c, ok := m[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s preset %q: %w", kind, name, ErrUnknownPreset)
	}
	return c, nil
}

// Fade returns the named fade config.
func (p *Presets) Fade(name string) (FadeConfig, error) { return lookup("fade", p.Fades, name) }

// Move returns the named move config.
func (p *Presets) Move(name string) (MoveConfig, error) { return lookup("move", p.Moves, name) }

// Zoom returns the named zoom config.
func (p *Presets) Zoom(name string) (ZoomConfig, error) { return lookup("zoom", p.Zooms, name) }

// Scale returns the named grow/shrink config.
func (p *Presets) Scale(name string) (ScaleConfig, error) { return lookup("scale", p.Scales, name) }

// Pulse returns the named pulse config.
func (p *Presets) Pulse(name string) (PulseConfig, error) { return lookup("pulse", p.Pulses, name) }

// Jiggle returns the named jiggle config.
func (p *Presets) Jiggle(name string) (JiggleConfig, error) { return lookup("jiggle", p.Jiggles, name) }

// Blink returns the named blink config.
func (p *Presets) Blink(name string) (BlinkConfig, error) { return lookup("blink", p.Blinks, name) }

// Float returns the named float config.
func (p *Presets) Float(name string) (FloatConfig, error) { return lookup("float", p.Floats, name) }

// Explosion returns the named explosion config.
func (p *Presets) Explosion(name string) (ExplosionConfig, error) {
	return lookup("explosion", p.Explosions, name)
}

// discardLayers accepts transient nodes and drops them.
type discardLayers struct{}

func (discardLayers) Add(*Node, Layer)         {}
func (discardLayers) Remove(*Node, Layer) bool { return true }

// Kind and rule names as written in preset files.

var (
	fadeKindNames   = []string{"in", "out", "loopIn", "loopOut"}
	zoomKindNames   = []string{"in", "out", "loopIn", "loopOut"}
	blinkKindNames  = []string{"fixed", "continuous"}
	finishRuleNames = []string{"first", "all"}
	runRuleNames    = []string{"simultaneous", "sequence"}
)

func enumString(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", v)
}

func parseEnum(what string, names []string, text []byte) (uint8, error) {
	i := slices.Index(names, string(text))
	if i < 0 {
		return 0, fmt.Errorf("%s %q: want one of %v: %w", what, text, names, ErrInvalidConfig)
	}
	return uint8(i), nil
}

func (k FadeKind) String() string { return enumString(fadeKindNames, uint8(k)) }

// UnmarshalText parses a fade kind name.
func (k *FadeKind) UnmarshalText(text []byte) error {
	v, err := parseEnum("fade kind", fadeKindNames, text)
	*k = FadeKind(v)
	return err
}

func (k ZoomKind) String() string { return enumString(zoomKindNames, uint8(k)) }

// UnmarshalText parses a zoom kind name.
func (k *ZoomKind) UnmarshalText(text []byte) error {
	v, err := parseEnum("zoom kind", zoomKindNames, text)
	*k = ZoomKind(v)
	return err
}

func (k BlinkKind) String() string { return enumString(blinkKindNames, uint8(k)) }

// UnmarshalText parses a blink kind name.
func (k *BlinkKind) UnmarshalText(text []byte) error {
	v, err := parseEnum("blink kind", blinkKindNames, text)
	*k = BlinkKind(v)
	return err
}

func (r FinishRule) String() string { return enumString(finishRuleNames, uint8(r)) }

// UnmarshalText parses a finish rule name.
func (r *FinishRule) UnmarshalText(text []byte) error {
	v, err := parseEnum("finish rule", finishRuleNames, text)
	*r = FinishRule(v)
	return err
}

func (r RunRule) String() string { return enumString(runRuleNames, uint8(r)) }

// UnmarshalText parses a run rule name.
func (r *RunRule) UnmarshalText(text []byte) error {
	v, err := parseEnum("run rule", runRuleNames, text)
	*r = RunRule(v)
	return err
}
