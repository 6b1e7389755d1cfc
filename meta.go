package wezzle

import (
	"fmt"
	"time"
)

// RunRule decides which children of a Meta are active.
type RunRule uint8

const (
	RunSimultaneous RunRule = iota // every child advances each tick
	RunSequence                    // one child at a time, in order
)

// MetaConfig configures a Meta.
type MetaConfig struct {
	Finish FinishRule `yaml:"finish"`
	Run    RunRule    `yaml:"run"`
}

// Meta composes child animations into one. A child that has finished is
// never advanced again; its own finish listeners fire in the tick it
// finishes. When the composite finishes before some children do (FinishFirst)
// the remaining children are cancelled: their leases and transient entities
// are released but their finish listeners do not fire.
type Meta struct {
	animation
	cfg      MetaConfig
	children []Animation
	current  int
}

// NewMeta creates a composite of children. Children must not be started
// yet; the Meta starts them.
func NewMeta(cfg MetaConfig, children ...Animation) (*Meta, error) {
	switch {
	case cfg.Finish > FinishAll:
		return nil, invalidf("meta: unknown finish rule %d", cfg.Finish)
	case cfg.Run > RunSequence:
		return nil, invalidf("meta: unknown run rule %d", cfg.Run)
	case len(children) == 0:
		return nil, invalidf("meta: no children")
	}
	for i, c := range children {
		if c == nil {
			return nil, invalidf("meta: child %d is nil", i)
		}
	}
	return &Meta{
		animation: newAnimation(),
		cfg:       cfg,
		children:  children,
	}, nil
}

// Sequence is shorthand for a RunSequence/FinishAll Meta.
func Sequence(children ...Animation) (*Meta, error) {
	return NewMeta(MetaConfig{Finish: FinishAll, Run: RunSequence}, children...)
}

// Parallel is shorthand for a RunSimultaneous Meta with the given finish rule.
func Parallel(finish FinishRule, children ...Animation) (*Meta, error) {
	return NewMeta(MetaConfig{Finish: finish, Run: RunSimultaneous}, children...)
}

// Start starts the active children, then the composite itself. If a child
// cannot start, children started so far are cancelled and the error is
// returned.
func (m *Meta) Start() error {
	if m.started {
		return nil
	}
	active := m.children
	if m.cfg.Run == RunSequence {
		active = m.children[:1]
	}
	for i, c := range active {
		if err := c.Start(); err != nil {
			for _, prev := range active[:i] {
				cancelAnimation(prev)
			}
			return fmt.Errorf("meta child %d: %w", i, err)
		}
	}
	return m.animation.Start()
}

func (m *Meta) NextFrame(delta time.Duration) {
	if m.finished || !m.started {
		return
	}
	var done bool
	if m.cfg.Run == RunSequence {
		done = m.nextSequence(delta)
	} else {
		done = m.nextSimultaneous(delta)
	}
	if !done {
		return
	}
	for _, c := range m.children {
		if c.Started() && !c.Finished() {
			cancelAnimation(c)
		}
	}
	m.finished = true
}

func (m *Meta) nextSimultaneous(delta time.Duration) bool {
	finished := 0
	for _, c := range m.children {
		if !c.Finished() {
			c.NextFrame(delta)
		}
		if c.Finished() {
			c.Finish()
			finished++
		}
	}
	if m.cfg.Finish == FinishFirst {
		return finished > 0
	}
	return finished == len(m.children)
}

func (m *Meta) nextSequence(delta time.Duration) bool {
	c := m.children[m.current]
	if !c.Finished() {
		c.NextFrame(delta)
	}
	if !c.Finished() {
		return false
	}
	c.Finish()
	if m.cfg.Finish == FinishFirst {
		return true
	}
	m.current++
	if m.current == len(m.children) {
		return true
	}
	if err := m.children[m.current].Start(); err != nil {
		panic(fmt.Sprintf("wezzle: meta sequence child %d: %v", m.current, err))
	}
	return false
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (m *Meta) Children() []Animation {
	return m.children
}

// SetVisible sets the composite's visibility and every child's.
func (m *Meta) SetVisible(v bool) {
	m.visible = v
	for _, c := range m.children {
		c.SetVisible(v)
	}
}

// CleanUp cleans up every child that has started, then releases the
// composite.
func (m *Meta) CleanUp() {
	for _, c := range m.children {
		if c.Started() {
			c.CleanUp()
		}
	}
	m.release()
}

func (m *Meta) cancel() {
	for _, c := range m.children {
		if c.Started() && !c.Finished() {
			cancelAnimation(c)
		}
	}
	m.animation.cancel()
}

// cancelAnimation stops a without firing its finish listeners. Animations
// from outside this package that do not support cancellation are cleaned up
// instead.
func cancelAnimation(a Animation) {
	if c, ok := a.(canceler); ok {
		c.cancel()
		return
	}
	a.CleanUp()
}
