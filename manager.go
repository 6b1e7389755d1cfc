package wezzle

import (
	"errors"
	"fmt"
	"time"
)

// ErrAlreadyManaged is returned when an animation instance is added to a
// Manager that already holds it.
var ErrAlreadyManaged = errors.New("wezzle: animation already managed")

// Manager owns the live animations and drives them once per tick. Insertion
// order is update order. Manager is not safe for concurrent use; call it
// from the game loop only.
type Manager struct {
	live      []Animation
	animating bool
	paused    bool

	// per-Animate counters, read by the debug stats
	evicted int
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{live: make([]Animation, 0, 64)}
}

// Add starts a and appends it to the live set. If a cannot start (for
// example because another animation holds one of its attribute leases) it is
// not added and the error is returned.
func (m *Manager) Add(a Animation) error {
	if a == nil {
		panic("wezzle: cannot add nil animation")
	}
	if m.Contains(a) {
		return fmt.Errorf("add: %w", ErrAlreadyManaged)
	}
	if err := a.Start(); err != nil {
		if globalDebug {
			logger.Printf("warning: %v", err)
		}
		return fmt.Errorf("add: %w", err)
	}
	m.live = append(m.live, a)
	return nil
}

// AddAll adds each animation in order, stopping at the first error.
func (m *Manager) AddAll(as ...Animation) error {
	for _, a := range as {
		if err := m.Add(a); err != nil {
			return err
		}
	}
	return nil
}

// Remove drops a without finishing it: no finish listeners fire and nothing
// is restored. Callers that need the entity back at rest call a.CleanUp().
// Remove reports false if a was not managed.
func (m *Manager) Remove(a Animation) bool {
	for i, c := range m.live {
		if c != a {
			continue
		}
		if m.animating {
			m.live[i] = nil
		} else {
			copy(m.live[i:], m.live[i+1:])
			m.live[len(m.live)-1] = nil
			m.live = m.live[:len(m.live)-1]
		}
		return true
	}
	return false
}

// Animate advances every live animation by delta, in insertion order.
// Animations that are finished after their frame are finished (listeners
// fire) and evicted in the same call. Animations added by listeners during
// Animate first advance on the next call.
func (m *Manager) Animate(delta time.Duration) {
	if m.paused || m.animating {
		return
	}
	m.animating = true
	m.evicted = 0
	defer func() {
		m.animating = false
		m.compact()
	}()
	n := len(m.live)
	for i := 0; i < n && i < len(m.live); i++ {
		a := m.live[i]
		if a == nil {
			continue
		}
		if !a.Finished() {
			a.NextFrame(delta)
		}
		if a.Finished() {
			m.live[i] = nil
			m.evicted++
			a.Finish()
		}
	}
}

// compact removes the nil slots left by eviction and removal.
func (m *Manager) compact() {
	j := 0
	for _, a := range m.live {
		if a != nil {
			m.live[j] = a
			j++
		}
	}
	clear(m.live[j:])
	m.live = m.live[:j]
}

// Contains reports whether a is in the live set.
func (m *Manager) Contains(a Animation) bool {
	for _, c := range m.live {
		if c == a {
			return true
		}
	}
	return false
}

// Len returns the number of live animations.
func (m *Manager) Len() int {
	n := 0
	for _, a := range m.live {
		if a != nil {
			n++
		}
	}
	return n
}

// SetPaused stops or resumes Animate. Paused animations keep their state.
func (m *Manager) SetPaused(paused bool) {
	m.paused = paused
}

// Paused reports whether the manager is paused.
func (m *Manager) Paused() bool {
	return m.paused
}

// Clear cleans up every live animation and empties the manager.
func (m *Manager) Clear() {
	live := m.live
	m.live = make([]Animation, 0, cap(live))
	for _, a := range live {
		if a != nil {
			a.CleanUp()
		}
	}
}
