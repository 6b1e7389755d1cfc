package wezzle

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultLayerCap = 64

// Scene is the top-level object that owns the layered node lists, the
// animation manager and render state.
type Scene struct {
	layers     [numLayers][]*Node
	animations *Manager
	debug      bool

	// ClearColor fills the screen before drawing. Zero alpha leaves the
	// screen untouched.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	runner     *ScriptRunner
	updateFunc func() error
	stats      *statsWidget
	frame      frameStats
}

// NewScene creates an empty scene with its own animation manager.
func NewScene() *Scene {
	s := &Scene{
		animations:    NewManager(),
		ScreenshotDir: "screenshots",
	}
	for i := range s.layers {
		s.layers[i] = make([]*Node, 0, defaultLayerCap)
	}
	return s
}

// Animations returns the scene's animation manager.
func (s *Scene) Animations() *Manager {
	return s.animations
}

// Add appends n to layer. If n is already in a scene it is removed from
// there first. Panics if n is nil or disposed, or the layer is unknown.
func (s *Scene) Add(n *Node, layer Layer) {
	if n == nil {
		panic("wezzle: cannot add nil node")
	}
	if n.disposed {
		panic("wezzle: cannot add disposed node " + n.Name)
	}
	if layer >= numLayers {
		panic("wezzle: unknown layer")
	}
	if n.scene != nil {
		n.scene.Remove(n, n.layer)
	}
	s.layers[layer] = append(s.layers[layer], n)
	n.scene = s
	n.layer = layer
	if s.debug {
		debugCheckLayerSize(s, layer)
	}
}

// Remove detaches n from layer. It reports false, and changes nothing, when
// n is not in that layer of this scene.
func (s *Scene) Remove(n *Node, layer Layer) bool {
	if n == nil || layer >= numLayers || n.scene != s || n.layer != layer {
		return false
	}
	nodes := s.layers[layer]
	for i, c := range nodes {
		if c == n {
			copy(nodes[i:], nodes[i+1:])
			nodes[len(nodes)-1] = nil
			s.layers[layer] = nodes[:len(nodes)-1]
			n.scene = nil
			return true
		}
	}
	return false
}

// Nodes returns the nodes in layer in draw order. The returned slice MUST NOT
// be mutated by the caller.
func (s *Scene) Nodes(layer Layer) []*Node {
	return s.layers[layer]
}

// Len returns the number of nodes across all layers.
func (s *Scene) Len() int {
	n := 0
	for _, l := range s.layers {
		n += len(l)
	}
	return n
}

// SetUpdateFunc sets a function called at the start of every Update, before
// animations advance. Returning an error ends Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one tick at the current ebiten TPS.
func (s *Scene) Update() error {
	return s.Advance(time.Second / time.Duration(ebiten.TPS()))
}

// Advance runs the update function and the scripted runner, then advances
// every animation by delta.
func (s *Scene) Advance(delta time.Duration) error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.runner != nil {
		s.runner.step(s)
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.animations.Animate(delta)
	if s.debug {
		s.frame.animateTime = time.Since(t0)
		s.frame.live = s.animations.Len()
		s.frame.evicted = s.animations.evicted
	}
	if s.stats != nil {
		s.stats.update(s, delta)
	}
	return nil
}

// SetDebugMode enables or disables debug mode. When enabled, lease
// conflicts and oversized layers are reported and per-frame animation stats
// are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// and manager operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
