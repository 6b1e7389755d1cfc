package wezzle

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Entity is the mutable visual object animations act on. Animations hold a
// non-owning reference; the scene decides how long an entity lives.
type Entity interface {
	X() float64
	SetX(x float64)
	Y() float64
	SetY(y float64)
	Width() int
	SetWidth(w int)
	Height() int
	SetHeight(h int)
	// Opacity is in [0, 100]. Implementations clamp out-of-range input.
	Opacity() int
	SetOpacity(o int)
	// Rotation is in radians, about the entity's center.
	Rotation() float64
	SetRotation(r float64)
	Visible() bool
	SetVisible(v bool)
}

// Leaser is implemented by entities that track which owner is allowed to
// mutate each attribute. Animations acquire leases when they start and
// release them when they finish or are cleaned up.
type Leaser interface {
	Acquire(owner any, attrs Attr) error
	Release(owner any)
}

// ErrAttributeLeased is returned when an attribute is already leased by a
// different owner.
var ErrAttributeLeased = errors.New("wezzle: attribute already leased")

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeRect   NodeType = iota // solid color rectangle
	NodeTypeSprite                 // renders Image scaled to Width x Height
	NodeTypeText                   // renders Text with the default label face
)

// numAttrs is the number of distinct Attr bits.
const numAttrs = 5

// nodeIDCounter is a plain counter (not atomic, wezzle is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene entity. A single flat struct is used for all node types
// to avoid interface dispatch on the draw path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Appearance
	Color Color
	Image *ebiten.Image
	Text  string

	// Metadata
	UserData any

	x, y          float64
	width, height int
	opacity       int
	rotation      float64
	visible       bool

	leases [numAttrs]any

	// Scene membership, maintained by Scene.Add/Remove.
	scene *Scene
	layer Layer

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Color = ColorWhite
	n.opacity = 100
	n.visible = true
}

// NewRect creates a solid color rectangle node.
func NewRect(name string, w, h int, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeRect}
	nodeDefaults(n)
	n.Color = c
	n.width, n.height = w, h
	return n
}

// NewSprite creates a sprite node that draws img scaled to w x h.
func NewSprite(name string, img *ebiten.Image, w, h int) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img}
	nodeDefaults(n)
	n.width, n.height = w, h
	return n
}

// NewText creates a text node sized to its content in the default label face.
func NewText(name string, content string) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Text: content}
	nodeDefaults(n)
	n.width, n.height = measureLabel(content)
	return n
}

// X returns the left edge.
func (n *Node) X() float64 { return n.x }

// SetX sets the left edge.
func (n *Node) SetX(x float64) { n.x = x }

// Y returns the top edge.
func (n *Node) Y() float64 { return n.y }

// SetY sets the top edge.
func (n *Node) SetY(y float64) { n.y = y }

// SetPosition sets X and Y together.
func (n *Node) SetPosition(x, y float64) {
	n.x, n.y = x, y
}

// Width returns the width in pixels.
func (n *Node) Width() int { return n.width }

// SetWidth sets the width. Negative values are stored as 0.
func (n *Node) SetWidth(w int) { n.width = max(w, 0) }

// Height returns the height in pixels.
func (n *Node) Height() int { return n.height }

// SetHeight sets the height. Negative values are stored as 0.
func (n *Node) SetHeight(h int) { n.height = max(h, 0) }

// SetSize sets width and height together.
func (n *Node) SetSize(w, h int) {
	n.SetWidth(w)
	n.SetHeight(h)
}

// Opacity returns the opacity in [0, 100].
func (n *Node) Opacity() int { return n.opacity }

// Rotation returns the rotation in radians.
func (n *Node) Rotation() float64 { return n.rotation }

// SetRotation sets the rotation in radians.
func (n *Node) SetRotation(r float64) { n.rotation = r }

// Visible reports whether the node is drawn.
func (n *Node) Visible() bool { return n.visible }

// SetVisible shows or hides the node.
func (n *Node) SetVisible(v bool) { n.visible = v }

// SetOpacity sets the opacity, clamped to [0, 100].
func (n *Node) SetOpacity(o int) {
	n.opacity = min(max(o, 0), 100)
}

// Bounds returns the node's axis-aligned rectangle, ignoring rotation.
func (n *Node) Bounds() Rect {
	return Rect{X: n.x, Y: n.y, Width: float64(n.width), Height: float64(n.height)}
}

// Center returns the center point of the node's bounds.
func (n *Node) Center() (float64, float64) {
	return n.x + float64(n.width)/2, n.y + float64(n.height)/2
}

// --- Leases ---

// Acquire leases attrs to owner. Re-acquiring attributes the owner already
// holds is a no-op. If any requested attribute is held by a different owner,
// nothing is acquired and an error wrapping ErrAttributeLeased is returned.
func (n *Node) Acquire(owner any, attrs Attr) error {
	if owner == nil {
		panic("wezzle: lease owner must not be nil")
	}
	for i := 0; i < numAttrs; i++ {
		if attrs&(1<<i) == 0 {
			continue
		}
		if holder := n.leases[i]; holder != nil && holder != owner {
			return fmt.Errorf("node %q %s: %w", n.Name, Attr(1<<i), ErrAttributeLeased)
		}
	}
	for i := 0; i < numAttrs; i++ {
		if attrs&(1<<i) != 0 {
			n.leases[i] = owner
		}
	}
	return nil
}

// Release frees every attribute held by owner.
func (n *Node) Release(owner any) {
	for i := range n.leases {
		if n.leases[i] == owner {
			n.leases[i] = nil
		}
	}
}

// Leased returns the attributes currently held by any owner.
func (n *Node) Leased() Attr {
	var a Attr
	for i, holder := range n.leases {
		if holder != nil {
			a |= 1 << i
		}
	}
	return a
}

// --- Disposal ---

// Dispose removes this node from its scene, drops its leases and marks it as
// disposed. Animations still referencing a disposed node stop writing to it.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if globalDebug {
		debugCheckLeases(n)
	}
	if n.scene != nil {
		n.scene.Remove(n, n.layer)
	}
	n.disposed = true
	n.ID = 0
	n.leases = [numAttrs]any{}
	n.Image = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// Scene returns the scene the node is attached to, or nil.
func (n *Node) Scene() *Scene {
	return n.scene
}
