package wezzle

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a straight-alpha color.NRGBA.
func (c Color) toRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Layer selects one of the scene's fixed draw layers. Layers are drawn in
// ascending order; within a layer nodes draw in insertion order.
type Layer uint8

const (
	LayerBackground Layer = iota // board background and frame
	LayerTile                    // tiles on the board
	LayerEffect                  // transient effects (explosions, floating labels)
	LayerUI                      // score, timers, menus
	numLayers
)

// String returns the layer name used in log output.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerTile:
		return "tile"
	case LayerEffect:
		return "effect"
	case LayerUI:
		return "ui"
	default:
		return "unknown"
	}
}

// Attr is a bitmask of entity attributes an animation may mutate.
// Values can be combined with bitwise OR (e.g. AttrPosition | AttrOpacity).
type Attr uint8

const (
	AttrPosition   Attr = 1 << iota // X, Y
	AttrSize                        // Width, Height
	AttrOpacity                     // Opacity
	AttrRotation                    // Rotation
	AttrVisibility                  // Visible
)

// String returns a "|"-joined list of attribute names.
func (a Attr) String() string {
	if a == 0 {
		return "none"
	}
	names := [...]string{"position", "size", "opacity", "rotation", "visibility"}
	s := ""
	for i, name := range names {
		if a&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	return s
}
