package wezzle

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// whitePixel is a 1x1 white image stretched to draw solid color rectangles.
var whitePixel *ebiten.Image

// labelFace is the face used for text nodes.
var labelFace = text.NewGoXFace(basicfont.Face7x13)

func solidImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// measureLabel returns the pixel size of content in the label face.
func measureLabel(content string) (int, int) {
	lines := strings.Split(content, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l)*basicfont.Face7x13.Advance)
	}
	return w, len(lines) * basicfont.Face7x13.Height
}

// Draw renders every visible node, layer by layer, onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	drawn := 0
	for _, nodes := range s.layers {
		for _, n := range nodes {
			if drawNode(screen, n) {
				drawn++
			}
		}
	}

	if s.debug {
		s.frame.drawTime = time.Since(t0)
		s.frame.drawn = drawn
		s.debugLog()
	}
	s.flushScreenshots(screen)
}

// drawNode draws n centered on its bounds and rotated about its center.
// Reports whether anything was drawn.
func drawNode(dst *ebiten.Image, n *Node) bool {
	if !n.visible || n.opacity == 0 || n.Color.A == 0 {
		return false
	}
	w, h := float64(n.width), float64(n.height)
	if w == 0 || h == 0 {
		return false
	}
	cx, cy := n.Center()

	var geo ebiten.GeoM
	var cs ebiten.ColorScale
	a := float32(n.Color.A)
	cs.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
	cs.ScaleAlpha(float32(n.opacity) / 100)

	switch n.Type {
	case NodeTypeText:
		geo.Translate(-w/2, -h/2)
		geo.Rotate(n.rotation)
		geo.Translate(cx, cy)
		op := &text.DrawOptions{}
		op.GeoM = geo
		op.ColorScale = cs
		op.LineSpacing = float64(basicfont.Face7x13.Height)
		text.Draw(dst, n.Text, labelFace, op)
	default:
		img := n.Image
		if img == nil {
			img = solidImage()
		}
		b := img.Bounds()
		geo.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		geo.Translate(-w/2, -h/2)
		geo.Rotate(n.rotation)
		geo.Translate(cx, cy)
		dst.DrawImage(img, &ebiten.DrawImageOptions{GeoM: geo, ColorScale: cs})
	}
	return true
}
