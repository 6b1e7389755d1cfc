package wezzle

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// statsInterval is how often the stats widget text is refreshed.
const statsInterval = 500 * time.Millisecond

type statsWidget struct {
	node  *Node
	since time.Duration
}

// ShowStats adds a text node to the UI layer that displays the current FPS,
// TPS and live animation count, refreshed about twice a second. Calling it
// again returns the existing node.
func (s *Scene) ShowStats() *Node {
	if s.stats != nil {
		return s.stats.node
	}
	n := NewText("stats", statsText(0, 0, 0))
	n.SetPosition(4, 4)
	s.Add(n, LayerUI)
	s.stats = &statsWidget{node: n}
	return n
}

func (w *statsWidget) update(s *Scene, delta time.Duration) {
	w.since += delta
	if w.since < statsInterval {
		return
	}
	w.since = 0
	w.node.Text = statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), s.animations.Len())
	w.node.width, w.node.height = measureLabel(w.node.Text)
}

func statsText(fps, tps float64, live int) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nAnims: %d", fps, tps, live)
}
