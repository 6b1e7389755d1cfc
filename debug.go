package wezzle

import (
	"log"
	"os"
	"time"
)

// logger writes warnings and debug stats to stderr.
var logger = log.New(os.Stderr, "[wezzle] ", 0)

// frameStats holds per-frame timing and animation metrics.
// Only populated when Scene.debug is true.
type frameStats struct {
	animateTime time.Duration
	drawTime    time.Duration
	live        int
	evicted     int
	drawn       int
}

// debugLog prints the frame's stats.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	f := s.frame
	logger.Printf("animate: %v | draw: %v | total: %v", f.animateTime, f.drawTime, f.animateTime+f.drawTime)
	logger.Printf("animations: %d live, %d evicted | nodes: %d drawn of %d", f.live, f.evicted, f.drawn, s.Len())
}

// debugCheckLeases warns when a node is disposed while animations still hold
// leases on it.
func debugCheckLeases(n *Node) {
	if held := n.Leased(); held != 0 {
		logger.Printf("warning: disposing node %q with leased attributes %s", n.Name, held)
	}
}

// debugMaxLayerSize is the node count above which a layer is reported.
const debugMaxLayerSize = 1000

func debugCheckLayerSize(s *Scene, layer Layer) {
	if n := len(s.layers[layer]); n > debugMaxLayerSize {
		logger.Printf("warning: %s layer has %d nodes (threshold %d)", layer, n, debugMaxLayerSize)
	}
}
