package wezzle

// Layers is the scene collaborator for animations that own transient
// entities. Remove reports false when the node was not in the layer.
type Layers interface {
	Add(n *Node, layer Layer)
	Remove(n *Node, layer Layer) bool
}

// adopt adds n to the scene now and schedules its removal for the single
// teardown that runs on finish, cancellation or cleanup.
func (a *animation) adopt(layers Layers, layer Layer, n *Node) {
	if layers == nil {
		panic("wezzle: transient entity needs a scene")
	}
	layers.Add(n, layer)
	a.own(func() {
		if !layers.Remove(n, layer) {
			logger.Printf("warning: transient node %q was already removed from the %s layer", n.Name, layer)
		}
	})
}
