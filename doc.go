// Package wezzle is the animation core of a tile-matching puzzle game,
// rendered with [Ebitengine].
//
// Game objects are [Node] values (rectangles, sprites and text labels) held
// in the layers of a [Scene]. Visual effects are [Animation] values: small
// time-driven state machines that mutate a node's position, size, opacity,
// rotation or visibility each tick. The scene's [Manager] advances every live
// animation once per frame and evicts the ones that finish.
//
// # Quick start
//
//	scene := wezzle.NewScene()
//	tile := wezzle.NewRect("tile", 32, 32, wezzle.Color{R: 0.3, G: 0.7, B: 1, A: 1})
//	tile.SetPosition(100, 100)
//	scene.Add(tile, wezzle.LayerTile)
//
//	fade, err := wezzle.NewFade(tile, wezzle.FadeConfig{Kind: wezzle.FadeIn})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fade.OnFinish(func() { log.Println("tile shown") })
//	scene.Animations().Add(fade)
//
//	wezzle.Run(scene, wezzle.RunConfig{Title: "Wezzle", Width: 640, Height: 480})
//
// # Animations
//
// Every variant is built from a config struct and validated up front;
// invalid configs return an error wrapping [ErrInvalidConfig]. Available
// variants are [Fade], [Move], [Zoom], [Scale] (grow and shrink), [Pulse],
// [Jiggle], [Blink], [Float], [Explosion] and the eased [Tween] helpers.
// [Meta] composes animations, running children in sequence or side by side
// and finishing when the first or all of them do.
//
// Timing is in [time.Duration]. Each animation first consumes its wait, then
// steps once per elapsed period; a long frame may run several steps.
//
// # Attribute leases
//
// An animation leases the attributes it writes when it starts. A second
// animation that wants a leased attribute of the same entity fails to start
// with [ErrAttributeLeased], so two effects never fight over one value.
// Leases are released when the animation finishes or is cleaned up.
//
// # Presets
//
// Named configs can be kept in YAML and loaded with [LoadPresets]:
//
//	fades:
//	  appear: {kind: in, duration: 300ms}
//	blinks:
//	  hint: {kind: continuous, showPeriod: 400ms, hidePeriod: 200ms}
//
// [Ebitengine]: https://ebitengine.org
package wezzle
