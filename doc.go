// Package tilekit is a tile-map collision and sprite animation toolkit for
// [Ebitengine] platformers.
//
// Tilekit moves entities against a grid of tiles one axis at a time, lets
// each tile id decide how it blocks (solid, one-way platform, ramp, or your
// own [BlockResolver]), and drives frame-based sprite animations from sheets.
//
// # Quick start
//
// Build a collision layer, register a resolver per tile id, then check each
// entity after it moves:
//
//	layer := tilekit.NewCollisionLayer(40, 23)
//	layer.Fill(0, 22, 40, 1, 0)
//
//	m := tilekit.NewTileCollisionManager(tilekit.DefaultCollisionConfig())
//	m.Register(0, tilekit.SolidBlock{})
//
//	player := tilekit.NewBody(64, 64, 16, 24)
//	player.Move(dx, dy)
//	hit, err := m.CheckCollision(layer, player, true)
//	player.ResetDelta()
//
// Horizontal movement is resolved first, then vertical. A resolver that
// confirms a hit repositions the entity flush against the tile. With the
// callback enabled, the entity's OnMapCollision receives the last confirmed
// tile. A tile id with no resolver is reported as [ErrUnsupportedTileID].
//
// # Entities
//
// Anything implementing [Entity] can collide. [Body] is a ready-made
// implementation that accumulates its per-frame delta through [Body.Move]
// and forwards collisions to an optional callback. [TweenPosition] and
// friends move a Body along an eased path (via [gween]) so scripted movement
// is resolved like any other.
//
// # Animation
//
// An [Animation] is an ordered list of frames, each showing one [ImageRef]
// for a number of milliseconds. Clips can loop, loop back to a chosen frame,
// or ping-pong. An [Animator] holds named clips and plays one at a time.
// [BuildAnimator] creates one from declarative [AnimationSpec] values and
// [SpriteSheet] images.
//
// # Integrations
//
// The tilekit/tiled package loads collision layers from Tiled TMX maps (via
// [go-tiled]). The tilekit/ecs package runs collisions and animations over a
// [Donburi] world and publishes collisions as events.
//
// # Logging
//
// Tilekit is silent by default. Install a [zap] logger with [SetLogger] and
// call [SetDebug] to log every probe and animation switch.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [go-tiled]: https://github.com/lafriks/go-tiled
// [Donburi]: https://github.com/yohamta/donburi
// [zap]: https://github.com/uber-go/zap
package tilekit
