// Package ecs provides Donburi adapters for tilekit.
//
// Attach a [Body] component to entities that should collide with the map
// and an [Animator] component to entities with sprite animations, then call
// [UpdateCollisions] and [UpdateAnimations] from your systems each tick.
// Confirmed map collisions are published as [CollisionEventType] events:
//
//	e := world.Create(ecs.Body)
//	ecs.Body.Set(world.Entry(e), tilekit.NewBody(32, 0, 16, 24))
//
//	ecs.CollisionEventType.Subscribe(world, func(w donburi.World, ev ecs.CollisionEvent) {
//		...
//	})
//
//	if err := ecs.UpdateCollisions(world, layer, manager); err != nil { ... }
//	ecs.CollisionEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
