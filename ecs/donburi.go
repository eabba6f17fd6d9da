package ecs

import (
	"errors"
	"fmt"

	"github.com/phanxgames/tilekit"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Body is the collision body component.
var Body = donburi.NewComponentType[tilekit.Body]()

// Animator is the sprite animation component.
var Animator = donburi.NewComponentType[tilekit.Animator]()

// CollisionEvent reports a confirmed map collision for an entity.
type CollisionEvent struct {
	Entity donburi.Entity
	TileID int
	GridX  int
	GridY  int
}

// CollisionEventType is the Donburi event type for map collisions. Subscribe
// to it in your systems and process it after UpdateCollisions.
var CollisionEventType = events.NewEventType[CollisionEvent]()

// entryEntity adapts a Donburi entry's Body to tilekit.Entity. Collisions
// are published as events before reaching Body.OnCollide.
type entryEntity struct {
	*tilekit.Body
	world  donburi.World
	entity donburi.Entity
}

func (e entryEntity) OnMapCollision(tileID, gridX, gridY int) {
	CollisionEventType.Publish(e.world, CollisionEvent{
		Entity: e.entity,
		TileID: tileID,
		GridX:  gridX,
		GridY:  gridY,
	})
	e.Body.OnMapCollision(tileID, gridX, gridY)
}

// UpdateCollisions runs one collision check for every entity with a Body,
// then clears each body's movement delta. An error from one entity does not
// stop the others; all of them are joined into the returned error.
func UpdateCollisions(world donburi.World, grid tilekit.TileGrid, m *tilekit.TileCollisionManager) error {
	var errs []error
	Body.Each(world, func(entry *donburi.Entry) {
		body := Body.Get(entry)
		ent := entryEntity{Body: body, world: world, entity: entry.Entity()}
		if _, err := m.CheckCollision(grid, ent, true); err != nil {
			errs = append(errs, fmt.Errorf("entity %v: %w", entry.Entity(), err))
		}
		body.ResetDelta()
	})
	return errors.Join(errs...)
}

// UpdateAnimations advances the current animation of every entity with an
// Animator by deltaMs milliseconds.
func UpdateAnimations(world donburi.World, deltaMs int) {
	Animator.Each(world, func(entry *donburi.Entry) {
		Animator.Get(entry).Update(deltaMs)
	})
}
