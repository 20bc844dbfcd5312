package main

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/duskforge/portalcast/engine"
)

// SpriteMeta is demo-side bookkeeping for a non-player sprite: which
// engine.Sprite slot it corresponds to, a human label, and whether it
// respawns after the player interacts with it. The engine's Sprite struct
// only carries what the renderer needs (position, atlas value, distance);
// gameplay metadata like this lives in the host, bridged through a
// donburi.World the same way the teacher's ecs package bridges its own
// interaction events into a consumer's ECS.
type SpriteMeta struct {
	SpriteIndex int
	Label       string
	Respawns    bool
}

var spriteMetaComponent = donburi.NewComponentType[SpriteMeta]()

// InteractionEvent is published whenever a door triggers or the player
// crosses a portal, so a donburi system can react (play a sound, award a
// flag) without the engine core knowing systems exist.
type InteractionEvent struct {
	Kind string // "door-trigger" | "portal-cross"
	Pos  engine.Vec3
}

// InteractionEventType is the donburi event type carrying InteractionEvent,
// mirroring the teacher's InteractionEventType/EmitEvent pattern.
var InteractionEventType = events.NewEventType[InteractionEvent]()

// demoWorld owns the donburi.World backing sprite metadata and publishes
// interaction notifications onto it.
type demoWorld struct {
	world donburi.World
}

func newDemoWorld(sprites []engine.Sprite) *demoWorld {
	w := donburi.NewWorld()
	for i, s := range sprites {
		if s.IsPlayer {
			continue
		}
		entry := w.Entry(w.Create(spriteMetaComponent))
		donburi.SetValue(entry, spriteMetaComponent, SpriteMeta{SpriteIndex: i})
	}
	return &demoWorld{world: w}
}

// EmitEvent publishes an interaction notification to the world.
func (dw *demoWorld) EmitEvent(event InteractionEvent) {
	InteractionEventType.Publish(dw.world, event)
}

// ProcessEvents drains and dispatches queued events to fn, mirroring
// events.ProcessEvents' drain-and-clear semantics.
func (dw *demoWorld) ProcessEvents(fn func(InteractionEvent)) {
	for _, e := range InteractionEventType.Iterator(dw.world) {
		fn(e)
	}
	InteractionEventType.Clear(dw.world)
}
