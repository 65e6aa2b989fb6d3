package archetypes

import (
	"github.com/automoto/netfx/components"
	cfg "github.com/automoto/netfx/config"
	"github.com/automoto/netfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
	Surface = newArchetype(
		components.Surface,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
