package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/netfx/archetypes"
	"github.com/automoto/netfx/components"
	cfg "github.com/automoto/netfx/config"
	"github.com/automoto/netfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var particleQuery = donburi.NewQuery(filter.Contains(tags.Particle, components.Particle))

// SeedParticles spawns the configured number of particles around (x, y).
//
// Distance from the center is uniform in [0, SpawnRadius), not in area, so
// particles bunch up toward the middle of the disk.
func SeedParticles(e *ecs.ECS, x, y float64, rng *rand.Rand) {
	for i := 0; i < cfg.Field.ParticleCount; i++ {
		angle := rng.Float64() * math.Pi * 2
		distance := rng.Float64() * cfg.Field.SpawnRadius

		entry := archetypes.Particle.Spawn(e)
		components.Particle.SetValue(entry, components.ParticleData{
			X:  x + math.Cos(angle)*distance,
			Y:  y + math.Sin(angle)*distance,
			VX: (rng.Float64() - 0.5) * 2 * cfg.Field.InitialSpeed,
			VY: (rng.Float64() - 0.5) * 2 * cfg.Field.InitialSpeed,
		})
	}
}

// ParticleCount returns the number of live particles
func ParticleCount(e *ecs.ECS) int {
	return particleQuery.Count(e.World)
}

// ClearParticles removes every particle
func ClearParticles(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	particleQuery.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		entry.Remove()
	}
}

// HandlePointerMove records the cursor and seeds the particle set on the first
// movement after it was cleared
func HandlePointerMove(e *ecs.ECS, x, y float64, rng *rand.Rand) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		entry = archetypes.Cursor.Spawn(e)
	}
	components.Cursor.SetValue(entry, components.CursorData{X: x, Y: y})

	if ParticleCount(e) == 0 {
		SeedParticles(e, x, y, rng)
	}
}

// RemoveCursor forgets the pointer position
func RemoveCursor(e *ecs.ECS) {
	if entry, ok := components.Cursor.First(e.World); ok {
		entry.Remove()
	}
}
