package systems

import (
	"github.com/automoto/netfx/components"
	cfg "github.com/automoto/netfx/config"
	"github.com/automoto/netfx/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice of particle pointers to avoid allocations every frame
var particleBuf []*components.ParticleData

// collectParticles returns the particles in storage order. The slice is
// reused between calls and only valid until the next one.
func collectParticles(e *ecs.ECS) []*components.ParticleData {
	particleBuf = particleBuf[:0]
	particleQuery.Each(e.World, func(entry *donburi.Entry) {
		particleBuf = append(particleBuf, components.Particle.Get(entry))
	})
	return particleBuf
}

// UpdateField advances the particle network by one frame.
// Does nothing until the pointer has moved and particles exist.
func UpdateField(e *ecs.ECS) {
	cursorEntry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	particles := collectParticles(e)
	if len(particles) == 0 {
		return
	}
	stepParticles(particles, *components.Cursor.Get(cursorEntry))
}

// stepParticles integrates each particle in order. Forces on a particle are
// computed from the set as it stands when that particle is reached, so
// particles earlier in the slice have already moved this frame.
func stepParticles(particles []*components.ParticleData, cursor components.CursorData) {
	for i, p := range particles {
		ax, ay := attraction(p, cursor)

		for j, other := range particles {
			if i == j {
				continue
			}
			rx, ry := repulsion(p, other)
			ax += rx
			ay += ry
		}

		p.VX += ax
		p.VY += ay

		p.VX *= cfg.Field.Damping
		p.VY *= cfg.Field.Damping

		p.X += p.VX
		p.Y += p.VY
	}
}

// attraction pulls p toward the cursor: strongly from afar, weakly up close,
// and not at all once inside the near threshold
func attraction(p *components.ParticleData, cursor components.CursorData) (float64, float64) {
	dirX, dirY, dist := gamemath.Direction(p.X, p.Y, cursor.X, cursor.Y)

	var force float64
	switch {
	case dist > cfg.Field.FarThreshold:
		force = cfg.Field.FarPull
	case dist > cfg.Field.NearThreshold:
		force = cfg.Field.NearPull
	default:
		return 0, 0
	}
	return dirX * force, dirY * force
}

// repulsion pushes p away from other with a force inversely proportional to
// their distance, within RepelRadius. Coincident particles do not interact.
func repulsion(p, other *components.ParticleData) (float64, float64) {
	dirX, dirY, dist := gamemath.Direction(other.X, other.Y, p.X, p.Y)

	if dist >= cfg.Field.RepelRadius || dist <= 0 {
		return 0, 0
	}
	force := cfg.Field.RepelStrength / dist
	return dirX * force, dirY * force
}
