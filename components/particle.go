package components

import "github.com/yohamta/donburi"

// ParticleData is one node of the network: position in surface pixels and
// velocity in pixels per frame
type ParticleData struct {
	X, Y   float64
	VX, VY float64
}

var Particle = donburi.NewComponentType[ParticleData]()
