package tags

import "github.com/yohamta/donburi"

var (
	Particle = donburi.NewTag().SetName("Particle")
)
