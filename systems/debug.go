package systems

import (
	"fmt"

	"github.com/automoto/netfx/components"
	"github.com/yohamta/donburi/ecs"
)

// DebugStatus summarizes particles, cursor and surface for the debug overlay
func DebugStatus(e *ecs.ECS) string {
	cursor := "none"
	if entry, ok := components.Cursor.First(e.World); ok {
		c := components.Cursor.Get(entry)
		cursor = fmt.Sprintf("(%.0f, %.0f)", c.X, c.Y)
	}

	surfaceInfo := "unmounted"
	if s, ok := GetSurface(e); ok {
		surfaceInfo = fmt.Sprintf("%dx%d a=%.2f", s.Width, s.Height, s.Alpha)
	}

	return fmt.Sprintf("particles: %d\ncursor: %s\nsurface: %s", ParticleCount(e), cursor, surfaceInfo)
}
