package components

import "github.com/yohamta/donburi"

// CursorData is the most recent pointer position in surface pixels.
// The entity only exists once the pointer has moved.
type CursorData struct {
	X, Y float64
}

var Cursor = donburi.NewComponentType[CursorData]()
