package input

import "github.com/lixenwraith/stellar-assault/vmath"

// Bounds is the rectangle the ship may occupy
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NextPosition applies one tick of the movement rule
// Touch mode follows the touch point while a touch is active and ignores keys
// Otherwise the pointer sets the position and held keys override each axis by speed from the current position
func NextPosition(x, y, speed float64, f Frame, touchMode bool, b Bounds) (float64, float64) {
	nx, ny := x, y

	if touchMode {
		if f.Touching {
			nx, ny = f.TouchX, f.TouchY
		}
	} else {
		if f.HasPointer {
			nx, ny = f.PointerX, f.PointerY
		}
		if f.Left {
			nx = x - speed
		}
		if f.Right {
			nx = x + speed
		}
		if f.Up {
			ny = y - speed
		}
		if f.Down {
			ny = y + speed
		}
	}

	return vmath.Clamp(nx, b.MinX, b.MaxX), vmath.Clamp(ny, b.MinY, b.MaxY)
}
