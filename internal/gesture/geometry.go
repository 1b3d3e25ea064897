// Package gesture turns raw pointer samples into wire commands.
package gesture

const (
	// areaFraction sizes the joystick area relative to the screen width.
	areaFraction = 0.6
	// handleFraction sizes the handle relative to the joystick area.
	handleFraction = 0.4
)

// Geometry describes the on-screen joystick dimensions in pixels.
type Geometry struct {
	AreaSize   float64
	HandleSize float64
}

// GeometryForWidth derives joystick dimensions from the device screen width.
func GeometryForWidth(screenWidth float64) Geometry {
	area := screenWidth * areaFraction
	return Geometry{AreaSize: area, HandleSize: area * handleFraction}
}

// MaxOffset returns the clamp radius for joystick displacement: half the
// free travel between the handle edge and the area edge.
func (g Geometry) MaxOffset() float64 {
	off := (g.AreaSize - g.HandleSize) / 2
	if off < 0 {
		return 0
	}
	return off
}
