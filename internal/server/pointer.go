// Package server hosts the websocket endpoint that receives commands.
package server

// Pointer converts joystick displacements into smoothed relative cursor
// motion. Each connection owns one, so a freshly connected handheld never
// inherits another client's velocity.
type Pointer struct {
	sens      float64
	smoothing float64
	velX      float64
	velY      float64
	remX      float64
	remY      float64
}

// NewPointer returns a pointer model with the given sensitivity and
// exponential smoothing factor in (0,1].
func NewPointer(sensitivity, smoothing float64) *Pointer {
	return &Pointer{sens: sensitivity, smoothing: smoothing}
}

// Step feeds one joystick displacement and returns the whole-pixel motion to
// inject. Fractional remainders carry across calls so slow drags still move
// the cursor.
func (p *Pointer) Step(dx, dy float64) (int, int) {
	targetX := dx * p.sens
	targetY := dy * p.sens
	p.velX = p.smoothing*targetX + (1-p.smoothing)*p.velX
	p.velY = p.smoothing*targetY + (1-p.smoothing)*p.velY

	p.remX += p.velX
	p.remY += p.velY
	outX := int(p.remX)
	outY := int(p.remY)
	p.remX -= float64(outX)
	p.remY -= float64(outY)
	return outX, outY
}
