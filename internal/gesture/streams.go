// Package gesture turns raw pointer samples into wire commands.
package gesture

import "github.com/velen24/pointcast/internal/protocol"

// Emit receives exactly one command per gesture sample, in sample order.
type Emit func(protocol.Command)

// JoystickStream converts drag samples into bounded move commands. Samples
// carry the raw displacement since the gesture started; each one is clamped
// to the joystick radius and emitted immediately.
type JoystickStream struct {
	maxOffset float64
	active    bool
	emit      Emit
}

// NewJoystickStream returns a stream clamping samples to maxOffset.
func NewJoystickStream(maxOffset float64, emit Emit) *JoystickStream {
	return &JoystickStream{maxOffset: maxOffset, emit: emit}
}

// Start marks the beginning of a drag gesture.
func (s *JoystickStream) Start() {
	s.active = true
}

// Sample processes one displacement-since-start measurement and emits one
// move command while the gesture is active.
func (s *JoystickStream) Sample(dx, dy float64) {
	if !s.active || s.emit == nil {
		return
	}
	v := Clamp(Vec{X: dx, Y: dy}, s.maxOffset)
	s.emit(protocol.Move(v.X, v.Y))
}

// End marks the end of the gesture. No release command is sent; the last
// emitted move stands as the final state and the handle spring-back is a
// presentation concern.
func (s *JoystickStream) End() {
	s.active = false
}

// Active reports whether a gesture is in progress.
func (s *JoystickStream) Active() bool {
	return s.active
}

// ScrollStream converts drag samples into raw scroll commands. The vertical
// displacement is forwarded unclamped; there is no horizontal component.
type ScrollStream struct {
	active bool
	emit   Emit
}

// NewScrollStream returns a stream forwarding vertical deltas.
func NewScrollStream(emit Emit) *ScrollStream {
	return &ScrollStream{emit: emit}
}

// Start marks the beginning of a scroll gesture.
func (s *ScrollStream) Start() {
	s.active = true
}

// Sample processes one vertical displacement-since-start measurement and
// emits one scroll command while the gesture is active.
func (s *ScrollStream) Sample(dy float64) {
	if !s.active || s.emit == nil {
		return
	}
	s.emit(protocol.Scroll(dy))
}

// End marks the end of the gesture.
func (s *ScrollStream) End() {
	s.active = false
}

// Active reports whether a gesture is in progress.
func (s *ScrollStream) Active() bool {
	return s.active
}
