// Package session coordinates drag state, gesture streams, and dispatch.
package session

import (
	"sync"

	"github.com/velen24/pointcast/internal/gesture"
	"github.com/velen24/pointcast/internal/protocol"
)

// Haptics fires a device feedback pulse on a drag toggle. A nil value
// disables feedback.
type Haptics func()

// Dispatcher delivers commands to the host link.
type Dispatcher interface {
	Dispatch(cmd protocol.Command)
}

// Controller owns the drag toggle state and routes gesture samples and
// discrete triggers uniformly into the dispatcher.
type Controller struct {
	mu       sync.Mutex
	link     Dispatcher
	joystick *gesture.JoystickStream
	scroll   *gesture.ScrollStream
	haptics  Haptics
	dragging bool
}

// NewController wires gesture streams and triggers into the link. The drag
// state starts false and flips only on explicit toggles.
func NewController(link Dispatcher, geom gesture.Geometry, haptics Haptics) *Controller {
	c := &Controller{link: link, haptics: haptics}
	emit := func(cmd protocol.Command) {
		link.Dispatch(cmd)
	}
	c.joystick = gesture.NewJoystickStream(geom.MaxOffset(), emit)
	c.scroll = gesture.NewScrollStream(emit)
	return c
}

// ToggleDrag flips the drag state, dispatches the command matching the
// post-toggle state, and fires the haptic pulse.
func (c *Controller) ToggleDrag() {
	c.mu.Lock()
	c.dragging = !c.dragging
	active := c.dragging
	c.mu.Unlock()

	c.link.Dispatch(protocol.Drag(active))
	if c.haptics != nil {
		c.haptics()
	}
}

// Dragging reports the current drag toggle state.
func (c *Controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}

// Tap dispatches the click command for a discrete tap trigger.
func (c *Controller) Tap(kind protocol.TapKind) {
	c.link.Dispatch(protocol.Tap(kind))
}

// Joystick returns the joystick gesture stream.
func (c *Controller) Joystick() *gesture.JoystickStream {
	return c.joystick
}

// Scroll returns the scroll gesture stream.
func (c *Controller) Scroll() *gesture.ScrollStream {
	return c.scroll
}
