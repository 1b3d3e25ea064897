// Package protocol defines the wire commands exchanged with the host.
package protocol

import "encoding/json"

// DefaultPort is the fixed application port the host listens on.
const DefaultPort = 8765

// Action identifies the kind of command sent to the host.
type Action string

const (
	// ActionMove carries a bounded joystick displacement.
	ActionMove Action = "move"
	// ActionScroll carries a raw vertical scroll delta.
	ActionScroll Action = "scroll"
	// ActionLeftClick performs a left click.
	ActionLeftClick Action = "left_click"
	// ActionRightClick performs a right click.
	ActionRightClick Action = "right_click"
	// ActionDoubleClick performs a double click.
	ActionDoubleClick Action = "double_click"
	// ActionDragStart presses and holds the left button.
	ActionDragStart Action = "drag_start"
	// ActionDragEnd releases the held left button.
	ActionDragEnd Action = "drag_end"
)

// TapKind selects which click a discrete tap trigger produces.
type TapKind int

const (
	// TapLeft is a single-finger tap.
	TapLeft TapKind = iota
	// TapRight is a two-finger tap.
	TapRight
	// TapDouble is a quick double tap.
	TapDouble
)

// Command is one outbound wire message. Each command serializes to a single
// JSON object; there is no framing beyond the transport message boundary.
type Command struct {
	Action Action   `json:"action"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
}

// Move builds a cursor motion command from a bounded displacement.
func Move(x, y float64) Command {
	return Command{Action: ActionMove, X: &x, Y: &y}
}

// Scroll builds a vertical scroll command from a raw delta.
func Scroll(y float64) Command {
	return Command{Action: ActionScroll, Y: &y}
}

// Tap builds the click command for a discrete tap trigger.
func Tap(kind TapKind) Command {
	switch kind {
	case TapRight:
		return Command{Action: ActionRightClick}
	case TapDouble:
		return Command{Action: ActionDoubleClick}
	default:
		return Command{Action: ActionLeftClick}
	}
}

// Drag builds the drag toggle command for the post-toggle drag state.
func Drag(active bool) Command {
	if active {
		return Command{Action: ActionDragStart}
	}
	return Command{Action: ActionDragEnd}
}

// Encode serializes the command to its wire form.
func (c Command) Encode() ([]byte, error) {
	return json.Marshal(c)
}

// Decode parses a wire message. Unknown fields are ignored.
func Decode(data []byte) (Command, error) {
	var c Command
	if err := json.Unmarshal(data, &c); err != nil {
		return Command{}, err
	}
	return c, nil
}

// XOrZero returns the x payload, treating a missing field as zero.
func (c Command) XOrZero() float64 {
	if c.X == nil {
		return 0
	}
	return *c.X
}

// YOrZero returns the y payload, treating a missing field as zero.
func (c Command) YOrZero() float64 {
	if c.Y == nil {
		return 0
	}
	return *c.Y
}
