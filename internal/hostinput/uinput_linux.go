//go:build linux

// Package hostinput injects pointer events into the host OS.
package hostinput

import (
	"fmt"

	"github.com/bendahl/uinput"
)

// UinputInjector injects mouse input through a virtual uinput device.
type UinputInjector struct {
	mouse uinput.Mouse
}

// NewInjector creates the virtual pointer device. Requires write access to
// /dev/uinput (typically the input group).
func NewInjector() (Injector, error) {
	mouse, err := uinput.CreateMouse("/dev/uinput", []byte("pointcast"))
	if err != nil {
		return nil, fmt.Errorf("create virtual mouse: %w", err)
	}
	return &UinputInjector{mouse: mouse}, nil
}

// MoveRel moves the cursor by a relative pixel offset.
func (u *UinputInjector) MoveRel(dx, dy int) error {
	return u.mouse.Move(int32(dx), int32(dy))
}

// LeftClick presses and releases the left button.
func (u *UinputInjector) LeftClick() error {
	return u.mouse.LeftClick()
}

// RightClick presses and releases the right button.
func (u *UinputInjector) RightClick() error {
	return u.mouse.RightClick()
}

// DoubleClick performs two left clicks back to back.
func (u *UinputInjector) DoubleClick() error {
	if err := u.mouse.LeftClick(); err != nil {
		return err
	}
	return u.mouse.LeftClick()
}

// LeftDown presses the left mouse button.
func (u *UinputInjector) LeftDown() error {
	return u.mouse.LeftPress()
}

// LeftUp releases the left mouse button.
func (u *UinputInjector) LeftUp() error {
	return u.mouse.LeftRelease()
}

// Wheel scrolls vertically by delta detents.
func (u *UinputInjector) Wheel(delta int) error {
	return u.mouse.Wheel(false, int32(delta))
}

// Close destroys the virtual device.
func (u *UinputInjector) Close() error {
	return u.mouse.Close()
}
