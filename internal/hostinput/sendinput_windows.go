//go:build windows

// Package hostinput injects pointer events into the host OS.
package hostinput

import "github.com/lxn/win"

// wheelDelta is the WinAPI scroll unit for one wheel detent.
const wheelDelta = 120

// WinInjector injects mouse input through the WinAPI SendInput call.
type WinInjector struct{}

// NewInjector returns the Windows pointer injector.
func NewInjector() (Injector, error) {
	return &WinInjector{}, nil
}

// MoveRel moves the cursor by a relative pixel offset.
func (w *WinInjector) MoveRel(dx, dy int) error {
	return sendMouseInput(win.MOUSEEVENTF_MOVE, int32(dx), int32(dy), 0)
}

// LeftClick presses and releases the left button.
func (w *WinInjector) LeftClick() error {
	if err := w.LeftDown(); err != nil {
		return err
	}
	return w.LeftUp()
}

// RightClick presses and releases the right button.
func (w *WinInjector) RightClick() error {
	if err := sendMouseInput(win.MOUSEEVENTF_RIGHTDOWN, 0, 0, 0); err != nil {
		return err
	}
	return sendMouseInput(win.MOUSEEVENTF_RIGHTUP, 0, 0, 0)
}

// DoubleClick performs two left clicks back to back.
func (w *WinInjector) DoubleClick() error {
	if err := w.LeftClick(); err != nil {
		return err
	}
	return w.LeftClick()
}

// LeftDown presses the left mouse button.
func (w *WinInjector) LeftDown() error {
	return sendMouseInput(win.MOUSEEVENTF_LEFTDOWN, 0, 0, 0)
}

// LeftUp releases the left mouse button.
func (w *WinInjector) LeftUp() error {
	return sendMouseInput(win.MOUSEEVENTF_LEFTUP, 0, 0, 0)
}

// Wheel scrolls vertically by delta detents.
func (w *WinInjector) Wheel(delta int) error {
	return sendMouseInput(win.MOUSEEVENTF_WHEEL, 0, 0, uint32(int32(delta*wheelDelta)))
}

// Close releases no resources on Windows.
func (w *WinInjector) Close() error {
	return nil
}

// sendMouseInput dispatches a single mouse input event.
func sendMouseInput(flags uint32, dx, dy int32, data uint32) error {
	input := win.INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			Dx:        dx,
			Dy:        dy,
			MouseData: data,
			DwFlags:   flags,
		},
	}
	if win.SendInput(1, &input, int32(win.SizeofINPUT)) != 1 {
		return win.GetLastError()
	}
	return nil
}
