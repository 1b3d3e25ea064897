package testutil

import "github.com/velen24/pointcast/internal/hostinput"

// Call records a single injected pointer action.
type Call struct {
	Name string
	DX   int
	DY   int
}

// FakeInjector implements hostinput.Injector and records calls for tests.
type FakeInjector struct {
	Calls []Call
}

// Ensure FakeInjector implements the interface.
var _ hostinput.Injector = (*FakeInjector)(nil)

// MoveRel records a relative move.
func (f *FakeInjector) MoveRel(dx, dy int) error {
	f.Calls = append(f.Calls, Call{Name: "MoveRel", DX: dx, DY: dy})
	return nil
}

// LeftClick records a left click.
func (f *FakeInjector) LeftClick() error {
	f.Calls = append(f.Calls, Call{Name: "LeftClick"})
	return nil
}

// RightClick records a right click.
func (f *FakeInjector) RightClick() error {
	f.Calls = append(f.Calls, Call{Name: "RightClick"})
	return nil
}

// DoubleClick records a double click.
func (f *FakeInjector) DoubleClick() error {
	f.Calls = append(f.Calls, Call{Name: "DoubleClick"})
	return nil
}

// LeftDown records a left button press.
func (f *FakeInjector) LeftDown() error {
	f.Calls = append(f.Calls, Call{Name: "LeftDown"})
	return nil
}

// LeftUp records a left button release.
func (f *FakeInjector) LeftUp() error {
	f.Calls = append(f.Calls, Call{Name: "LeftUp"})
	return nil
}

// Wheel records a scroll by delta detents.
func (f *FakeInjector) Wheel(delta int) error {
	f.Calls = append(f.Calls, Call{Name: "Wheel", DY: delta})
	return nil
}

// Close records the device teardown.
func (f *FakeInjector) Close() error {
	f.Calls = append(f.Calls, Call{Name: "Close"})
	return nil
}
