// Package hostinput injects pointer events into the host OS.
package hostinput

// Injector defines the pointer operations applied on behalf of a handheld.
type Injector interface {
	MoveRel(dx, dy int) error
	LeftClick() error
	RightClick() error
	DoubleClick() error
	LeftDown() error
	LeftUp() error
	Wheel(delta int) error
	Close() error
}
