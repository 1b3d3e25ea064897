//go:build !windows && !linux

// Package hostinput injects pointer events into the host OS.
package hostinput

import "errors"

// ErrUnsupported indicates pointer injection is not available on this OS.
var ErrUnsupported = errors.New("pointer injection is only supported on Windows and Linux")

// NoopInjector is a placeholder injector for unsupported platforms.
type NoopInjector struct{}

// NewInjector returns a non-functional injector on unsupported platforms.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, ErrUnsupported
}

// MoveRel returns ErrUnsupported.
func (n *NoopInjector) MoveRel(dx, dy int) error {
	_ = dx
	_ = dy
	return ErrUnsupported
}

// LeftClick returns ErrUnsupported.
func (n *NoopInjector) LeftClick() error {
	return ErrUnsupported
}

// RightClick returns ErrUnsupported.
func (n *NoopInjector) RightClick() error {
	return ErrUnsupported
}

// DoubleClick returns ErrUnsupported.
func (n *NoopInjector) DoubleClick() error {
	return ErrUnsupported
}

// LeftDown returns ErrUnsupported.
func (n *NoopInjector) LeftDown() error {
	return ErrUnsupported
}

// LeftUp returns ErrUnsupported.
func (n *NoopInjector) LeftUp() error {
	return ErrUnsupported
}

// Wheel returns ErrUnsupported.
func (n *NoopInjector) Wheel(delta int) error {
	_ = delta
	return ErrUnsupported
}

// Close releases nothing.
func (n *NoopInjector) Close() error {
	return nil
}
