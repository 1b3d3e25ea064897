package gesture

import (
	"testing"

	"github.com/velen24/pointcast/internal/protocol"
)

// collect returns an emit func appending into cmds.
func collect(cmds *[]protocol.Command) Emit {
	return func(cmd protocol.Command) {
		*cmds = append(*cmds, cmd)
	}
}

// TestJoystick_SamplesUnderRadiusPassThrough verifies samples inside the
// radius are emitted unchanged and in order.
func TestJoystick_SamplesUnderRadiusPassThrough(t *testing.T) {
	var cmds []protocol.Command
	s := NewJoystickStream(100, collect(&cmds))

	in := [][2]float64{{1, 2}, {-3, 4}, {5, -6}, {7, 8}, {0, 0}}
	s.Start()
	for _, p := range in {
		s.Sample(p[0], p[1])
	}
	s.End()

	if len(cmds) != 5 {
		t.Fatalf("expected 5 commands, got %d", len(cmds))
	}
	for i, cmd := range cmds {
		if cmd.Action != protocol.ActionMove {
			t.Fatalf("expected move at %d, got %#v", i, cmd)
		}
		if cmd.XOrZero() != in[i][0] || cmd.YOrZero() != in[i][1] {
			t.Fatalf("expected (%v,%v) at %d, got (%v,%v)", in[i][0], in[i][1], i, cmd.XOrZero(), cmd.YOrZero())
		}
	}
}

// TestJoystick_SampleBeyondRadiusClamped verifies oversized displacements
// are projected onto the radius.
func TestJoystick_SampleBeyondRadiusClamped(t *testing.T) {
	var cmds []protocol.Command
	s := NewJoystickStream(25, collect(&cmds))

	s.Start()
	s.Sample(30, 40)

	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	if cmds[0].XOrZero() != 15 || cmds[0].YOrZero() != 20 {
		t.Fatalf("expected (15,20), got (%v,%v)", cmds[0].XOrZero(), cmds[0].YOrZero())
	}
}

// TestJoystick_IdleStreamEmitsNothing verifies samples outside an active
// gesture are dropped.
func TestJoystick_IdleStreamEmitsNothing(t *testing.T) {
	var cmds []protocol.Command
	s := NewJoystickStream(25, collect(&cmds))

	s.Sample(5, 5)
	s.Start()
	s.End()
	s.Sample(5, 5)

	if len(cmds) != 0 {
		t.Fatalf("expected no commands, got %#v", cmds)
	}
}

// TestJoystick_EndSendsNoRelease verifies gesture end produces no command.
func TestJoystick_EndSendsNoRelease(t *testing.T) {
	var cmds []protocol.Command
	s := NewJoystickStream(25, collect(&cmds))

	s.Start()
	s.Sample(10, 0)
	s.End()

	if len(cmds) != 1 {
		t.Fatalf("expected only the sampled move, got %#v", cmds)
	}
	if s.Active() {
		t.Fatalf("expected inactive stream after end")
	}
}

// TestScroll_RawVerticalPassThrough verifies scroll samples are forwarded
// unclamped.
func TestScroll_RawVerticalPassThrough(t *testing.T) {
	var cmds []protocol.Command
	s := NewScrollStream(collect(&cmds))

	s.Start()
	s.Sample(12.5)
	s.Sample(-4000)
	s.End()

	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if cmds[0].Action != protocol.ActionScroll || cmds[0].YOrZero() != 12.5 {
		t.Fatalf("unexpected first command: %#v", cmds[0])
	}
	if cmds[1].YOrZero() != -4000 {
		t.Fatalf("expected raw delta -4000, got %v", cmds[1].YOrZero())
	}
	if cmds[0].X != nil {
		t.Fatalf("expected no horizontal component, got %#v", cmds[0])
	}
}

// TestScroll_IdleStreamEmitsNothing verifies idle scroll samples are dropped.
func TestScroll_IdleStreamEmitsNothing(t *testing.T) {
	var cmds []protocol.Command
	s := NewScrollStream(collect(&cmds))

	s.Sample(3)
	if len(cmds) != 0 {
		t.Fatalf("expected no commands, got %#v", cmds)
	}
}
