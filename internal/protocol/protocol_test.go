package protocol

import "testing"

// TestEncode_Move verifies the move wire format.
func TestEncode_Move(t *testing.T) {
	data, err := Move(15, 20).Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(data) != `{"action":"move","x":15,"y":20}` {
		t.Fatalf("unexpected wire form: %s", data)
	}
}

// TestEncode_Scroll verifies the scroll wire format carries only y.
func TestEncode_Scroll(t *testing.T) {
	data, err := Scroll(-3.5).Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(data) != `{"action":"scroll","y":-3.5}` {
		t.Fatalf("unexpected wire form: %s", data)
	}
}

// TestEncode_Discrete verifies payload-free commands.
func TestEncode_Discrete(t *testing.T) {
	cases := []struct {
		cmd  Command
		want string
	}{
		{Tap(TapLeft), `{"action":"left_click"}`},
		{Tap(TapRight), `{"action":"right_click"}`},
		{Tap(TapDouble), `{"action":"double_click"}`},
		{Drag(true), `{"action":"drag_start"}`},
		{Drag(false), `{"action":"drag_end"}`},
	}
	for _, tc := range cases {
		data, err := tc.cmd.Encode()
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if string(data) != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, data)
		}
	}
}

// TestDecode_Move verifies decoding a move message.
func TestDecode_Move(t *testing.T) {
	cmd, err := Decode([]byte(`{"action":"move","x":0.5,"y":-2}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cmd.Action != ActionMove || cmd.XOrZero() != 0.5 || cmd.YOrZero() != -2 {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

// TestDecode_IgnoresUnknownFields verifies extra fields do not fail decoding.
func TestDecode_IgnoresUnknownFields(t *testing.T) {
	cmd, err := Decode([]byte(`{"action":"scroll","y":7,"source":"app","seq":12}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cmd.Action != ActionScroll || cmd.YOrZero() != 7 {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

// TestDecode_MissingPayloadReadsZero verifies absent x/y default to zero.
func TestDecode_MissingPayloadReadsZero(t *testing.T) {
	cmd, err := Decode([]byte(`{"action":"move"}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cmd.XOrZero() != 0 || cmd.YOrZero() != 0 {
		t.Fatalf("expected zero payload, got %#v", cmd)
	}
}

// TestDecode_Malformed verifies invalid JSON is rejected.
func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode([]byte(`{"action":`)); err == nil {
		t.Fatalf("expected decode error")
	}
}
