package discovery

import "testing"

// TestAnnouncement_RoundTrip verifies a built datagram parses back to the
// same host.
func TestAnnouncement_RoundTrip(t *testing.T) {
	msg := Announcement("192.168.1.42")
	host, ok := ParseAnnouncement(msg)
	if !ok {
		t.Fatalf("expected parse to succeed for %q", msg)
	}
	if host != "192.168.1.42" {
		t.Fatalf("expected 192.168.1.42, got %q", host)
	}
}

// TestParseAnnouncement_Rejects verifies foreign and malformed datagrams are
// skipped.
func TestParseAnnouncement_Rejects(t *testing.T) {
	cases := []string{
		"",
		"HELLO:192.168.1.42",
		"GESTURE_SERVER_HERE",
		"GESTURE_SERVER_HERE:",
		"GESTURE_SERVER_HERE:   ",
		"gesture_server_here:192.168.1.42",
	}
	for _, msg := range cases {
		if host, ok := ParseAnnouncement(msg); ok {
			t.Fatalf("expected rejection of %q, got %q", msg, host)
		}
	}
}

// TestParseAnnouncement_TrimsWhitespace verifies trailing whitespace from the
// datagram is stripped.
func TestParseAnnouncement_TrimsWhitespace(t *testing.T) {
	host, ok := ParseAnnouncement("GESTURE_SERVER_HERE:10.0.0.7\n")
	if !ok || host != "10.0.0.7" {
		t.Fatalf("expected 10.0.0.7, got %q (ok=%v)", host, ok)
	}
}
