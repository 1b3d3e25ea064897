// Package discovery implements LAN host discovery over UDP broadcast.
package discovery

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
	"time"
)

const (
	// Port is the UDP port discovery datagrams are sent to.
	Port = 8766
	// messagePrefix tags discovery datagrams from a pointcast host. The
	// value predates this implementation and is kept for wire compatibility.
	messagePrefix = "GESTURE_SERVER_HERE"
	// defaultInterval is the delay between presence broadcasts.
	defaultInterval = 2 * time.Second
)

// Announcer periodically broadcasts the host presence on the LAN so
// handhelds can find the host without typing its address.
type Announcer struct {
	Port     int
	Interval time.Duration
}

// Run broadcasts until ctx is done. Individual send failures are logged and
// retried on the next tick.
func (a *Announcer) Run(ctx context.Context) error {
	port := a.Port
	if port <= 0 {
		port = Port
	}
	interval := a.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	conn, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		return fmt.Errorf("open broadcast socket: %w", err)
	}
	defer conn.Close()

	dest := &net.UDPAddr{IP: net.IPv4bcast, Port: port}
	msg := []byte(Announcement(LocalIP()))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := conn.WriteTo(msg, dest); err != nil {
				log.Printf("discovery: broadcast failed: %v", err)
			}
		}
	}
}

// Listen waits for a host presence broadcast on port and returns the
// advertised host address. Malformed datagrams are skipped. Listening stops
// when ctx is done or the timeout elapses.
func Listen(ctx context.Context, port int, timeout time.Duration) (string, error) {
	if port <= 0 {
		port = Port
	}
	conn, err := net.ListenPacket("udp4", fmt.Sprintf(":%d", port))
	if err != nil {
		return "", fmt.Errorf("open discovery socket: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	if timeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(timeout))
	}

	buf := make([]byte, 256)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			return "", fmt.Errorf("wait for host broadcast: %w", err)
		}
		if host, ok := ParseAnnouncement(string(buf[:n])); ok {
			return host, nil
		}
	}
}

// Announcement builds the datagram payload advertising a host address.
func Announcement(host string) string {
	return messagePrefix + ":" + host
}

// ParseAnnouncement extracts the host address from a discovery datagram.
func ParseAnnouncement(msg string) (string, bool) {
	rest, ok := strings.CutPrefix(msg, messagePrefix+":")
	if !ok {
		return "", false
	}
	host := strings.TrimSpace(rest)
	if host == "" {
		return "", false
	}
	return host, true
}

// LocalIP finds the outbound LAN address of this machine. The dial never
// sends a packet; it only selects the route.
func LocalIP() string {
	conn, err := net.Dial("udp4", "10.255.255.255:1")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "127.0.0.1"
}
