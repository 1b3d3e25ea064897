// Package main runs a line-driven pointcast sender for testing hosts.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/velen24/pointcast/internal/discovery"
	"github.com/velen24/pointcast/internal/gesture"
	"github.com/velen24/pointcast/internal/link"
	"github.com/velen24/pointcast/internal/protocol"
	"github.com/velen24/pointcast/internal/session"
)

// discoverTimeout bounds how long the sender waits for a host broadcast.
const discoverTimeout = 10 * time.Second

// run connects to the host and forwards stdin commands until EOF or quit.
func run(host string, discover bool, screenWidth float64) error {
	if discover {
		found, err := discovery.Listen(context.Background(), discovery.Port, discoverTimeout)
		if err != nil {
			return fmt.Errorf("discover host: %w", err)
		}
		host = found
		log.Printf("discovery: found host %s", host)
	}

	mgr := link.NewManager(&link.WSDialer{}, func(msg string) {
		log.Printf("link: %s", msg)
	}, func(state link.State) {
		log.Printf("link: state %s", state)
	})
	if err := mgr.Connect(host); err != nil {
		return err
	}
	defer mgr.Disconnect()

	ctl := session.NewController(mgr, gesture.GeometryForWidth(screenWidth), nil)
	return forward(os.Stdin, ctl)
}

// forward reads command lines from r and routes them through the controller.
func forward(r io.Reader, ctl *session.Controller) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return nil
		}
		if err := handleLine(ctl, line); err != nil {
			log.Printf("input: %v", err)
		}
	}
	return scanner.Err()
}

// handleLine executes a single command line.
func handleLine(ctl *session.Controller, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "move":
		if len(fields) != 3 {
			return fmt.Errorf("usage: move <dx> <dy>")
		}
		dx, dy, err := parsePair(fields[1], fields[2])
		if err != nil {
			return err
		}
		ctl.Joystick().Start()
		ctl.Joystick().Sample(dx, dy)
		ctl.Joystick().End()
		return nil
	case "scroll":
		if len(fields) != 2 {
			return fmt.Errorf("usage: scroll <dy>")
		}
		dy, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("scroll delta must be a number: %w", err)
		}
		ctl.Scroll().Start()
		ctl.Scroll().Sample(dy)
		ctl.Scroll().End()
		return nil
	case "tap":
		if len(fields) != 2 {
			return fmt.Errorf("usage: tap left|right|double")
		}
		kind, err := tapKind(fields[1])
		if err != nil {
			return err
		}
		ctl.Tap(kind)
		return nil
	case "drag":
		ctl.ToggleDrag()
		log.Printf("drag: %v", ctl.Dragging())
		return nil
	default:
		return fmt.Errorf("unknown command %q (move, scroll, tap, drag, quit)", fields[0])
	}
}

// parsePair parses two float arguments.
func parsePair(a, b string) (float64, float64, error) {
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("dx must be a number: %w", err)
	}
	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("dy must be a number: %w", err)
	}
	return x, y, nil
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// tapKind maps a tap argument to its protocol kind.
func tapKind(name string) (protocol.TapKind, error) {
	switch name {
	case "left":
		return protocol.TapLeft, nil
	case "right":
		return protocol.TapRight, nil
	case "double":
		return protocol.TapDouble, nil
	default:
		return 0, fmt.Errorf("unknown tap kind %q", name)
	}
}
