// Package main runs a line-driven pointcast sender for testing hosts.
package main

import "flag"

// main is the entrypoint for the pointcast command-line sender.
func main() {
	host := flag.String("host", "", "Host address to connect to")
	discover := flag.Bool("discover", false, "Find the host via UDP broadcast instead of -host")
	width := flag.Float64("width", 1080, "Device screen width used for joystick geometry")
	flag.Parse()

	if err := run(*host, *discover, *width); err != nil {
		logFatal(err)
	}
}
