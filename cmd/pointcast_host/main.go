// Package main starts the pointcast host daemon.
package main

import "flag"

// main is the entrypoint for the pointcast host.
func main() {
	configPath := flag.String("config", "pointcast.yml", "Path to the optional YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logFatal(err)
	}
}
