// Package main starts the pointcast host daemon.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/velen24/pointcast/internal/config"
	"github.com/velen24/pointcast/internal/discovery"
	"github.com/velen24/pointcast/internal/hostinput"
	"github.com/velen24/pointcast/internal/server"
)

// run wires the host daemon and blocks until shutdown.
func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logStartup(cfg)

	injector, err := hostinput.NewInjector()
	if err != nil {
		return err
	}
	defer func() {
		if err := injector.Close(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	ctl := server.New(injector, cfg.JoystickSens, cfg.ScrollSens, cfg.Smoothing)
	mux := http.NewServeMux()
	mux.Handle("/", ctl)
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.BroadcastEnabled {
		announcer := &discovery.Announcer{
			Port:     cfg.BroadcastPort,
			Interval: cfg.BroadcastInterval,
		}
		go func() {
			if err := announcer.Run(ctx); err != nil {
				log.Printf("discovery: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints listen and discovery info.
func logStartup(cfg config.Config) {
	log.Printf("pointcast host starting")
	log.Printf("listen addr: %s", cfg.ListenAddr)
	if cfg.BroadcastEnabled {
		log.Printf("discovery: broadcasting on udp/%d every %s", cfg.BroadcastPort, cfg.BroadcastInterval)
	} else {
		log.Printf("discovery: disabled")
	}
	logClientURL(cfg.ListenAddr)
}

// logClientURL prints the websocket URL handhelds should use.
func logClientURL(addr string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = discovery.LocalIP()
	}
	log.Printf("client url: ws://%s", net.JoinHostPort(host, port))
}
