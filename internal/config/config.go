// Package config loads configuration for the pointcast host daemon.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr        = "0.0.0.0:8765"
	defaultBroadcastEnabled  = true
	defaultBroadcastPort     = 8766
	defaultBroadcastInterval = 2 * time.Second
	defaultJoystickSens      = 1.0
	defaultScrollSens        = 20.0
	defaultSmoothing         = 0.4
)

// Config holds runtime configuration for the host daemon.
type Config struct {
	ListenAddr        string
	BroadcastEnabled  bool
	BroadcastPort     int
	BroadcastInterval time.Duration
	JoystickSens      float64
	ScrollSens        float64
	Smoothing         float64
}

// fileConfig mirrors the optional YAML config file. Pointer fields
// distinguish "absent" from zero values.
type fileConfig struct {
	ListenAddr          string   `yaml:"listen_addr"`
	Broadcast           *bool    `yaml:"broadcast"`
	BroadcastPort       int      `yaml:"broadcast_port"`
	BroadcastIntervalMs int      `yaml:"broadcast_interval_ms"`
	JoystickSensitivity *float64 `yaml:"joystick_sensitivity"`
	ScrollSensitivity   *float64 `yaml:"scroll_sensitivity"`
	Smoothing           *float64 `yaml:"smoothing"`
}

// Load builds the configuration from defaults, the optional YAML file at
// path, a ./.env file, and environment variable overrides, in that order.
func Load(path string) (Config, error) {
	cfg := Config{
		ListenAddr:        defaultListenAddr,
		BroadcastEnabled:  defaultBroadcastEnabled,
		BroadcastPort:     defaultBroadcastPort,
		BroadcastInterval: defaultBroadcastInterval,
		JoystickSens:      defaultJoystickSens,
		ScrollSens:        defaultScrollSens,
		Smoothing:         defaultSmoothing,
	}

	if err := applyFile(&cfg, path); err != nil {
		return Config{}, err
	}
	if err := loadEnvFile(".env"); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyFile overlays values from the YAML file at path when it exists.
func applyFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if fc.Broadcast != nil {
		cfg.BroadcastEnabled = *fc.Broadcast
	}
	if fc.BroadcastPort > 0 {
		cfg.BroadcastPort = fc.BroadcastPort
	}
	if fc.BroadcastIntervalMs > 0 {
		cfg.BroadcastInterval = time.Duration(fc.BroadcastIntervalMs) * time.Millisecond
	}
	if fc.JoystickSensitivity != nil {
		cfg.JoystickSens = *fc.JoystickSensitivity
	}
	if fc.ScrollSensitivity != nil {
		cfg.ScrollSens = *fc.ScrollSensitivity
	}
	if fc.Smoothing != nil {
		cfg.Smoothing = *fc.Smoothing
	}
	return nil
}

// applyEnv overlays environment variable overrides.
func applyEnv(cfg *Config) error {
	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.BroadcastEnabled = envBool("BROADCAST_ENABLED", cfg.BroadcastEnabled)

	port, err := envInt("BROADCAST_PORT", cfg.BroadcastPort)
	if err != nil {
		return err
	}
	cfg.BroadcastPort = port

	intervalMs, err := envInt("BROADCAST_INTERVAL_MS", int(cfg.BroadcastInterval/time.Millisecond))
	if err != nil {
		return err
	}
	cfg.BroadcastInterval = time.Duration(intervalMs) * time.Millisecond

	joySens, err := envFloat("JOYSTICK_SENSITIVITY", cfg.JoystickSens)
	if err != nil {
		return err
	}
	cfg.JoystickSens = joySens

	scrollSens, err := envFloat("SCROLL_SENSITIVITY", cfg.ScrollSens)
	if err != nil {
		return err
	}
	cfg.ScrollSens = scrollSens

	smoothing, err := envFloat("SMOOTHING", cfg.Smoothing)
	if err != nil {
		return err
	}
	cfg.Smoothing = smoothing
	return nil
}

// validate rejects values the pointer engine cannot work with.
func validate(cfg Config) error {
	if cfg.BroadcastPort <= 0 || cfg.BroadcastPort > 65535 {
		return fmt.Errorf("BROADCAST_PORT must be 1-65535")
	}
	if cfg.BroadcastInterval <= 0 {
		return fmt.Errorf("BROADCAST_INTERVAL_MS must be > 0")
	}
	if cfg.JoystickSens <= 0 {
		return fmt.Errorf("JOYSTICK_SENSITIVITY must be > 0")
	}
	if cfg.ScrollSens <= 0 {
		return fmt.Errorf("SCROLL_SENSITIVITY must be > 0")
	}
	if cfg.Smoothing <= 0 || cfg.Smoothing > 1 {
		return fmt.Errorf("SMOOTHING must be in (0,1]")
	}
	return nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding
// variables already present in the environment.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
