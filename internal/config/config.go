package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything seodeck needs to talk to the agent backend.
type Config struct {
	APIURL         string
	PollInterval   time.Duration
	SettleDelay    time.Duration
	RequestTimeout time.Duration
	LogFile        string
}

const (
	defaultConfigPath = "~/.config/seodeck/config.toml"
	defaultAPIURL     = "http://localhost:8000"

	defaultPollInterval   = 10 * time.Second
	defaultSettleDelay    = 1500 * time.Millisecond
	defaultRequestTimeout = 30 * time.Second
)

// Environment variables override the config file. NEXT_PUBLIC_API_URL is the
// name the web dashboard used; it is honored so one .env can serve both.
const (
	envAPIURL       = "SEODECK_API_URL"
	envLegacyAPIURL = "NEXT_PUBLIC_API_URL"
)

// Load locates and parses the seodeck config, falling back to defaults when
// the file is missing. Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:         defaultAPIURL,
		PollInterval:   defaultPollInterval,
		SettleDelay:    defaultSettleDelay,
		RequestTimeout: defaultRequestTimeout,
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		PollSeconds    int    `toml:"poll_seconds"`
		SettleMS       int    `toml:"settle_ms"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if u := strings.TrimSpace(raw.APIURL); u != "" {
		cfg.APIURL = u
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.SettleMS > 0 {
		cfg.SettleDelay = time.Duration(raw.SettleMS) * time.Millisecond
	}
	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if f := strings.TrimSpace(raw.LogFile); f != "" {
		cfg.LogFile = mustExpand(f)
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	for _, key := range []string{envAPIURL, envLegacyAPIURL} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			cfg.APIURL = v
			break
		}
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
