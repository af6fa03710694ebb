package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seodeck/internal/api"
	"seodeck/internal/config"
	"seodeck/internal/prefs"
	"seodeck/internal/state"
	"seodeck/internal/ui"
)

// Options configure the seodeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/seodeck/prefs.toml
	APIURL     string // overrides config and environment when set
	PollEvery  int    // seconds; zero uses config/default
}

// Run boots the seodeck TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if u := strings.TrimSpace(opts.APIURL); u != "" {
		cfg.APIURL = strings.TrimRight(u, "/")
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	logger := newLogger(cfg.LogFile)

	client, err := api.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}
	store.SetView(ui.ViewByName(userPrefs.DefaultView))

	dispatcher := NewDispatcher(client, store, logger, cfg.SettleDelay)

	// Start background poller
	StartPoller(ctx, store, client, logger, cfg.PollInterval)

	// Do initial refresh to populate store before UI starts
	refreshVisible(ctx, store, client, logger)

	uiOpts := ui.Options{
		Context:    ctx,
		Store:      store,
		Dispatcher: dispatcher,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
