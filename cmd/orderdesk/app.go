package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/wholesalemart/orderdesk/internal/core/ports"
	"github.com/wholesalemart/orderdesk/internal/core/service"
	"github.com/wholesalemart/orderdesk/internal/infrastructure/api"
	"github.com/wholesalemart/orderdesk/internal/infrastructure/config"
	"github.com/wholesalemart/orderdesk/internal/infrastructure/store"
	"github.com/wholesalemart/orderdesk/internal/nav"
	"github.com/wholesalemart/orderdesk/pkg/logger"
)

// app wires the client core together: one store, one session, one cart, one
// gateway per process.
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	store   ports.Store
	session ports.SessionService
	cart    ports.CartService
	gateway ports.Gateway
	nav     *termNavigator
}

// termNavigator is the CLI's stand-in for route changes: it tracks the
// current path and tells the user where they ended up.
type termNavigator struct {
	current string
}

func (n *termNavigator) NavigateTo(path string) {
	n.current = path
	color.New(color.Faint).Fprintf(os.Stderr, "→ %s\n", path)
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	navigator := &termNavigator{current: nav.RouteLanding}
	signals := service.NewSignals()
	session := service.NewSessionService(st, navigator, signals, log)
	cart := service.NewCartService(st, signals, log)
	gateway := api.New(cfg.APIURL, cfg.HTTPTimeout, session, log)

	// Restore persisted state before any command runs; access-control
	// decisions wait for the loading flag to clear.
	session.Initialize(ctx)
	cart.Restore(ctx)

	return &app{
		cfg:     cfg,
		logger:  log,
		store:   st,
		session: session,
		cart:    cart,
		gateway: gateway,
		nav:     navigator,
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (ports.Store, error) {
	switch cfg.Store.Backend {
	case "redis":
		client, err := store.Connect(ctx, store.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, fmt.Errorf("connecting state store: %w", err)
		}
		return store.NewRedisStore(client), nil
	case "file", "":
		dir := cfg.Store.Dir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolving home dir: %w", err)
			}
			dir = filepath.Join(home, ".orderdesk")
		}
		return store.NewFileStore(dir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// guard gates a command on its route, mirroring the web client's protected
// views: redirects are announced and the command is aborted.
func (a *app) guard(path string) error {
	decision := nav.Guard(a.session.Current(), a.session.Loading(), path)
	switch decision.Kind {
	case nav.Render:
		a.nav.current = path
		return nil
	case nav.Pending:
		return errors.New("session is still loading")
	default:
		color.Yellow("You don't have access to %s.", path)
		a.nav.NavigateTo(decision.Target)
		return errRedirected
	}
}

var errRedirected = errors.New("redirected")
