// internal/app/app.go
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"eventflow-client/internal/api"
	"eventflow-client/internal/config"
	"eventflow-client/internal/pkg/session"
	"eventflow-client/internal/router"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App hosts the screens in a terminal: it owns the session store, the
// API client and the navigation loop, and implements router.Navigator
// so controllers can request screen changes.
type App struct {
	cfg      config.AppConfig
	logger   *zap.Logger
	sessions session.Store
	client   *api.Client

	in    *bufio.Scanner
	out   io.Writer
	navCh chan router.Route
}

func New() (*App, error) {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
		navCh:  make(chan router.Route, 4),
	}
	a.sessions = buildStore(cfg, logger)
	a.client = api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, a.sessions, logger)
	return a, nil
}

func buildStore(cfg config.AppConfig, logger *zap.Logger) session.Store {
	if cfg.SessionBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		logger.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
		return session.NewRedisStore(client, "", logger)
	}
	return session.NewFileStore(cfg.SessionFile, logger)
}

// Navigate queues a destination for the screen loop. Never blocks; a
// full queue drops the oldest pending destination first.
func (a *App) Navigate(r router.Route) {
	for {
		select {
		case a.navCh <- r:
			return
		default:
			select {
			case <-a.navCh:
			default:
			}
		}
	}
}

// Run drives the screen loop until the user quits.
func (a *App) Run() error {
	defer a.logger.Sync()

	route := router.RouteHome
	for {
		next, quit := a.runScreen(route)
		if quit {
			a.logger.Info("client exiting")
			return nil
		}
		route = next
	}
}

func (a *App) runScreen(route router.Route) (router.Route, bool) {
	switch route.Path {
	case router.RouteLogin.Path:
		return a.loginScreen()
	case "/cadastro":
		return a.signupScreen()
	case "/evento/create":
		return a.eventCreateScreen()
	case router.RouteAdminDashboard.Path:
		return a.userAdminScreen()
	default:
		// Every remaining destination renders the event listing; the
		// role-specific dashboards differ only in chrome, not data.
		return a.eventsScreen(route)
	}
}

// --- terminal plumbing ---

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

func (a *App) prompt(label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return a.in.Text()
}

func (a *App) confirm(label string) bool {
	answer := a.prompt(label + " (s/n)")
	return answer == "s" || answer == "S"
}
