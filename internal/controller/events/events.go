// internal/controller/events/events.go
package events

import (
	"context"
	"encoding/json"
	"regexp"
	"sync"
	"time"

	"eventflow-client/internal/api"
	"eventflow-client/internal/domain/event"
	"eventflow-client/internal/pkg/session"
	"eventflow-client/internal/router"

	"go.uber.org/zap"
)

type State int

const (
	StateLoading State = iota
	StateDisplayed
	StateEmpty
	StateDegraded
)

// DegradedBanner is the non-blocking warning shown while the fixed
// sample dataset stands in for live data.
const DegradedBanner = "Não foi possível carregar os eventos do servidor. Exibindo dados de demonstração."

var isoLikeRx = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}`)

// Controller drives the public event listing:
// loading → {displayed, empty, degraded}. Any fetch failure, auth
// failures included, falls back to the sample dataset with a visible
// banner: this screen must always render something.
type Controller struct {
	apiClient *api.Client
	sessions  session.Store
	nav       router.Navigator
	logger    *zap.Logger
	watcher   *session.Watcher

	mu     sync.Mutex
	closed bool
	state  State
	events []event.Event
	banner string
	user   session.Session
}

func New(apiClient *api.Client, sessions session.Store, nav router.Navigator, pollInterval time.Duration, logger *zap.Logger) *Controller {
	c := &Controller{
		apiClient: apiClient,
		sessions:  sessions,
		nav:       nav,
		logger:    logger,
		state:     StateLoading,
	}
	c.watcher = session.NewWatcher(sessions, pollInterval, c.onSessionChange)
	return c
}

// Start begins session-presence watching (5s poll plus Notify trigger).
func (c *Controller) Start() {
	c.watcher.Start()
}

func (c *Controller) onSessionChange(s session.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.user = s
}

// Load fetches the listing. The backend answers either with a bare array
// or with {content: [...]}.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state = StateLoading
	c.banner = ""
	c.mu.Unlock()

	out := c.apiClient.Get(ctx, "/api/v1/evento")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if out.Kind != api.KindSuccess {
		c.logger.Warn("event fetch failed, serving sample data",
			zap.String("outcome", out.Kind.String()),
			zap.Int("status", out.Status),
		)
		c.events = SampleEvents()
		c.state = StateDegraded
		c.banner = DegradedBanner
		return
	}

	c.events = decodeListing(out.Body)
	if len(c.events) == 0 {
		c.state = StateEmpty
		return
	}
	c.state = StateDisplayed
}

func decodeListing(body []byte) []event.Event {
	var list []event.Event
	if err := json.Unmarshal(body, &list); err == nil {
		return list
	}
	var wrapped struct {
		Content []event.Event `json:"content"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Content
	}
	return nil
}

// Logout clears the stored session and returns to the home screen.
func (c *Controller) Logout() {
	if err := c.sessions.Clear(); err != nil {
		c.logger.Warn("logout clear failed", zap.Error(err))
	}
	c.watcher.Notify()
	c.nav.Navigate(router.RouteHome)
}

// CurrentUser returns the latest session snapshot seen by the watcher.
func (c *Controller) CurrentUser() session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Events() []event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events
}

func (c *Controller) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

// FormatDate renders a backend date for display. Pre-formatted
// "DD/MM/YYYY HH:mm" strings pass through; ISO-like values are
// reformatted locally; empty means the date was not informed.
func FormatDate(raw string) string {
	if raw == "" {
		return "Data não informada"
	}
	if isoLikeRx.MatchString(raw) {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t.Local().Format("02/01/2006 15:04")
		}
	}
	return raw
}

// Close stops the watcher and suppresses late updates.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.watcher.Stop()
}

// SampleEvents is the fixed fallback dataset for degraded mode.
func SampleEvents() []event.Event {
	return []event.Event{
		{
			ID:         1,
			Nome:       "Feira de Tecnologia",
			Descricao:  "Uma feira com palestras e workshops sobre desenvolvimento.",
			Tipo:       "CONFERENCIA",
			Local:      "Criciúma - Centro de Convenções",
			DataInicio: "01/12/2025 09:00",
			DataFinal:  "01/12/2025 18:00",
			LinkEvento: "https://example.com/evento/1",
			LinkImagem: "https://images.unsplash.com/photo-1551836022-d5d88e9218df?w=1200&q=80",
		},
		{
			ID:         2,
			Nome:       "Workshop React Avançado",
			Descricao:  "Hands-on para elevar seu conhecimento em React e Next.js.",
			Tipo:       "WORKSHOP",
			Local:      "Auditório B",
			DataInicio: "05/12/2025 14:00",
			DataFinal:  "05/12/2025 17:00",
			LinkImagem: "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=800&q=60",
		},
		{
			ID:         3,
			Nome:       "Encontro de Comunidade",
			Descricao:  "Networking, lightning talks e café.",
			Tipo:       "MEETUP",
			Local:      "Espaço Comunitário",
			DataInicio: "10/12/2025 19:00",
			DataFinal:  "10/12/2025 21:00",
			LinkEvento: "https://example.com/evento/3",
		},
	}
}
