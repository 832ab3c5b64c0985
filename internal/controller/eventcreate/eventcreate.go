// internal/controller/eventcreate/eventcreate.go
package eventcreate

import (
	"context"
	"sync"
	"time"

	"eventflow-client/internal/api"
	"eventflow-client/internal/domain/event"
	"eventflow-client/internal/pkg/sched"
	"eventflow-client/internal/pkg/session"
	"eventflow-client/internal/router"

	"go.uber.org/zap"
)

type State int

const (
	StateEditing State = iota
	StateSubmitting
)

// DefaultRedirectDelay before leaving the screen after a successful
// create or an expired session.
const DefaultRedirectDelay = 2 * time.Second

// Form holds the event creation fields as entered. Dates use the
// datetime-local input layout and are converted to the backend's
// "DD/MM/YYYY HH:mm" wire format on submit.
type Form struct {
	Nome       string
	Descricao  string
	Tipo       string
	Local      string
	DataInicio string
	DataFinal  string
	LinkEvento string
	LinkImagem string
}

// Controller drives event creation:
// editing → submitting → {success, editing with field errors}.
type Controller struct {
	apiClient     *api.Client
	sessions      session.Store
	nav           router.Navigator
	logger        *zap.Logger
	redirectDelay time.Duration

	mu        sync.Mutex
	closed    bool
	state     State
	form      Form
	errors    map[string]string
	message   string
	submitted bool
	redirect  *sched.Task
}

func New(apiClient *api.Client, sessions session.Store, nav router.Navigator, logger *zap.Logger) *Controller {
	return &Controller{
		apiClient:     apiClient,
		sessions:      sessions,
		nav:           nav,
		logger:        logger,
		redirectDelay: DefaultRedirectDelay,
		errors:        map[string]string{},
	}
}

func (c *Controller) SetForm(form Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = form
}

// FormatEventDate converts a datetime-local value to the backend wire
// format. Empty input stays empty.
func FormatEventDate(local string) string {
	if local == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02T15:04", local)
	if err != nil {
		return local
	}
	return t.Format("02/01/2006 15:04")
}

// Submit posts the event. A second call while one is in flight is ignored.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.state == StateSubmitting {
		c.mu.Unlock()
		return
	}
	c.state = StateSubmitting
	c.submitted = true
	c.message = ""
	c.errors = map[string]string{}

	payload := event.Event{
		Nome:       c.form.Nome,
		Descricao:  c.form.Descricao,
		Tipo:       c.form.Tipo,
		Local:      c.form.Local,
		DataInicio: FormatEventDate(c.form.DataInicio),
		DataFinal:  FormatEventDate(c.form.DataFinal),
		LinkEvento: c.form.LinkEvento,
		LinkImagem: c.form.LinkImagem,
	}
	c.mu.Unlock()

	out := c.apiClient.Post(ctx, "/api/v1/evento", payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state = StateEditing

	switch out.Kind {
	case api.KindSuccess:
		c.message = "Evento criado com sucesso!"
		c.form = Form{}
		c.submitted = false
		c.scheduleNavigate(router.RouteEvents)
	case api.KindValidationError:
		if out.Fields != nil {
			c.errors = out.Fields
		}
		c.message = "É necessário preencher os campos obrigatórios."
	case api.KindSessionExpired:
		c.message = "Sessão expirada. Faça login novamente."
		if err := c.sessions.Clear(); err != nil {
			c.logger.Warn("session clear failed", zap.Error(err))
		}
		c.scheduleNavigate(router.RouteLogin)
	case api.KindForbidden:
		c.message = "Você não tem permissão para criar eventos."
	default:
		if out.Message != "" {
			c.message = "Erro: " + out.Message
		} else {
			c.message = "Erro inesperado ao criar evento. Tente novamente."
		}
		c.logger.Warn("event create failed",
			zap.String("outcome", out.Kind.String()),
			zap.Int("status", out.Status),
		)
	}
}

func (c *Controller) scheduleNavigate(dest router.Route) {
	c.redirect = sched.After(c.redirectDelay, func() {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
		c.nav.Navigate(dest)
	})
}

// MissingField marks a required field, but only after the first submit
// attempt: pre-submit nothing is marked.
func (c *Controller) MissingField(field string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.submitted {
		return false
	}
	if _, bad := c.errors[field]; bad {
		return true
	}
	return c.fieldValue(field) == ""
}

func (c *Controller) fieldValue(field string) string {
	switch field {
	case "nome":
		return c.form.Nome
	case "descricao":
		return c.form.Descricao
	case "tipo":
		return c.form.Tipo
	case "local":
		return c.form.Local
	case "dataInicio":
		return c.form.DataInicio
	case "dataFinal":
		return c.form.DataFinal
	case "linkEvento":
		return c.form.LinkEvento
	case "linkImagem":
		return c.form.LinkImagem
	default:
		return ""
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors
}

func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Close cancels any pending redirect and suppresses late updates.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	redirect := c.redirect
	c.mu.Unlock()
	redirect.Cancel()
}
