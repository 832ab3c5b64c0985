// internal/controller/login/login.go
package login

import (
	"context"
	"net/http"
	"regexp"
	"sort"
	"sync"
	"time"

	"eventflow-client/internal/api"
	"eventflow-client/internal/domain/auth"
	"eventflow-client/internal/pkg/sched"
	"eventflow-client/internal/pkg/session"
	"eventflow-client/internal/router"

	"go.uber.org/zap"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateRedirecting
)

// DefaultRedirectDelay keeps the success message visible before leaving
// the screen.
const DefaultRedirectDelay = 1500 * time.Millisecond

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Controller drives the login screen lifecycle:
// idle → submitting → {redirecting, idle}.
type Controller struct {
	apiClient     *api.Client
	sessions      session.Store
	nav           router.Navigator
	logger        *zap.Logger
	redirectDelay time.Duration

	mu       sync.Mutex
	closed   bool
	state    State
	email    string
	senha    string
	message  string
	redirect *sched.Task
}

func New(apiClient *api.Client, sessions session.Store, nav router.Navigator, logger *zap.Logger) *Controller {
	return &Controller{
		apiClient:     apiClient,
		sessions:      sessions,
		nav:           nav,
		logger:        logger,
		redirectDelay: DefaultRedirectDelay,
	}
}

// SetForm updates the form fields. No validation happens until Submit.
func (c *Controller) SetForm(email, senha string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.email = email
	c.senha = senha
}

// CheckExisting redirects straight to the role's destination when a
// session is already stored, as the web login page does on mount.
// Returns true when a redirect happened.
func (c *Controller) CheckExisting() bool {
	s := c.sessions.Load()
	if !s.LoggedIn() || s.Role == "" {
		return false
	}
	c.nav.Navigate(router.RouteFor(s.Role))
	return true
}

// Submit runs the login attempt. A second call while one is in flight is
// ignored; that is the double-click guard.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.state == StateSubmitting {
		c.mu.Unlock()
		return
	}

	email, senha := c.email, c.senha
	c.message = ""

	if email == "" || senha == "" {
		c.message = "Por favor, preencha todos os campos."
		c.mu.Unlock()
		return
	}
	if !emailRx.MatchString(email) {
		c.message = "Por favor, insira um email válido."
		c.mu.Unlock()
		return
	}

	c.state = StateSubmitting
	c.mu.Unlock()

	out := c.apiClient.Post(ctx, "/api/v1/auth", auth.LoginRequest{Email: email, Senha: senha})

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if out.Kind == api.KindSuccess {
		c.finishSuccess(out)
		return
	}

	c.state = StateIdle
	c.message = failureMessage(out)
	c.logger.Warn("login failed",
		zap.String("email", email),
		zap.String("outcome", out.Kind.String()),
		zap.Int("status", out.Status),
	)
}

func (c *Controller) finishSuccess(out api.Outcome) {
	var resp auth.LoginResponse
	if err := out.Decode(&resp); err != nil {
		c.state = StateIdle
		c.message = "Resposta da API inválida. Entre em contato com o suporte."
		return
	}

	s, ok := auth.NormalizeLogin(resp)
	if !ok {
		// Success status without a usable token: never save a session.
		c.state = StateIdle
		c.message = "Resposta da API inválida. Entre em contato com o suporte."
		return
	}

	if err := c.sessions.Save(s); err != nil {
		c.logger.Error("session save failed", zap.Error(err))
	}

	c.logger.Info("user logged in",
		zap.String("user_id", s.UserID),
		zap.String("role", s.Role),
	)

	c.state = StateRedirecting
	c.message = "Login realizado com sucesso! Redirecionando..."

	dest := router.RouteFor(s.Role)
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

func failureMessage(out api.Outcome) string {
	switch out.Kind {
	case api.KindValidationError:
		if out.Status == http.StatusUnprocessableEntity {
			return "Dados de entrada inválidos. Verifique os campos informados."
		}
		if len(out.Fields) > 0 {
			return "Erro: " + firstFieldMessage(out.Fields)
		}
		return "Credenciais inválidas ou formato incorreto."
	case api.KindSessionExpired:
		// On this screen a 401 means the credentials were wrong, not
		// that an existing session expired.
		return "Email ou senha incorretos. Verifique suas credenciais."
	case api.KindForbidden:
		return "Acesso negado. Seu usuário não tem permissão para acessar o sistema."
	case api.KindNotFound:
		return "Serviço de autenticação não encontrado."
	case api.KindRateLimited:
		return "Muitas tentativas de login. Tente novamente em alguns minutos."
	case api.KindServerError:
		if out.Status == http.StatusInternalServerError {
			return "Erro interno do servidor. Tente novamente mais tarde."
		}
		return "Serviço temporariamente indisponível. Tente novamente em alguns instantes."
	case api.KindNetworkError:
		return "Não foi possível conectar ao servidor. Verifique sua conexão com a internet."
	default:
		if out.Message != "" {
			return out.Message
		}
		return "Erro ao realizar login. Tente novamente."
	}
}

func firstFieldMessage(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fields[keys[0]]
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Message returns the current user-facing message.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// ClearForm resets the fields and the message.
func (c *Controller) ClearForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.email = ""
	c.senha = ""
	c.message = ""
}

// Close cancels the pending redirect and suppresses any late updates.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	redirect := c.redirect
	c.mu.Unlock()
	redirect.Cancel()
}
