// internal/controller/signup/signup.go
package signup

import (
	"sync"

	"eventflow-client/internal/domain/auth"

	"go.uber.org/zap"
)

type State int

const (
	StateEditing State = iota
	StateSuccess
)

// Controller drives the registration screen. Validation is local only:
// the password fields must match; a matching submission is this screen's
// terminal success state and its payload is handed off to the account
// creation endpoint by the host.
type Controller struct {
	logger *zap.Logger

	mu      sync.Mutex
	form    auth.SignupForm
	state   State
	message string
}

func New(logger *zap.Logger) *Controller {
	return &Controller{logger: logger}
}

// SetForm replaces the form fields.
func (c *Controller) SetForm(form auth.SignupForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = form
}

// Submit validates locally. Returns true when the submission is accepted.
func (c *Controller) Submit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.form.Senha != c.form.ConfirmSenha {
		c.message = "As senhas não coincidem!"
		c.state = StateEditing
		return false
	}

	c.state = StateSuccess
	c.message = ""
	c.logger.Info("signup accepted", zap.String("email", c.form.Email))
	return true
}

// Payload returns the accepted form for the account creation hand-off.
func (c *Controller) Payload() auth.SignupForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
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
