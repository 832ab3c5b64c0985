// internal/controller/useradmin/useradmin.go
package useradmin

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"eventflow-client/internal/api"
	"eventflow-client/internal/domain/user"
	"eventflow-client/internal/pkg/sched"
	"eventflow-client/internal/router"

	"go.uber.org/zap"
)

type State int

const (
	StateLoading State = iota
	StateLoaded
)

const (
	// ItemsPerPage is the fixed page size of the admin table.
	ItemsPerPage = 10

	redirectDelay     = 2 * time.Second
	successMessageTTL = 3 * time.Second
	filterAll         = "todos"
)

// Controller drives the user administration screen. The loaded snapshot
// is read-only; search, type filter and page index are pure derived
// views over it (filter first, then slice). Mutations reload the whole
// snapshot instead of patching it.
type Controller struct {
	apiClient *api.Client
	nav       router.Navigator
	logger    *zap.Logger

	mu         sync.Mutex
	closed     bool
	state      State
	users      []user.User
	errorMsg   string
	successMsg string

	busca      string
	filtroTipo string
	pagina     int

	redirect     *sched.Task
	successTimer *sched.Task
}

func New(apiClient *api.Client, nav router.Navigator, logger *zap.Logger) *Controller {
	return &Controller{
		apiClient:  apiClient,
		nav:        nav,
		logger:     logger,
		filtroTipo: filterAll,
		pagina:     1,
	}
}

// Load fetches the user snapshot.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state = StateLoading
	c.errorMsg = ""
	c.mu.Unlock()

	out := c.apiClient.Get(ctx, "/api/usuarios")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state = StateLoaded

	switch out.Kind {
	case api.KindSuccess:
		var users []user.User
		if err := out.Decode(&users); err != nil {
			c.errorMsg = "Erro ao carregar usuários. Tente novamente."
			return
		}
		c.users = users
	case api.KindSessionExpired:
		c.errorMsg = "Sessão expirada. Faça login novamente."
		c.redirect = sched.After(redirectDelay, func() {
			c.mu.Lock()
			if c.closed {
				c.mu.Unlock()
				return
			}
			c.mu.Unlock()
			c.nav.Navigate(router.RouteLogin)
		})
	case api.KindForbidden:
		c.errorMsg = "Você não tem permissão para acessar esta página."
	case api.KindNetworkError:
		c.errorMsg = "Não foi possível conectar ao servidor."
	default:
		c.errorMsg = "Erro ao carregar usuários. Tente novamente."
		c.logger.Warn("user load failed",
			zap.String("outcome", out.Kind.String()),
			zap.Int("status", out.Status),
		)
	}
}

// Delete removes a user after a blocking confirmation. The confirm
// callback runs before any network call; declining aborts silently.
// Success reloads the snapshot rather than patching it.
func (c *Controller) Delete(ctx context.Context, id string, confirm func() bool) {
	if confirm != nil && !confirm() {
		return
	}

	out := c.apiClient.Delete(ctx, "/api/usuarios/"+id)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if out.Kind != api.KindSuccess {
		c.errorMsg = "Erro ao excluir usuário. Tente novamente."
		c.logger.Warn("user delete failed",
			zap.String("user_id", id),
			zap.String("outcome", out.Kind.String()),
		)
		c.mu.Unlock()
		return
	}
	c.successMsg = "Usuário excluído com sucesso!"
	c.successTimer = sched.After(successMessageTTL, func() {
		c.mu.Lock()
		if !c.closed {
			c.successMsg = ""
		}
		c.mu.Unlock()
	})
	c.mu.Unlock()

	c.Load(ctx)
}

// SetBusca updates the search text and resets to the first page.
func (c *Controller) SetBusca(busca string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busca = busca
	c.pagina = 1
}

// SetFiltroTipo sets the type filter: "todos" or a numeric type string.
func (c *Controller) SetFiltroTipo(filtro string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if filtro == "" {
		filtro = filterAll
	}
	c.filtroTipo = filtro
	c.pagina = 1
}

// Filtered applies search and type filter over the snapshot. Search
// matches nome and email case-insensitively and CPF as a raw substring.
func (c *Controller) Filtered() []user.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

func (c *Controller) filteredLocked() []user.User {
	busca := strings.ToLower(c.busca)
	var out []user.User
	for _, u := range c.users {
		buscaMatch := busca == "" ||
			strings.Contains(strings.ToLower(u.Nome), busca) ||
			strings.Contains(strings.ToLower(u.Email), busca) ||
			strings.Contains(u.CPF, c.busca)
		tipoMatch := c.filtroTipo == filterAll || strconv.Itoa(u.Tipo) == c.filtroTipo
		if buscaMatch && tipoMatch {
			out = append(out, u)
		}
	}
	return out
}

// TotalPages derives the page count from the filtered view.
func (c *Controller) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPages(len(c.filteredLocked()))
}

func totalPages(n int) int {
	return (n + ItemsPerPage - 1) / ItemsPerPage
}

// Page returns the current page slice: filter always re-applies before
// slicing.
func (c *Controller) Page() []user.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filteredLocked()
	start := (c.pagina - 1) * ItemsPerPage
	if start >= len(filtered) {
		return nil
	}
	end := start + ItemsPerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// GoToPage moves to page p when it is within range.
func (c *Controller) GoToPage(p int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p >= 1 && p <= totalPages(len(c.filteredLocked())) {
		c.pagina = p
	}
}

func (c *Controller) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagina
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Users returns the full unfiltered snapshot.
func (c *Controller) Users() []user.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users
}

func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorMsg
}

func (c *Controller) SuccessMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.successMsg
}

// Close cancels pending timers and suppresses late updates.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	redirect, successTimer := c.redirect, c.successTimer
	c.mu.Unlock()
	redirect.Cancel()
	successTimer.Cancel()
}
