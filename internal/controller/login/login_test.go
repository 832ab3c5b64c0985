package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"eventflow-client/internal/api"
	"eventflow-client/internal/pkg/session"
	"eventflow-client/internal/router"

	"go.uber.org/zap"
)

type memStore struct {
	mu sync.Mutex
	s  session.Session
}

func (m *memStore) Save(s session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *memStore) Load() session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = session.Session{}
	return nil
}

type navRecorder struct {
	mu     sync.Mutex
	routes []router.Route
}

func (n *navRecorder) Navigate(r router.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, r)
}

func (n *navRecorder) last() (router.Route, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return router.Route{}, false
	}
	return n.routes[len(n.routes)-1], true
}

func newController(t *testing.T, handler http.HandlerFunc) (*Controller, *memStore, *navRecorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := &memStore{}
	nav := &navRecorder{}
	client := api.NewClient(srv.URL, time.Second, store, zap.NewNop())
	c := New(client, store, nav, zap.NewNop())
	c.redirectDelay = 5 * time.Millisecond
	return c, store, nav
}

func TestSubmitSuccessSavesSessionAndRedirects(t *testing.T) {
	c, store, nav := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-1","perfil":"admin","nome":"Ana","id":"u-1"}`))
	})

	c.SetForm("ana@example.com", "senha123")
	c.Submit(context.Background())

	if got := c.State(); got != StateRedirecting {
		t.Fatalf("state = %d, want redirecting", got)
	}
	if c.Message() != "Login realizado com sucesso! Redirecionando..." {
		t.Fatalf("message = %q", c.Message())
	}
	s := store.Load()
	if s.Token != "tok-1" || s.Role != "admin" {
		t.Fatalf("session not saved: %+v", s)
	}

	deadline := time.Now().Add(time.Second)
	for {
		if r, ok := nav.last(); ok {
			if r != router.RouteAdminDashboard {
				t.Fatalf("navigated to %+v, want admin dashboard", r)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("redirect never fired")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSubmitSuccessWithoutTokenSavesNothing(t *testing.T) {
	c, store, _ := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"perfil":"admin","nome":"Ana"}`))
	})

	c.SetForm("ana@example.com", "senha123")
	c.Submit(context.Background())

	if c.State() != StateIdle {
		t.Fatalf("state = %d, want idle", c.State())
	}
	if store.Load().LoggedIn() {
		t.Fatal("session saved from a token-less payload")
	}
	if c.Message() != "Resposta da API inválida. Entre em contato com o suporte." {
		t.Fatalf("message = %q", c.Message())
	}
}

func TestSubmitWrongCredentials(t *testing.T) {
	c, _, _ := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c.SetForm("ana@example.com", "errada")
	c.Submit(context.Background())

	if c.State() != StateIdle {
		t.Fatalf("state = %d, want idle", c.State())
	}
	if c.Message() != "Email ou senha incorretos. Verifique suas credenciais." {
		t.Fatalf("message = %q", c.Message())
	}
}

func TestSubmitRateLimited(t *testing.T) {
	c, _, _ := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	c.SetForm("ana@example.com", "senha123")
	c.Submit(context.Background())

	if c.Message() != "Muitas tentativas de login. Tente novamente em alguns minutos." {
		t.Fatalf("message = %q", c.Message())
	}
}

func TestSubmitValidationFieldMessage(t *testing.T) {
	c, _, _ := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":{"email":"Email é obrigatório","senha":"Senha muito curta"}}`))
	})

	c.SetForm("ana@example.com", "senha123")
	c.Submit(context.Background())

	if c.Message() != "Erro: Email é obrigatório" {
		t.Fatalf("message = %q", c.Message())
	}
}

func TestSubmitLocalValidation(t *testing.T) {
	requests := 0
	c, _, _ := newController(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	c.SetForm("", "")
	c.Submit(context.Background())
	if c.Message() != "Por favor, preencha todos os campos." {
		t.Fatalf("message = %q", c.Message())
	}

	c.SetForm("nao-e-email", "senha123")
	c.Submit(context.Background())
	if c.Message() != "Por favor, insira um email válido." {
		t.Fatalf("message = %q", c.Message())
	}

	if requests != 0 {
		t.Fatalf("local validation should not hit the network, got %d requests", requests)
	}
}

func TestCheckExistingRedirectsByRole(t *testing.T) {
	c, store, nav := newController(t, func(w http.ResponseWriter, r *http.Request) {})

	if c.CheckExisting() {
		t.Fatal("no session stored, should not redirect")
	}

	store.Save(session.Session{Token: "tok", Role: "organizador"})
	if !c.CheckExisting() {
		t.Fatal("stored session should redirect")
	}
	if r, _ := nav.last(); r != router.RouteOrganizerEvents {
		t.Fatalf("navigated to %+v", r)
	}
}

func TestCloseSuppressesPendingRedirect(t *testing.T) {
	c, _, nav := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-1","perfil":"admin","nome":"Ana"}`))
	})
	c.redirectDelay = 50 * time.Millisecond

	c.SetForm("ana@example.com", "senha123")
	c.Submit(context.Background())
	c.Close()

	time.Sleep(100 * time.Millisecond)
	if _, ok := nav.last(); ok {
		t.Fatal("redirect fired after Close")
	}
}
