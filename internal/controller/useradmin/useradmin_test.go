package useradmin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"eventflow-client/internal/api"
	"eventflow-client/internal/domain/user"
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

func newController(t *testing.T, handler http.HandlerFunc) *Controller {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	nav := router.NavigatorFunc(func(router.Route) {})
	client := api.NewClient(srv.URL, time.Second, &memStore{}, zap.NewNop())
	c := New(client, nav, zap.NewNop())
	t.Cleanup(c.Close)
	return c
}

func loadedController(t *testing.T, users []user.User) *Controller {
	t.Helper()
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(users)
	})
	c.Load(context.Background())
	if c.State() != StateLoaded || c.ErrorMessage() != "" {
		t.Fatalf("load failed: state=%d err=%q", c.State(), c.ErrorMessage())
	}
	return c
}

func TestFilterSearchThenType(t *testing.T) {
	c := loadedController(t, []user.User{
		{ID: "1", Nome: "Ana", Email: "ana@example.com", Tipo: user.TypeAdmin},
		{ID: "2", Nome: "Bia", Email: "bia@example.com", Tipo: user.TypeClient},
	})

	c.SetBusca("an")
	c.SetFiltroTipo("todos")
	got := c.Filtered()
	if len(got) != 1 || got[0].Nome != "Ana" {
		t.Fatalf("busca=an: %+v", got)
	}

	c.SetBusca("")
	c.SetFiltroTipo("1")
	got = c.Filtered()
	if len(got) != 1 || got[0].Nome != "Bia" {
		t.Fatalf("filtro=1: %+v", got)
	}
}

func TestFilterMatchesCPFRaw(t *testing.T) {
	c := loadedController(t, []user.User{
		{ID: "1", Nome: "Ana", CPF: "123.456.789-00"},
		{ID: "2", Nome: "Bia", CPF: "987.654.321-00"},
	})

	c.SetBusca("123.456")
	got := c.Filtered()
	if len(got) != 1 || got[0].Nome != "Ana" {
		t.Fatalf("cpf search: %+v", got)
	}
}

func TestPagination(t *testing.T) {
	users := make([]user.User, 25)
	for i := range users {
		users[i] = user.User{ID: fmt.Sprintf("u-%02d", i), Nome: fmt.Sprintf("Usuário %02d", i)}
	}
	c := loadedController(t, users)

	if c.TotalPages() != 3 {
		t.Fatalf("TotalPages = %d, want 3", c.TotalPages())
	}
	if len(c.Page()) != ItemsPerPage {
		t.Fatalf("page 1 has %d items", len(c.Page()))
	}

	c.GoToPage(3)
	page := c.Page()
	if len(page) != 5 {
		t.Fatalf("page 3 has %d items, want 5", len(page))
	}
	if page[0].ID != "u-20" || page[4].ID != "u-24" {
		t.Fatalf("page 3 bounds: first=%s last=%s", page[0].ID, page[4].ID)
	}

	c.GoToPage(4)
	if c.CurrentPage() != 3 {
		t.Fatalf("out-of-range page accepted: %d", c.CurrentPage())
	}

	c.SetBusca("Usuário 0")
	if c.CurrentPage() != 1 {
		t.Fatal("search should reset to page 1")
	}
}

func TestLoadExpiredSessionRedirects(t *testing.T) {
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c.Load(context.Background())

	if c.ErrorMessage() != "Sessão expirada. Faça login novamente." {
		t.Fatalf("error = %q", c.ErrorMessage())
	}
	if c.redirect == nil || !c.redirect.Pending() {
		t.Fatal("expected a pending redirect to login")
	}
}

func TestLoadForbidden(t *testing.T) {
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	c.Load(context.Background())

	if c.ErrorMessage() != "Você não tem permissão para acessar esta página." {
		t.Fatalf("error = %q", c.ErrorMessage())
	}
}

func TestDeleteDeclinedConfirmSkipsNetwork(t *testing.T) {
	deletes := 0
	var mu sync.Mutex
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			mu.Lock()
			deletes++
			mu.Unlock()
		}
		json.NewEncoder(w).Encode([]user.User{})
	})

	c.Delete(context.Background(), "u-1", func() bool { return false })

	mu.Lock()
	defer mu.Unlock()
	if deletes != 0 {
		t.Fatalf("declined confirm still issued %d DELETEs", deletes)
	}
}

func TestDeleteReloadsSnapshot(t *testing.T) {
	var mu sync.Mutex
	remaining := []user.User{
		{ID: "u-1", Nome: "Ana"},
		{ID: "u-2", Nome: "Bia"},
	}
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if r.Method == http.MethodDelete {
			remaining = remaining[1:]
			w.WriteHeader(http.StatusNoContent)
			return
		}
		json.NewEncoder(w).Encode(remaining)
	})

	c.Load(context.Background())
	c.Delete(context.Background(), "u-1", func() bool { return true })

	if c.SuccessMessage() != "Usuário excluído com sucesso!" {
		t.Fatalf("success = %q", c.SuccessMessage())
	}
	users := c.Users()
	if len(users) != 1 || users[0].ID != "u-2" {
		t.Fatalf("snapshot not reloaded: %+v", users)
	}
}

func TestExportCSV(t *testing.T) {
	c := loadedController(t, []user.User{
		{
			ID:             "u-1",
			Nome:           "Ana Silva",
			Email:          "ana@example.com",
			CPF:            "123.456.789-00",
			Telefone:       "(48) 99999-0000",
			Tipo:           user.TypeAdmin,
			DataNascimento: "1990-05-20",
			CreatedAt:      "2025-01-15T10:30:00Z",
		},
	})
	c.SetBusca("não casa com nada")

	filename, content := c.ExportCSV()

	if !strings.HasPrefix(filename, "usuarios_") || !strings.HasSuffix(filename, ".csv") {
		t.Fatalf("filename = %q", filename)
	}
	lines := strings.Split(content, "\n")
	if lines[0] != csvHeader {
		t.Fatalf("header = %q", lines[0])
	}
	// Export covers the full snapshot even with an active filter.
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header plus one row", len(lines))
	}
	want := "u-1,Ana Silva,ana@example.com,123.456.789-00,(48) 99999-0000,Administrador,20/05/1990,15/01/2025"
	if lines[1] != want {
		t.Fatalf("row = %q, want %q", lines[1], want)
	}
}
