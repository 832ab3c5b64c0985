// internal/stub/store.go
package stub

import (
	"strings"
	"sync"

	"eventflow-client/internal/domain/event"
	"eventflow-client/internal/domain/user"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

// Account is a stored user plus its credentials and role string.
type Account struct {
	user.User
	Perfil       string
	PasswordHash []byte
}

// Store is the stub's in-memory state. Everything resets on restart;
// persistence belongs to the real backend.
type Store struct {
	mu          sync.Mutex
	accounts    map[string]*Account // keyed by id
	events      []event.Event
	nextEventID int64
}

func NewStore() *Store {
	return &Store{
		accounts:    make(map[string]*Account),
		nextEventID: 1,
	}
}

// Seed loads the development fixtures: one account per role and the
// sample events the client also carries for degraded mode.
func (s *Store) Seed() error {
	seedAccounts := []struct {
		nome, email, cpf, telefone, nascimento, perfil, senha string
		tipo                                                  int
	}{
		{"Ana Admin", "admin@eventflow.dev", "111.111.111-11", "(48) 99999-0001", "1990-01-15", "admin", "admin123", user.TypeAdmin},
		{"Otávio Organizador", "organizador@eventflow.dev", "222.222.222-22", "(48) 99999-0002", "1988-06-30", "organizador", "organiza123", user.TypeEmployee},
		{"Paula Participante", "participante@eventflow.dev", "333.333.333-33", "(48) 99999-0003", "1995-11-02", "participante", "participa123", user.TypeClient},
	}

	for _, a := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.senha), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		s.AddAccount(&Account{
			User: user.User{
				ID:             ulid.Make().String(),
				Nome:           a.nome,
				Email:          a.email,
				CPF:            a.cpf,
				Telefone:       a.telefone,
				Tipo:           a.tipo,
				DataNascimento: a.nascimento,
				CreatedAt:      "2025-01-10T09:00:00Z",
			},
			Perfil:       a.perfil,
			PasswordHash: hash,
		})
	}

	s.mu.Lock()
	for _, ev := range sampleSeedEvents() {
		ev.ID = s.nextEventID
		s.nextEventID++
		s.events = append(s.events, ev)
	}
	s.mu.Unlock()
	return nil
}

func sampleSeedEvents() []event.Event {
	return []event.Event{
		{
			Nome:       "Hackathon EventFlow",
			Descricao:  "48 horas de construção de produtos em equipe.",
			Tipo:       "HACKATON",
			Local:      "Campus Universitário",
			DataInicio: "15/11/2025 08:00",
			DataFinal:  "17/11/2025 08:00",
			LinkEvento: "https://eventflow.dev/hackathon",
		},
		{
			Nome:       "Treinamento de Liderança",
			Descricao:  "Capacitação para novos gestores.",
			Tipo:       "TREINAMENTO",
			Local:      "Sala 204",
			DataInicio: "20/11/2025 09:00",
			DataFinal:  "20/11/2025 17:00",
		},
	}
}

// AddAccount stores an account.
func (s *Store) AddAccount(a *Account) {
	s.mu.Lock()
	s.accounts[a.ID] = a
	s.mu.Unlock()
}

// FindByEmail looks an account up by email, case-insensitive.
func (s *Store) FindByEmail(email string) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, true
		}
	}
	return nil, false
}

// EmailOrCPFExists reports whether another account already uses the
// email or CPF.
func (s *Store) EmailOrCPFExists(email, cpf string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) || (cpf != "" && a.CPF == cpf) {
			return true
		}
	}
	return false
}

// Users returns the stored users sorted by creation order of the map
// walk; the client orders them itself.
func (s *Store) Users() []user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]user.User, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a.User)
	}
	return out
}

// DeleteUser removes an account, reporting whether it existed.
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return false
	}
	delete(s.accounts, id)
	return true
}

// Events returns the stored events.
func (s *Store) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out
}

// AddEvent assigns an id and stores the event.
func (s *Store) AddEvent(ev event.Event) event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev.ID = s.nextEventID
	s.nextEventID++
	s.events = append(s.events, ev)
	return ev
}
