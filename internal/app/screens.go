// internal/app/screens.go
package app

import (
	"context"
	"os"
	"strconv"
	"time"

	"eventflow-client/internal/controller/eventcreate"
	"eventflow-client/internal/controller/events"
	"eventflow-client/internal/controller/login"
	"eventflow-client/internal/controller/signup"
	"eventflow-client/internal/controller/useradmin"
	"eventflow-client/internal/domain/auth"
	"eventflow-client/internal/domain/event"
	"eventflow-client/internal/domain/user"
	"eventflow-client/internal/router"
)

// waitNavigate blocks until a controller-scheduled navigation arrives or
// the deadline passes, returning the fallback in the latter case.
func (a *App) waitNavigate(deadline time.Duration, fallback router.Route) router.Route {
	select {
	case r := <-a.navCh:
		return r
	case <-time.After(deadline):
		return fallback
	}
}

func (a *App) loginScreen() (router.Route, bool) {
	ctrl := login.New(a.client, a.sessions, a, a.logger)
	defer ctrl.Close()

	if ctrl.CheckExisting() {
		return a.waitNavigate(time.Second, router.RouteHome), false
	}

	a.printf("=== Sistema de Eventos - Login ===")
	ctrl.SetForm(a.prompt("Email"), a.prompt("Senha"))
	ctrl.Submit(context.Background())
	a.printf("%s", ctrl.Message())

	if ctrl.State() == login.StateRedirecting {
		return a.waitNavigate(login.DefaultRedirectDelay+time.Second, router.RouteHome), false
	}
	return router.RouteHome, false
}

func (a *App) signupScreen() (router.Route, bool) {
	ctrl := signup.New(a.logger)

	a.printf("=== Criar Conta ===")
	form := auth.SignupForm{
		Nome:           a.prompt("Nome"),
		Email:          a.prompt("Email"),
		CPF:            a.prompt("CPF"),
		Telefone:       a.prompt("Telefone"),
		Tipo:           a.prompt("Tipo (0 Administrador, 1 Usuário Comum, 2 Organizador)"),
		DataNascimento: a.prompt("Data de Nascimento (AAAA-MM-DD)"),
		Senha:          a.prompt("Senha"),
		ConfirmSenha:   a.prompt("Confirmar Senha"),
	}
	ctrl.SetForm(form)

	if !ctrl.Submit() {
		a.printf("%s", ctrl.Message())
		return router.Route{Path: "/cadastro"}, false
	}

	// Hand the accepted form off to the account creation endpoint.
	out := a.client.Post(context.Background(), "/api/usuarios", ctrl.Payload())
	if out.Err() != nil {
		a.printf("Não foi possível concluir o cadastro: %s", out.Kind.String())
		return router.Route{Path: "/cadastro"}, false
	}
	a.printf("Conta criada com sucesso! Faça login para continuar.")
	return router.RouteLogin, false
}

func (a *App) eventsScreen(route router.Route) (router.Route, bool) {
	ctrl := events.New(a.client, a.sessions, a, a.cfg.SessionPollInterval, a.logger)
	defer ctrl.Close()
	ctrl.Start()
	ctrl.Load(context.Background())

	a.printf("=== EventFlow - %s ===", route.Label)
	if u := ctrl.CurrentUser(); u.LoggedIn() {
		a.printf("Olá, %s (%s)", u.Name(), u.Role)
	}
	if banner := ctrl.Banner(); banner != "" {
		a.printf("[aviso] %s", banner)
	}
	if ctrl.State() == events.StateEmpty {
		a.printf("Nenhum evento cadastrado.")
	}
	for _, ev := range ctrl.Events() {
		a.printEvent(ev)
	}

	a.printf("")
	a.printf("[1] Login  [2] Criar conta  [3] Criar evento  [4] Usuários  [5] Atualizar  [6] Sair da conta  [0] Encerrar")
	switch a.prompt("Opção") {
	case "1":
		return router.RouteLogin, false
	case "2":
		return router.Route{Path: "/cadastro"}, false
	case "3":
		return router.Route{Path: "/evento/create"}, false
	case "4":
		return router.RouteAdminDashboard, false
	case "5":
		return route, false
	case "6":
		ctrl.Logout()
		return a.waitNavigate(time.Second, router.RouteHome), false
	default:
		return route, true
	}
}

func (a *App) printEvent(ev event.Event) {
	a.printf("- %s [%s]", ev.Nome, ev.Tipo)
	a.printf("  %s", ev.Descricao)
	a.printf("  Local: %s | %s até %s", ev.Local, events.FormatDate(ev.DataInicio), events.FormatDate(ev.DataFinal))
	if ev.LinkEvento != "" {
		a.printf("  Link: %s", ev.LinkEvento)
	}
}

func (a *App) eventCreateScreen() (router.Route, bool) {
	ctrl := eventcreate.New(a.client, a.sessions, a, a.logger)
	defer ctrl.Close()

	a.printf("=== Criar Evento ===")
	a.printf("Tipos: %v", event.Types)
	form := eventcreate.Form{
		Nome:       a.prompt("Nome"),
		Descricao:  a.prompt("Descrição"),
		Tipo:       a.prompt("Tipo"),
		Local:      a.prompt("Local"),
		DataInicio: a.prompt("Início (AAAA-MM-DDTHH:MM)"),
		DataFinal:  a.prompt("Fim (AAAA-MM-DDTHH:MM)"),
		LinkEvento: a.prompt("Link do evento (opcional)"),
		LinkImagem: a.prompt("Link da imagem (opcional)"),
	}
	ctrl.SetForm(form)
	ctrl.Submit(context.Background())

	a.printf("%s", ctrl.Message())
	for field, msg := range ctrl.Errors() {
		a.printf("  %s: %s", field, msg)
	}

	if len(ctrl.Errors()) == 0 && ctrl.Message() == "Evento criado com sucesso!" {
		return a.waitNavigate(eventcreate.DefaultRedirectDelay+time.Second, router.RouteEvents), false
	}
	return router.RouteHome, false
}

func (a *App) userAdminScreen() (router.Route, bool) {
	ctrl := useradmin.New(a.client, a, a.logger)
	defer ctrl.Close()
	ctrl.Load(context.Background())

	if msg := ctrl.ErrorMessage(); msg != "" {
		a.printf("%s", msg)
		return a.waitNavigate(3*time.Second, router.RouteHome), false
	}

	for {
		a.printf("=== Gerenciamento de Usuários - página %d/%d ===", ctrl.CurrentPage(), ctrl.TotalPages())
		for _, u := range ctrl.Page() {
			a.printf("- [%s] %s <%s> %s (%s)", u.ID, u.Nome, u.Email, u.CPF, user.TypeLabel(u.Tipo))
		}
		if msg := ctrl.SuccessMessage(); msg != "" {
			a.printf("%s", msg)
		}

		a.printf("[1] Buscar  [2] Filtrar tipo  [3] Página  [4] Excluir  [5] Exportar CSV  [0] Voltar")
		switch a.prompt("Opção") {
		case "1":
			ctrl.SetBusca(a.prompt("Buscar por nome, email ou CPF"))
		case "2":
			ctrl.SetFiltroTipo(a.prompt("Tipo (todos, 0, 1 ou 2)"))
		case "3":
			if p, err := strconv.Atoi(a.prompt("Página")); err == nil {
				ctrl.GoToPage(p)
			}
		case "4":
			id := a.prompt("ID do usuário")
			ctrl.Delete(context.Background(), id, func() bool {
				return a.confirm("Tem certeza que deseja excluir este usuário?")
			})
			if msg := ctrl.ErrorMessage(); msg != "" {
				a.printf("%s", msg)
			}
		case "5":
			name, content := ctrl.ExportCSV()
			if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
				a.printf("Falha ao gravar %s: %v", name, err)
			} else {
				a.printf("Exportado para %s", name)
			}
		default:
			return router.RouteHome, false
		}
	}
}
