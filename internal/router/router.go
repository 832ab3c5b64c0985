// internal/router/router.go
package router

import "strings"

// Route is a navigation destination within the application.
type Route struct {
	Path  string
	Label string
}

var (
	RouteAdminDashboard  = Route{Path: "/admin/dashboard", Label: "Painel do Administrador"}
	RouteOrganizerEvents = Route{Path: "/organizador/eventos", Label: "Eventos do Organizador"}
	RouteParticipant     = Route{Path: "/participante/eventos", Label: "Eventos do Participante"}
	RouteDashboard       = Route{Path: "/dashboard", Label: "Painel"}
	RouteHome            = Route{Path: "/", Label: "Início"}
	RouteEvents          = Route{Path: "/eventos", Label: "Eventos"}
	RouteLogin           = Route{Path: "/usuario/login", Label: "Login"}
)

// RouteFor maps a role to its landing destination. Matching is
// case-insensitive and total: unknown or empty roles land on the generic
// dashboard.
func RouteFor(role string) Route {
	switch strings.ToLower(role) {
	case "admin":
		return RouteAdminDashboard
	case "organizador":
		return RouteOrganizerEvents
	case "participante":
		return RouteParticipant
	default:
		return RouteDashboard
	}
}
