// internal/pkg/session/types.go
package session

// Session is the client-held record of an authenticated user. The four
// fields are always written and cleared together; Token present means
// logged in, everything else is meaningful only alongside it.
type Session struct {
	Token       string `json:"token"`
	Role        string `json:"userRole"`
	UserID      string `json:"userId"`
	DisplayName string `json:"userName"`
}

// LoggedIn reports whether the session holds a credential.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// Name returns the display name, falling back to the generic pt-BR
// label when the session was saved without one.
func (s Session) Name() string {
	if s.DisplayName == "" {
		return "Usuário"
	}
	return s.DisplayName
}
