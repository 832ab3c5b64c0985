// internal/domain/auth/adapter.go
package auth

import "eventflow-client/internal/pkg/session"

// NormalizeLogin converts a backend login payload into the canonical
// session shape. The backend is inconsistent about field naming and may
// answer with either {perfil, nome} or {role, name}; perfil wins when
// both are present. ok is false when the payload carries no usable token,
// in which case no session must be saved.
func NormalizeLogin(resp LoginResponse) (session.Session, bool) {
	if resp.Token == "" {
		return session.Session{}, false
	}

	s := session.Session{
		Token:  resp.Token,
		UserID: resp.ID,
	}
	if resp.Perfil != "" {
		s.Role = resp.Perfil
		s.DisplayName = resp.Nome
	} else {
		s.Role = resp.Role
		s.DisplayName = resp.Name
	}
	return s, true
}
