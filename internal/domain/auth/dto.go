// internal/domain/auth/dto.go
package auth

// LoginRequest is the payload for POST /api/v1/auth.
// The backend expects the pt-BR field names used by the web front end.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse covers both payload shapes the backend is known to emit:
// the canonical {token, perfil, nome, id} and the legacy {token, role, name, id}.
// Normalization into a session happens in one place (see NormalizeLogin).
type LoginResponse struct {
	Token  string `json:"token"`
	Perfil string `json:"perfil"`
	Nome   string `json:"nome"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	ID     string `json:"id"`
}

// SignupForm holds the local registration form fields.
type SignupForm struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	CPF            string `json:"cpf"`
	Telefone       string `json:"telefone"`
	Tipo           string `json:"tipo"`
	DataNascimento string `json:"dataNascimento"`
	Senha          string `json:"senha"`
	ConfirmSenha   string `json:"-"`
}
