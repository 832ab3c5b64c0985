// internal/domain/user/user.go
package user

// User type codes as stored by the backend.
const (
	TypeAdmin    = 0
	TypeClient   = 1
	TypeEmployee = 2
)

// User mirrors the backend user entity managed by the admin screen.
type User struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	CPF            string `json:"cpf"`
	Telefone       string `json:"telefone"`
	Tipo           int    `json:"tipo"`
	DataNascimento string `json:"dataNascimento"`
	CreatedAt      string `json:"createdAt"`
}

// TypeLabel renders the numeric user type as the pt-BR label used by the
// admin table and the CSV export.
func TypeLabel(tipo int) string {
	switch tipo {
	case TypeAdmin:
		return "Administrador"
	case TypeClient:
		return "Cliente"
	case TypeEmployee:
		return "Funcionário"
	default:
		return "Desconhecido"
	}
}
