// internal/domain/event/event.go
package event

// Types enumerates the fixed event categories accepted by the backend.
var Types = []string{
	"CONGRESSO",
	"TREINAMENTO",
	"WORKSHOP",
	"IMERSÃO",
	"REUNIÃO",
	"HACKATON",
	"STARTUP",
}

// Event mirrors the backend event entity. Date fields travel as
// pre-formatted "DD/MM/YYYY HH:mm" strings, not ISO timestamps.
type Event struct {
	ID         int64  `json:"id,omitempty"`
	Nome       string `json:"nome"`
	Descricao  string `json:"descricao"`
	Tipo       string `json:"tipo"`
	Local      string `json:"local"`
	DataInicio string `json:"dataInicio"`
	DataFinal  string `json:"dataFinal"`
	LinkEvento string `json:"linkEvento,omitempty"`
	LinkImagem string `json:"linkImagem,omitempty"`
}

// IsValidType reports whether tipo is one of the fixed categories.
func IsValidType(tipo string) bool {
	for _, t := range Types {
		if t == tipo {
			return true
		}
	}
	return false
}
