// internal/controller/useradmin/csv.go
package useradmin

import (
	"strings"
	"time"

	"eventflow-client/internal/domain/user"
)

// csvHeader matches the spreadsheet the admin team already consumes.
const csvHeader = "ID,Nome,Email,CPF,Telefone,Tipo,Data Nascimento,Cadastrado em"

// ExportCSV builds the export from the current full snapshot, filters
// ignored. Values are joined with bare commas; embedded commas are not
// escaped, which is the format the admin spreadsheet already expects.
func (c *Controller) ExportCSV() (filename, content string) {
	c.mu.Lock()
	users := c.users
	c.mu.Unlock()

	lines := make([]string, 0, len(users)+1)
	lines = append(lines, csvHeader)
	for _, u := range users {
		lines = append(lines, strings.Join([]string{
			u.ID,
			u.Nome,
			u.Email,
			u.CPF,
			u.Telefone,
			user.TypeLabel(u.Tipo),
			formatCSVDate(u.DataNascimento),
			formatCSVDate(u.CreatedAt),
		}, ","))
	}

	filename = "usuarios_" + time.Now().Format("2006-01-02") + ".csv"
	return filename, strings.Join(lines, "\n")
}

// formatCSVDate renders backend timestamps as dd/mm/yyyy, passing
// through anything it cannot parse.
func formatCSVDate(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}
