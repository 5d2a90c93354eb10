package service

import "time"

// CalcularPrazo returns the due date for a loan created at dataEmprestimo:
// a fixed offset of prazoDias days (PRAZO_DEVOLUCAO_DIAS).
func CalcularPrazo(dataEmprestimo time.Time, prazoDias int) time.Time {
	return dataEmprestimo.AddDate(0, 0, prazoDias)
}

// FormatarDataLocal renders a timestamp as DD/MM/YYYY HH:MM in local time,
// the format used by the history view and the CSV/PDF reports.
func FormatarDataLocal(t time.Time) string {
	return t.Local().Format("02/01/2006 15:04")
}
