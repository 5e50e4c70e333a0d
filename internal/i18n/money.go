// Package i18n holds the pt-BR presentation helpers. Stored float values stay
// the source of truth; formatting happens at the edge (PDF statements).
package i18n

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a monetary value the way the dashboard does
// (R$ 1.234,56 - dot thousands, comma decimals).
func FormatBRL(v float64) string {
	return ptBR.Sprintf("R$ %.2f", v)
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatInt renders an integer with pt-BR grouping.
func FormatInt(n int) string {
	return ptBR.Sprintf("%d", n)
}
