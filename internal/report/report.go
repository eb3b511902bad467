// Package report renders rebalance results for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Mar7155/Fintual-Trial/internal/domain"
)

var (
	subtle = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1)

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}).
			Bold(true)

	buyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	sellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	balancedStyle = lipgloss.NewStyle().Foreground(subtle).Italic(true)
)

// Render returns a printable summary of the portfolio total and the
// suggested rebalance actions.
func Render(total decimal.Decimal, actions []domain.RebalanceAction) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("REBALANCE PLAN"))
	b.WriteString("\n")
	b.WriteString("total portfolio value: ")
	b.WriteString(totalStyle.Render(total.StringFixed(2)))
	b.WriteString("\n\n")

	if len(actions) == 0 {
		b.WriteString(balancedStyle.Render("portfolio is balanced, nothing to do"))
		b.WriteString("\n")
		return b.String()
	}

	for _, action := range actions {
		style := buyStyle
		if action.Action == domain.ActionSell {
			style = sellStyle
		}
		line := fmt.Sprintf("%-4s %-8s %s shares", action.Action.String(), action.Ticker, action.Amount.StringFixed(6))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
