package tui

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/naegele/internal/domain"
)

// View renders the calculator screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Naegele Calculator"))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("LNMP (dd/mm/yyyy)"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Error: " + domain.MessageFor(m.err)))
		b.WriteString("\n")
	case m.result != nil:
		body := fmt.Sprintf("EDD: %s\nWOA: %s", m.result.EDD, m.result.WOA)
		b.WriteString(ResultBoxStyle.Render(body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter compute • esc quit"))
	b.WriteString("\n")

	return AppStyle.Render(b.String())
}
