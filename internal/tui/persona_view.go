package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kittuduck/oraclefed/internal/persona"
)

func (m model) handlePersonaSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	profiles := persona.All()
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.personaCursor > 0 {
			m.personaCursor--
		}
	case "down", "j":
		if m.personaCursor < len(profiles)-1 {
			m.personaCursor++
		}
	case "enter":
		p := profiles[m.personaCursor]
		m.store.SelectPersona(p)
		m.dashCursor = 0
		m.oracleLines = nil
		return m, m.startAdvisorCmd(p)
	}
	return m, nil
}

func (m model) renderPersonaSelect(t theme, width int) string {
	var sb strings.Builder
	sb.WriteString(renderAppTitle(t))
	sb.WriteString("\n\n")
	sb.WriteString(t.mutedStyle().Render("Who is banking today? (j/k to move, enter to continue)"))
	sb.WriteString("\n\n")

	for i, p := range persona.All() {
		line := fmt.Sprintf("%s, %d — %s", p.Name, p.Age, p.Role)
		if i == m.personaCursor {
			sb.WriteString(t.selectedStyle().Render("▶ " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(t.mutedStyle().Render("Every persona is demo data; nothing here touches a real account."))
	return sb.String()
}
