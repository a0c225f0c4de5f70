package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kittuduck/oraclefed/internal/appstate"
)

// Canned prompts the hub offers before dropping into free chat.
var oracleHubPrompts = []string{
	"how are my goals doing?",
	"can I afford a vacation this year?",
	"what should I do with idle cash?",
	"summarise my spending this month",
}

func (m model) handleOracleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		prompt := strings.TrimSpace(m.oracleInput.Value())
		if prompt == "" || m.oracleThinking {
			return m, nil
		}
		m.oracleLines = append(m.oracleLines, chatLine{fromUser: true, text: prompt})
		m.oracleInput.SetValue("")
		m.oracleThinking = true
		m.oracleSession++
		return m, m.askOracleCmd(m.oracleSession, prompt)
	}

	var cmd tea.Cmd
	m.oracleInput, cmd = m.oracleInput.Update(msg)
	return m, cmd
}

func (m model) renderOracle(t theme, width int) string {
	var sb strings.Builder
	sb.WriteString(screenHeading(t, "oracle"))
	if m.advisor != nil && !m.advisor.Online() {
		sb.WriteString("  " + t.mutedStyle().Render("offline briefs"))
	}
	sb.WriteString("\n\n")

	if len(m.oracleLines) == 0 {
		sb.WriteString(t.mutedStyle().Render("ask anything about your money.") + "\n\n")
	}
	for _, line := range m.oracleLines {
		if line.fromUser {
			sb.WriteString(t.selectedStyle().Render("you ") + line.text + "\n")
		} else {
			sb.WriteString(wrapText("oracle  "+line.text, max(30, width-6)) + "\n")
		}
		sb.WriteString("\n")
	}

	if m.oracleThinking {
		sb.WriteString(m.spin.View() + t.mutedStyle().Render(" thinking...") + "\n\n")
	}

	sb.WriteString(m.oracleInput.View())
	return sb.String()
}

func (m model) renderOracleHub(t theme, width int) string {
	p := m.store.CurrentProfile()

	var sb strings.Builder
	sb.WriteString(screenHeading(t, "oracle hub"))
	sb.WriteString("\n\n")
	sb.WriteString(t.titleStyle().Render("today for "+p.Name) + "\n\n")

	for _, b := range p.OracleBriefs {
		sb.WriteString("  ◆ " + b.Title + "\n")
		sb.WriteString("    " + t.mutedStyle().Render(wrapText(b.Body, max(30, width-10))) + "\n\n")
	}

	sb.WriteString(t.titleStyle().Render("try asking") + "\n")
	for _, prompt := range oracleHubPrompts {
		sb.WriteString("  " + t.mutedStyle().Render("› "+prompt) + "\n")
	}
	sb.WriteString("\n" + t.mutedStyle().Render("open the oracle from the dashboard to chat"))
	return sb.String()
}

// wrapText folds s at word boundaries so chat replies fit the frame.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var sb strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				sb.WriteString("\n")
				lineLen = 0
			} else {
				sb.WriteString(" ")
				lineLen++
			}
		}
		sb.WriteString(w)
		lineLen += len(w)
	}
	return sb.String()
}
