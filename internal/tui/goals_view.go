package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kittuduck/oraclefed/internal/appstate"
	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/shopspring/decimal"
)

var contributionStep = decimal.NewFromInt(1000)

func (m model) handleGoalsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.goalAdding {
		return m.handleAddGoalKey(msg)
	}

	goals := m.store.Goals()
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
	case "up", "k":
		if m.goalCursor > 0 {
			m.goalCursor--
		}
	case "down", "j":
		if m.goalCursor < len(goals)-1 {
			m.goalCursor++
		}
	case "a":
		m.goalAdding = true
		m.goalFocus = 0
		m.goalErr = ""
		m.goalTitle.SetValue("")
		m.goalTarget.SetValue("")
		m.goalYear.SetValue("")
		m.goalTitle.Focus()
	case "+", "=":
		if m.goalCursor < len(goals) {
			g := goals[m.goalCursor]
			g.MonthlyContribution = g.MonthlyContribution.Add(contributionStep)
			m.store.UpdateGoal(g)
		}
	case "-":
		if m.goalCursor < len(goals) {
			g := goals[m.goalCursor]
			next := g.MonthlyContribution.Sub(contributionStep)
			if next.IsNegative() {
				next = decimal.Zero
			}
			g.MonthlyContribution = next
			m.store.UpdateGoal(g)
		}
	}
	return m, nil
}

func (m model) handleAddGoalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.goalAdding = false
		m.goalErr = ""
		return m, nil
	case "tab", "down":
		m.goalFocus = (m.goalFocus + 1) % 3
		m.syncGoalFocus()
		return m, nil
	case "shift+tab", "up":
		m.goalFocus = (m.goalFocus + 2) % 3
		m.syncGoalFocus()
		return m, nil
	case "enter":
		if m.goalFocus < 2 {
			m.goalFocus++
			m.syncGoalFocus()
			return m, nil
		}
		title := strings.TrimSpace(m.goalTitle.Value())
		if title == "" {
			m.goalErr = "give the goal a title"
			return m, nil
		}
		target, err := parseAmount(m.goalTarget.Value())
		if err != nil {
			m.goalErr = "target: " + err.Error()
			return m, nil
		}
		year, err := strconv.Atoi(strings.TrimSpace(m.goalYear.Value()))
		if err != nil || year < 2026 || year > 2100 {
			m.goalErr = "enter a deadline year like 2028"
			return m, nil
		}
		m.store.AddGoal(persona.Goal{
			ID:           "g-custom-" + strings.ToLower(strings.ReplaceAll(title, " ", "-")),
			Title:        title,
			TargetAmount: target,
			DeadlineYear: year,
		})
		m.goalAdding = false
		m.goalErr = ""
		m.goalCursor = len(m.store.Goals()) - 1
		return m, nil
	}

	var cmd tea.Cmd
	switch m.goalFocus {
	case 0:
		m.goalTitle, cmd = m.goalTitle.Update(msg)
	case 1:
		m.goalTarget, cmd = m.goalTarget.Update(msg)
	default:
		m.goalYear, cmd = m.goalYear.Update(msg)
	}
	return m, cmd
}

func (m *model) syncGoalFocus() {
	m.goalTitle.Blur()
	m.goalTarget.Blur()
	m.goalYear.Blur()
	switch m.goalFocus {
	case 0:
		m.goalTitle.Focus()
	case 1:
		m.goalTarget.Focus()
	default:
		m.goalYear.Focus()
	}
}

func (m model) renderGoals(t theme, width int) string {
	var sb strings.Builder
	sb.WriteString(screenHeading(t, "goals"))
	sb.WriteString("\n\n")

	if m.goalAdding {
		sb.WriteString(t.titleStyle().Render("new goal"))
		sb.WriteString("\n\n")
		sb.WriteString(m.goalTitle.View() + "\n")
		sb.WriteString(m.goalTarget.View() + "\n")
		sb.WriteString(m.goalYear.View() + "\n\n")
		sb.WriteString(t.mutedStyle().Render("enter to advance, esc to cancel"))
		if m.goalErr != "" {
			sb.WriteString("\n" + errorText(t, m.goalErr))
		}
		return sb.String()
	}

	goals := m.store.Goals()
	if len(goals) == 0 {
		sb.WriteString(t.mutedStyle().Render("no goals yet — press a to add one"))
		return sb.String()
	}

	for i, g := range goals {
		marker := "  "
		if i == m.goalCursor {
			marker = t.selectedStyle().Render("▶ ")
		}
		sb.WriteString(fmt.Sprintf("%s%s %s  %s\n", marker, iconGlyph(g.Icon), g.Title,
			t.mutedStyle().Render(goalStatusLabel(g.Status)+" · by "+strconv.Itoa(g.DeadlineYear))))
		sb.WriteString(fmt.Sprintf("    %s  %s / %s\n",
			progressBar(g.CurrentAmount, g.TargetAmount, 24),
			formatINRCompact(g.CurrentAmount), formatINRCompact(g.TargetAmount)))
		sb.WriteString(fmt.Sprintf("    %s  %s/mo   trend %s\n",
			t.mutedStyle().Render(g.ProjectedImpact),
			formatINRCompact(g.MonthlyContribution),
			sparkline(g.History)))
		if i == m.goalCursor {
			for _, insight := range g.Insights {
				sb.WriteString("    " + t.mutedStyle().Render("› "+insight) + "\n")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(t.mutedStyle().Render("a: add goal  +/-: adjust monthly contribution"))
	return sb.String()
}
