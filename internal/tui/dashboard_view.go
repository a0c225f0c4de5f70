package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kittuduck/oraclefed/internal/appstate"
)

type navItem struct {
	label string
	route appstate.Route
}

func navItems() []navItem {
	return []navItem{
		{"payments", appstate.Route{View: appstate.ViewPayments}},
		{"pay bills", appstate.Route{View: appstate.ViewPayments, PayTab: appstate.PayTabBills}},
		{"upi", appstate.Route{View: appstate.ViewUPI}},
		{"transactions", appstate.Route{View: appstate.ViewTransactions}},
		{"cards", appstate.Route{View: appstate.ViewCards}},
		{"apply for a card", appstate.Route{View: appstate.ViewCardApply}},
		{"goals", appstate.Route{View: appstate.ViewGoals}},
		{"investments", appstate.Route{View: appstate.ViewInvestments}},
		{"portfolio", appstate.Route{View: appstate.ViewPortfolio}},
		{"expenditure", appstate.Route{View: appstate.ViewExpenditure}},
		{"loans", appstate.Route{View: appstate.ViewLoans}},
		{"niche loans", appstate.Route{View: appstate.ViewNicheLoans}},
		{"automation hub", appstate.Route{View: appstate.ViewAutomationHub}},
		{"oracle", appstate.Route{View: appstate.ViewOracle}},
		{"oracle hub", appstate.Route{View: appstate.ViewOracleHub}},
		{"onboarding", appstate.Route{View: appstate.ViewOnboarding}},
		{"legacy services", appstate.Route{View: appstate.ViewLegacyServices}},
		{"support", appstate.Route{View: appstate.ViewSupport}},
		{"profile", appstate.Route{View: appstate.ViewProfile}},
	}
}

func (m model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := navItems()
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.dashCursor > 0 {
			m.dashCursor--
		}
	case "down", "j":
		if m.dashCursor < len(items)-1 {
			m.dashCursor++
		}
	case "enter":
		m.navigate(items[m.dashCursor].route)
	case "o":
		m.navigate(appstate.Route{
			View:         appstate.ViewOracle,
			OraclePrompt: "Give me one thing I should act on this week.",
		})
		return m, m.pendingOracleCmd()
	case "t":
		m.store.ToggleTheme()
	case "f":
		m.store.CycleFestivalTheme()
	case "p":
		m.store.ResetPersona()
		m.personaCursor = 0
	}
	return m, nil
}

// navigate applies a route and resets the entry state of the target
// screen from the route's payload.
func (m *model) navigate(r appstate.Route) {
	m.store.Navigate(r)
	switch r.View {
	case appstate.ViewPayments:
		m.payTab = r.PayTab
		m.payErr = ""
		m.payFocus = 0
		m.payPayee.Focus()
		m.payAmount.Blur()
		if r.TransferPrefill != nil {
			m.payPayee.SetValue(r.TransferPrefill.Payee)
			if r.TransferPrefill.Amount.IsPositive() {
				m.payAmount.SetValue(r.TransferPrefill.Amount.String())
			}
		}
	case appstate.ViewOracle:
		m.oracleInput.Focus()
	case appstate.ViewGoals:
		m.goalAdding = false
		m.goalErr = ""
	case appstate.ViewInvestments:
		m.fdErr = ""
		m.exploreFailed = false
		m.fdAmount.Focus()
	case appstate.ViewLoans, appstate.ViewNicheLoans:
		m.loanCursor = 0
	case appstate.ViewAutomationHub:
		m.autoCursor = 0
	case appstate.ViewOnboarding:
		m.onboardStep = 0
		m.onboardBusy = false
		m.onboardSession++
	}
}

// pendingOracleCmd fires the route's prompt at the advisor when the
// oracle screen was entered with one. A reply already in flight wins;
// re-entering the screen must not stack a second ask.
func (m *model) pendingOracleCmd() tea.Cmd {
	prompt := strings.TrimSpace(m.store.Route().OraclePrompt)
	if prompt == "" || m.oracleThinking {
		return nil
	}
	m.oracleLines = append(m.oracleLines, chatLine{fromUser: true, text: prompt})
	m.oracleThinking = true
	m.oracleSession++
	return m.askOracleCmd(m.oracleSession, prompt)
}

func (m model) renderDashboard(t theme, width int) string {
	p := m.store.CurrentProfile()
	fin := m.store.Financials()

	var sb strings.Builder
	sb.WriteString(renderAppTitle(t))
	sb.WriteString("\n\n")

	greeting := fmt.Sprintf("Namaste, %s", p.Name)
	if m.store.Festival() == appstate.FestivalDiwali {
		greeting += "  ✨ Happy Diwali"
	} else if m.store.Festival() == appstate.FestivalHoli {
		greeting += "  🎨 Happy Holi"
	}
	sb.WriteString(t.titleStyle().Render(greeting))
	sb.WriteString("\n\n")

	balance := t.cardStyle().Render(strings.Join([]string{
		t.mutedStyle().Render(p.Financials.AccountLabel + "  " + p.Financials.AccountNumber),
		t.titleStyle().Render(formatINRCompact(fin.Liquid)),
		t.mutedStyle().Render(fmt.Sprintf("safe to spend %s  %s",
			formatINRCompact(p.Financials.SafeToSpend),
			formatChangePercent(p.Financials.ChangePercent))),
	}, "\n"))
	var side []string
	if loan := m.store.ActiveLoan(); loan != nil {
		side = append(side, t.mutedStyle().Render("active loan: ")+loan.Type+" "+formatINRCompact(loan.Amount))
	}
	if offer := m.store.SavedLoanOffer(); offer != nil {
		side = append(side, t.mutedStyle().Render("saved offer: ")+offer.Type+" "+formatINRCompact(offer.Amount))
	}
	if !m.store.Financials().Goal.IsZero() {
		side = append(side, t.mutedStyle().Render("in deposits: ")+formatINRCompact(fin.Goal))
	}
	if len(side) > 0 {
		balance = lipgloss.JoinHorizontal(lipgloss.Top, balance, "  ", strings.Join(side, "\n"))
	}
	sb.WriteString(balance)
	sb.WriteString("\n\n")

	if len(p.OracleBriefs) > 0 {
		b := p.OracleBriefs[0]
		sb.WriteString(t.mutedStyle().Render("oracle says: ") + b.Body)
		sb.WriteString("\n\n")
	}

	if len(p.QuickActions) > 0 {
		actions := make([]string, 0, len(p.QuickActions))
		for _, qa := range p.QuickActions {
			actions = append(actions, iconGlyph(qa.Icon)+" "+qa.Label)
		}
		sb.WriteString(t.mutedStyle().Render(strings.Join(actions, "   ")))
		sb.WriteString("\n\n")
	}

	if len(p.DiscoverCards) > 0 {
		sb.WriteString(t.titleStyle().Render("for you"))
		sb.WriteString("\n")
		for _, dc := range p.DiscoverCards {
			sb.WriteString("  " + iconGlyph(dc.Icon) + " " + dc.Title + "  " +
				t.mutedStyle().Render(dc.Subtitle+" · "+dc.Tag) + "\n")
		}
		sb.WriteString("\n")
	}

	items := navItems()
	cols := 2
	rows := (len(items) + cols - 1) / cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(items) {
				continue
			}
			label := items[i].label
			cell := "  " + label
			if i == m.dashCursor {
				cell = t.selectedStyle().Render("▶ " + label)
			}
			sb.WriteString(lipgloss.NewStyle().Width(width / cols).Render(cell))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.flash != "" {
		sb.WriteString(t.titleStyle().Render(m.flash))
		sb.WriteString("\n")
	}
	sb.WriteString(t.mutedStyle().Render("enter: open  o: ask oracle  t: theme  f: festival  p: switch persona  q: quit"))
	return sb.String()
}
