package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kittuduck/oraclefed/internal/appstate"
	"github.com/shopspring/decimal"
)

type holding struct {
	name    string
	kind    string
	value   decimal.Decimal
	changeP float64
}

func demoHoldings(total decimal.Decimal) []holding {
	// Fixed split of the profile's total balance, purely presentational.
	slice := func(pct int64) decimal.Decimal {
		return total.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100))
	}
	return []holding{
		{name: "Nifty 50 Index", kind: "equity", value: slice(38), changeP: 11.2},
		{name: "Gilt Fund", kind: "debt", value: slice(27), changeP: 6.4},
		{name: "Sovereign Gold Bond", kind: "gold", value: slice(15), changeP: 8.1},
		{name: "Liquid Fund", kind: "cash", value: slice(20), changeP: 3.2},
	}
}

func (m model) handleInvestmentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.fdProcessing || m.exploreBusy {
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
		return m, nil
	case "tab":
		// Fund explorer. The demo backend always rejects it.
		m.exploreFailed = false
		m.exploreBusy = true
		m.exploreSession++
		return m, delayedMsgCmd(exploreDelay, exploreResultMsg{sessionID: m.exploreSession})
	case "enter":
		amount, err := parseAmount(m.fdAmount.Value())
		if err != nil {
			m.fdErr = err.Error()
			return m, nil
		}
		if amount.GreaterThan(m.store.Financials().Liquid) {
			m.fdErr = "insufficient balance"
			return m, nil
		}
		m.fdErr = ""
		m.fdProcessing = true
		m.fdSession++
		return m, delayedMsgCmd(fdDelay, fdBookedMsg{sessionID: m.fdSession})
	}

	var cmd tea.Cmd
	m.fdAmount, cmd = m.fdAmount.Update(msg)
	return m, cmd
}

func (m model) renderInvestments(t theme, width int) string {
	fin := m.store.Financials()

	var sb strings.Builder
	sb.WriteString(screenHeading(t, "investments"))
	sb.WriteString("\n\n")

	sb.WriteString(t.titleStyle().Render("book a fixed deposit") + "  " +
		t.mutedStyle().Render("6.8% p.a., 12 months") + "\n\n")
	sb.WriteString("  available " + formatINRCompact(fin.Liquid) + "\n")
	sb.WriteString("  in deposits " + formatINRCompact(fin.Goal) + "\n\n")

	if m.fdProcessing {
		sb.WriteString("  " + m.spin.View() + t.mutedStyle().Render(" booking deposit...") + "\n")
	} else {
		sb.WriteString("  " + m.fdAmount.View() + "\n")
		if m.fdErr != "" {
			sb.WriteString("  " + errorText(t, m.fdErr) + "\n")
		}
	}

	sb.WriteString("\n" + t.titleStyle().Render("explore mutual funds") + "\n")
	switch {
	case m.exploreBusy:
		sb.WriteString("  " + m.spin.View() + t.mutedStyle().Render(" fetching fund list...") + "\n")
	case m.exploreFailed:
		sb.WriteString("  " + errorText(t, "fund catalogue unavailable, try again later") + "\n")
	default:
		sb.WriteString("  " + t.mutedStyle().Render("tab: browse the fund catalogue") + "\n")
	}

	sb.WriteString("\n" + t.mutedStyle().Render("enter: book FD"))
	return sb.String()
}

func (m model) renderPortfolio(t theme, width int) string {
	p := m.store.CurrentProfile()
	holdings := demoHoldings(p.Financials.TotalBalance)

	var sb strings.Builder
	sb.WriteString(screenHeading(t, "portfolio"))
	sb.WriteString("\n\n")
	sb.WriteString(t.titleStyle().Render("net worth "+formatINRCompact(p.Financials.TotalBalance)) +
		"  " + formatChangePercent(p.Financials.ChangePercent) + "\n\n")

	for _, h := range holdings {
		sb.WriteString(fmt.Sprintf("  %-22s %-7s %14s  %s\n",
			h.name, t.mutedStyle().Render(h.kind), formatINRCompact(h.value),
			formatChangePercent(h.changeP)))
	}
	return sb.String()
}

func (m model) renderExpenditure(t theme, width int) string {
	p := m.store.CurrentProfile()
	income := p.Financials.MonthlyIncome
	spend := p.Financials.MonthlySpend

	categories := []struct {
		name string
		pct  int64
	}{
		{"essentials", 42},
		{"lifestyle", 23},
		{"transport", 14},
		{"subscriptions", 9},
		{"everything else", 12},
	}

	var sb strings.Builder
	sb.WriteString(screenHeading(t, "expenditure"))
	sb.WriteString("\n\n")
	sb.WriteString("  income this month  " + formatINRCompact(income) + "\n")
	sb.WriteString("  spent so far       " + formatINRCompact(spend) + "\n")
	sb.WriteString("  safe to spend      " + t.titleStyle().Render(formatINRCompact(p.Financials.SafeToSpend)) + "\n\n")

	for _, c := range categories {
		amt := spend.Mul(decimal.NewFromInt(c.pct)).Div(decimal.NewFromInt(100))
		sb.WriteString(fmt.Sprintf("  %-16s %s %12s\n", c.name,
			progressBar(decimal.NewFromInt(c.pct), decimal.NewFromInt(100), 16),
			formatINRCompact(amt)))
	}
	return sb.String()
}
