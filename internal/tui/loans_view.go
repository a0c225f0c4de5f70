package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kittuduck/oraclefed/internal/appstate"
	"github.com/shopspring/decimal"
)

func lakh(n int64) decimal.Decimal {
	return decimal.NewFromInt(n * 100000)
}

var standardLoanOffers = []appstate.LoanOffer{
	{Type: "personal", Amount: lakh(3), RateAPR: 11.5, TenureMonths: 36},
	{Type: "vehicle", Amount: lakh(8), RateAPR: 9.2, TenureMonths: 60},
	{Type: "home top-up", Amount: lakh(15), RateAPR: 8.6, TenureMonths: 120},
}

var nicheLoanOffers = []appstate.LoanOffer{
	{Type: "education abroad", Amount: lakh(25), RateAPR: 10.1, TenureMonths: 84},
	{Type: "agri equipment", Amount: lakh(6), RateAPR: 7.8, TenureMonths: 48},
	{Type: "medical emergency", Amount: lakh(4), RateAPR: 12.4, TenureMonths: 24},
	{Type: "wedding", Amount: lakh(10), RateAPR: 11.9, TenureMonths: 60},
}

// loanOffers lists what the current loan screen can disburse. A saved
// offer always resumes at the top of the list.
func (m model) loanOffers() []appstate.LoanOffer {
	base := standardLoanOffers
	if m.store.View() == appstate.ViewNicheLoans {
		base = nicheLoanOffers
	}
	saved := m.store.SavedLoanOffer()
	if saved == nil {
		return base
	}
	offers := make([]appstate.LoanOffer, 0, len(base)+1)
	offers = append(offers, *saved)
	return append(offers, base...)
}

func (m model) handleLoansKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loanProcessing {
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	offers := m.loanOffers()
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
	case "up", "k":
		if m.loanCursor > 0 {
			m.loanCursor--
		}
	case "down", "j":
		if m.loanCursor < len(offers)-1 {
			m.loanCursor++
		}
	case "s":
		if m.loanCursor < len(offers) {
			o := offers[m.loanCursor]
			m.store.SaveLoanOffer(o)
			m.flash = "offer saved for later"
			m.loanCursor = 0
		}
	case "x":
		if m.store.SavedLoanOffer() != nil {
			m.store.ClearSavedLoanOffer()
			m.loanCursor = 0
		}
	case "enter":
		if m.store.ActiveLoan() != nil {
			m.flash = "a loan is already active"
			return m, nil
		}
		if m.loanCursor < len(offers) {
			m.loanProcessing = true
			m.loanSession++
			return m, delayedMsgCmd(loanDelay, loanDisbursedMsg{sessionID: m.loanSession})
		}
	}
	return m, nil
}

func (m model) renderLoans(t theme, width int, niche bool) string {
	title := "loans"
	if niche {
		title = "niche loans"
	}

	var sb strings.Builder
	sb.WriteString(screenHeading(t, title))
	sb.WriteString("\n\n")

	if active := m.store.ActiveLoan(); active != nil {
		sb.WriteString(t.titleStyle().Render("active loan") + "\n")
		sb.WriteString("  " + active.Type + "  " + formatINRCompact(active.Amount) + "\n\n")
	}

	if m.loanProcessing {
		sb.WriteString(m.spin.View() + t.mutedStyle().Render(" disbursing...") + "\n")
		return sb.String()
	}

	saved := m.store.SavedLoanOffer()
	for i, o := range m.loanOffers() {
		marker := "  "
		if i == m.loanCursor {
			marker = t.selectedStyle().Render("▶ ")
		}
		tag := ""
		if saved != nil && i == 0 {
			tag = "  " + t.titleStyle().Render("[saved]")
		}
		sb.WriteString(fmt.Sprintf("%s%-18s %12s  %.1f%% APR  %d mo%s\n",
			marker, o.Type, formatINRCompact(o.Amount), o.RateAPR, o.TenureMonths, tag))
	}

	sb.WriteString("\n" + t.mutedStyle().Render("enter: disburse  s: save for later"))
	if saved != nil {
		sb.WriteString(t.mutedStyle().Render("  x: discard saved"))
	}
	return sb.String()
}

func (m model) renderCardApply(t theme, width int) string {
	var sb strings.Builder
	sb.WriteString(screenHeading(t, "apply for a card"))
	sb.WriteString("\n\n")

	cards := []struct {
		name string
		perk string
		fee  string
	}{
		{"Everyday Cashback", "2% back on UPI and groceries", "free"},
		{"Voyager", "4 lounge visits per quarter, zero forex markup", "₹1,499/yr"},
		{"Builder Secured", "build credit against a fixed deposit", "free"},
	}
	for _, c := range cards {
		sb.WriteString("  " + t.titleStyle().Render(c.name) + "  " + t.mutedStyle().Render(c.fee) + "\n")
		sb.WriteString("    " + c.perk + "\n\n")
	}

	sb.WriteString(t.mutedStyle().Render("applications open soon — this is a preview"))
	return sb.String()
}
