package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func (m model) renderProfile(t theme, width int) string {
	p := m.store.CurrentProfile()

	var sb strings.Builder
	sb.WriteString(screenHeading(t, "profile"))
	sb.WriteString("\n\n")
	sb.WriteString(t.titleStyle().Render(p.Name) + "\n")
	sb.WriteString(t.mutedStyle().Render(fmt.Sprintf("%s · %d", p.Role, p.Age)) + "\n\n")
	sb.WriteString("  account   " + p.Financials.AccountLabel + "\n")
	sb.WriteString("  number    " + p.Financials.AccountNumber + "\n")
	sb.WriteString("  balance   " + formatINRCompact(p.Financials.TotalBalance) + "\n\n")

	mode := "dark"
	if !m.store.DarkMode() {
		mode = "light"
	}
	sb.WriteString(t.mutedStyle().Render("theme: "+mode+" · festival: "+m.store.Festival().String()) + "\n")
	sb.WriteString(t.mutedStyle().Render("t / f on the dashboard to change them") + "\n\n")

	if m.db != nil {
		sb.WriteString(t.mutedStyle().Render("local profile store: ready"))
	} else {
		sb.WriteString(t.mutedStyle().Render("local profile store: off (oraclefed account create <email>)"))
	}
	return sb.String()
}

func (m model) renderCards(t theme, width int) string {
	p := m.store.CurrentProfile()

	var sb strings.Builder
	sb.WriteString(screenHeading(t, "cards"))
	sb.WriteString("\n\n")

	card := t.cardStyle().Render(
		t.titleStyle().Render("ORACLE FED  PLATINUM") + "\n\n" +
			"  •••• •••• •••• 4821\n\n" +
			"  " + strings.ToUpper(p.Name) + "        12/29")
	sb.WriteString(card + "\n\n")

	sb.WriteString("  limit       " + formatINRCompact(decimal.NewFromInt(200000)) + "\n")
	sb.WriteString("  spent       " + formatINRCompact(p.Financials.MonthlySpend.Div(decimal.NewFromInt(2))) + "\n")
	sb.WriteString("  due date    5th of next month\n\n")
	sb.WriteString(t.mutedStyle().Render("freeze, limits and PIN live in the full app"))
	return sb.String()
}

func (m model) renderSupport(t theme, width int) string {
	var sb strings.Builder
	sb.WriteString(screenHeading(t, "support"))
	sb.WriteString("\n\n")

	topics := []string{
		"report an unauthorised transaction",
		"block or replace a card",
		"raise a UPI dispute",
		"update contact details",
		"talk to the oracle about your money",
	}
	for _, topic := range topics {
		sb.WriteString("  › " + topic + "\n")
	}
	sb.WriteString("\n  phone  1800 000 1234  " + t.mutedStyle().Render("(24x7)") + "\n")
	sb.WriteString("  email  care@oraclefed.example\n")
	return sb.String()
}

func (m model) renderLegacyServices(t theme, width int) string {
	var sb strings.Builder
	sb.WriteString(screenHeading(t, "branch services"))
	sb.WriteString("\n\n")
	sb.WriteString(t.mutedStyle().Render("things that still need a branch visit") + "\n\n")

	services := []struct{ name, note string }{
		{"cheque book request", "delivered in 5 working days"},
		{"demand draft", "bring a valid photo id"},
		{"locker access", "subject to availability"},
		{"account closure", "settle dues first"},
	}
	for _, s := range services {
		sb.WriteString("  " + s.name + "\n")
		sb.WriteString("    " + t.mutedStyle().Render(s.note) + "\n")
	}
	return sb.String()
}

func (m model) renderTransactions(t theme, width int) string {
	p := m.store.CurrentProfile()

	var sb strings.Builder
	sb.WriteString(screenHeading(t, "transactions"))
	sb.WriteString("\n\n")

	// Recent activity synthesised from the profile's billers plus a few
	// fixed credits.
	sb.WriteString(fmt.Sprintf("  %-11s %-24s %14s\n", "28 Aug", "salary credit", "+"+formatINRCompact(p.Financials.MonthlyIncome)))
	for i, b := range p.Billers {
		day := 24 - i*3
		sb.WriteString(fmt.Sprintf("  %-11s %-24s %14s\n",
			fmt.Sprintf("%02d Aug", day), b.Name, "-"+formatINRCompact(b.Amount)))
	}
	sb.WriteString(fmt.Sprintf("  %-11s %-24s %14s\n", "12 Aug", "UPI · chai point", "-"+formatINRCompact(decimal.NewFromInt(240))))

	sb.WriteString("\n" + t.mutedStyle().Render("showing this month"))
	return sb.String()
}

func (m model) renderUPI(t theme, width int) string {
	p := m.store.CurrentProfile()
	handle := strings.ToLower(strings.ReplaceAll(strings.Fields(p.Name)[0], " ", "")) + "@oraclefed"

	var sb strings.Builder
	sb.WriteString(screenHeading(t, "upi"))
	sb.WriteString("\n\n")
	sb.WriteString("  your id  " + t.titleStyle().Render(handle) + "\n\n")

	sb.WriteString(qrArt() + "\n\n")
	sb.WriteString(t.mutedStyle().Render("scan to pay " + p.Name))
	return sb.String()
}

func qrArt() string {
	return strings.Join([]string{
		"  ┌─────────────┐",
		"  │ ▄▄▄ ▄ ▄ ▄▄▄ │",
		"  │ █ █ ▄█▄ █ █ │",
		"  │ ▄▄▄ █▄▄ ▄▄▄ │",
		"  └─────────────┘",
	}, "\n")
}
