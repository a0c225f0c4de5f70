package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kittuduck/oraclefed/internal/appstate"
	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/shopspring/decimal"
)

func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero, errors.New("enter an amount")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, errors.New("invalid amount")
	}
	if !d.IsPositive() {
		return decimal.Zero, errors.New("amount must be positive")
	}
	return d, nil
}

func payTabLabel(t appstate.PayTab) string {
	switch t {
	case appstate.PayTabScan:
		return "SCAN"
	case appstate.PayTabBills:
		return "BILLS"
	default:
		return "TRANSFER"
	}
}

func (m model) handlePaymentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.payProcessing {
		// The simulated wait is not cancellable mid-flight.
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
		return m, nil
	case "tab":
		m.payTab = (m.payTab + 1) % 3
		m.payErr = ""
		return m, nil
	}

	switch m.payTab {
	case appstate.PayTabBills:
		return m.handleBillsKey(msg)
	case appstate.PayTabScan:
		if msg.String() == "enter" {
			// Scan is a dead end in the demo; hand over to transfer.
			m.payTab = appstate.PayTabTransfer
		}
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if m.payFocus == 0 {
			m.payFocus = 1
			m.payPayee.Blur()
			m.payAmount.Focus()
			return m, nil
		}
		amount, err := parseAmount(m.payAmount.Value())
		if err != nil {
			m.payErr = err.Error()
			return m, nil
		}
		if amount.GreaterThan(m.store.Financials().Liquid) {
			// Screen-level guard only; the ledger itself allows over-draw.
			m.payErr = "insufficient balance"
			return m, nil
		}
		m.payErr = ""
		m.payProcessing = true
		m.paySession++
		return m, delayedMsgCmd(paymentDelay, paymentDoneMsg{sessionID: m.paySession})
	case "up", "shift+tab":
		m.payFocus = 0
		m.payAmount.Blur()
		m.payPayee.Focus()
		return m, nil
	case "down":
		m.payFocus = 1
		m.payPayee.Blur()
		m.payAmount.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	if m.payFocus == 0 {
		m.payPayee, cmd = m.payPayee.Update(msg)
	} else {
		m.payAmount, cmd = m.payAmount.Update(msg)
	}
	return m, cmd
}

func (m model) handleBillsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	billers := m.store.Billers()
	switch msg.String() {
	case "up", "k":
		if m.billsCursor > 0 {
			m.billsCursor--
		}
	case "down", "j":
		if m.billsCursor < len(billers)-1 {
			m.billsCursor++
		}
	case "enter":
		if m.billsCursor >= len(billers) {
			return m, nil
		}
		b := billers[m.billsCursor]
		if b.Type == persona.BillerAuto {
			m.store.ToggleBillerAutopay(b.ID)
			return m, nil
		}
		// Paying a DUE bill runs the same simulated flow as a transfer.
		m.payPayee.SetValue(b.Name)
		m.payAmount.SetValue(b.Amount.String())
		m.payProcessing = true
		m.paySession++
		return m, delayedMsgCmd(paymentDelay, paymentDoneMsg{sessionID: m.paySession})
	}
	return m, nil
}

func (m model) renderPayments(t theme, width int) string {
	var sb strings.Builder
	sb.WriteString(screenHeading(t, "payments"))
	sb.WriteString("\n\n")

	tabs := make([]string, 0, 3)
	for _, tab := range []appstate.PayTab{appstate.PayTabTransfer, appstate.PayTabScan, appstate.PayTabBills} {
		label := payTabLabel(tab)
		if tab == m.payTab {
			tabs = append(tabs, t.selectedStyle().Render("["+label+"]"))
		} else {
			tabs = append(tabs, t.mutedStyle().Render(" "+label+" "))
		}
	}
	sb.WriteString(strings.Join(tabs, " "))
	sb.WriteString("   " + t.mutedStyle().Render("tab to switch"))
	sb.WriteString("\n\n")

	if m.payProcessing {
		sb.WriteString(m.spin.View() + " processing payment…")
		return sb.String()
	}

	switch m.payTab {
	case appstate.PayTabScan:
		sb.WriteString("┌─────────────┐\n")
		sb.WriteString("│  ▄▄ ▄ ▄▄▄  │  point your camera at a QR code\n")
		sb.WriteString("│  █▄██▄█ ▄  │  (demo: enter falls back to transfer)\n")
		sb.WriteString("└─────────────┘\n")
	case appstate.PayTabBills:
		billers := m.store.Billers()
		if len(billers) == 0 {
			sb.WriteString(t.mutedStyle().Render("no billers yet"))
			break
		}
		for i, b := range billers {
			line := fmt.Sprintf("%s %-28s %10s  due %s", iconGlyph(b.Icon), b.Name, formatINRCompact(b.Amount), b.DueDate)
			if b.Type == persona.BillerAuto {
				line += "  autopay " + string(b.Status)
			}
			if i == m.billsCursor {
				sb.WriteString(t.selectedStyle().Render("▶ " + line))
			} else {
				sb.WriteString("  " + line)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n" + t.mutedStyle().Render("enter: pay DUE bill / toggle AUTO bill"))
	default:
		sb.WriteString(m.payPayee.View())
		sb.WriteString("\n")
		sb.WriteString(m.payAmount.View())
		sb.WriteString("\n\n")
		sb.WriteString(t.mutedStyle().Render(
			"available " + formatINRCompact(m.store.Financials().Liquid) + "  ·  enter to continue"))
	}

	if m.payErr != "" {
		sb.WriteString("\n" + errorText(t, m.payErr))
	}
	return sb.String()
}
