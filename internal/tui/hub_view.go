package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kittuduck/oraclefed/internal/appstate"
	"github.com/kittuduck/oraclefed/internal/persona"
)

func (m model) handleAutomationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	billers := m.store.Billers()
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
	case "up", "k":
		if m.autoCursor > 0 {
			m.autoCursor--
		}
	case "down", "j":
		if m.autoCursor < len(billers)-1 {
			m.autoCursor++
		}
	case "enter", " ":
		if m.autoCursor < len(billers) {
			b := billers[m.autoCursor]
			if b.Type == persona.BillerAuto {
				m.store.ToggleBillerAutopay(b.ID)
			} else {
				m.flash = "only autopay billers can be paused here"
			}
		}
	}
	return m, nil
}

func (m model) renderAutomationHub(t theme, width int) string {
	var sb strings.Builder
	sb.WriteString(screenHeading(t, "automation hub"))
	sb.WriteString("\n\n")
	sb.WriteString(t.mutedStyle().Render("standing instructions and autopay mandates") + "\n\n")

	billers := m.store.Billers()
	if len(billers) == 0 {
		sb.WriteString(t.mutedStyle().Render("nothing set up yet"))
		return sb.String()
	}

	for i, b := range billers {
		marker := "  "
		if i == m.autoCursor {
			marker = t.selectedStyle().Render("▶ ")
		}
		state := t.mutedStyle().Render("due " + b.DueDate)
		if b.Type == persona.BillerAuto {
			switch b.Status {
			case persona.AutopayActive:
				state = t.titleStyle().Render("autopay on")
			case persona.AutopayPaused:
				state = errorText(t, "autopay paused")
			}
		}
		sb.WriteString(fmt.Sprintf("%s%s %-22s %12s  %s\n",
			marker, iconGlyph(b.Icon), b.Name, formatINRCompact(b.Amount), state))
	}

	sb.WriteString("\n" + t.mutedStyle().Render("enter: pause/resume autopay"))
	return sb.String()
}

var onboardSteps = []struct {
	title string
	busy  string
}{
	{"verify your mobile number", "sending one-time code"},
	{"confirm your PAN details", "checking with the registry"},
	{"link your primary account", "fetching account summary"},
	{"pick your starting goals", "personalising your plan"},
}

func (m model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.onboardBusy {
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
	case "enter":
		if m.onboardStep >= len(onboardSteps) {
			m.flash = "you're all set ✓"
			m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
			return m, nil
		}
		m.onboardBusy = true
		m.onboardSession++
		return m, delayedMsgCmd(onboardDelay, onboardStepMsg{sessionID: m.onboardSession})
	}
	return m, nil
}

func (m model) renderOnboarding(t theme, width int) string {
	var sb strings.Builder
	sb.WriteString(screenHeading(t, "get started"))
	sb.WriteString("\n\n")

	for i, step := range onboardSteps {
		switch {
		case i < m.onboardStep:
			sb.WriteString("  " + t.titleStyle().Render("✓") + " " + t.mutedStyle().Render(step.title) + "\n")
		case i == m.onboardStep && m.onboardBusy:
			sb.WriteString("  " + m.spin.View() + " " + step.title + "  " +
				t.mutedStyle().Render(step.busy+"...") + "\n")
		case i == m.onboardStep:
			sb.WriteString("  " + t.selectedStyle().Render("▶") + " " + step.title + "\n")
		default:
			sb.WriteString("    " + t.mutedStyle().Render(step.title) + "\n")
		}
	}

	sb.WriteString("\n")
	if m.onboardStep >= len(onboardSteps) {
		sb.WriteString(t.titleStyle().Render("all done!") + " " +
			t.mutedStyle().Render("enter: go to your dashboard"))
	} else if !m.onboardBusy {
		sb.WriteString(t.mutedStyle().Render("enter: continue"))
	}
	return sb.String()
}
