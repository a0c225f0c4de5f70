package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kittuduck/oraclefed/internal/appstate"
)

// theme bundles the handful of colours every view draws with. The
// festival overlay wins over the persona accent; both are cosmetic.
type theme struct {
	accent lipgloss.Color
	muted  lipgloss.Color
	good   lipgloss.Color
	bad    lipgloss.Color
	text   lipgloss.Color
}

func (m model) currentTheme() theme {
	t := theme{
		accent: lipgloss.Color("#F47A60"),
		muted:  lipgloss.Color("241"),
		good:   lipgloss.Color("#6FBF8E"),
		bad:    lipgloss.Color("#E05C5C"),
		text:   lipgloss.Color("252"),
	}
	if p := m.store.SelectedPersona(); p != nil && p.AccentColor != "" {
		t.accent = lipgloss.Color(p.AccentColor)
	}
	switch m.store.Festival() {
	case appstate.FestivalDiwali:
		t.accent = lipgloss.Color("#FFB347")
	case appstate.FestivalHoli:
		t.accent = lipgloss.Color("#E84A9C")
	}
	if !m.store.DarkMode() {
		t.text = lipgloss.Color("236")
		t.muted = lipgloss.Color("246")
	}
	return t
}

func (t theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.accent).Bold(true)
}

func (t theme) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.muted)
}

func (t theme) cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.accent).
		Padding(0, 1)
}

func (t theme) selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.accent).Bold(true)
}

func errorText(t theme, msg string) string {
	return lipgloss.NewStyle().Foreground(t.bad).Render(msg)
}

func renderAppTitle(t theme) string {
	raw := []string{
		"█▀█ █▀█ █▀█ █▀▀ █   █▀▀   █▀▀ █▀▀ █▀▄",
		"█ █ █▀▄ █▀█ █   █   █▀    █▀  █▀  █ █",
		"▀▀▀ ▀ ▀ ▀ ▀ ▀▀▀ ▀▀▀ ▀▀▀   ▀   ▀▀▀ ▀▀ ",
	}
	style := t.titleStyle()
	rows := make([]string, 0, len(raw))
	for _, line := range raw {
		rows = append(rows, style.Render(line))
	}
	return strings.Join(rows, "\n")
}

func screenHeading(t theme, name string) string {
	return t.titleStyle().Render("── "+strings.ToUpper(name)+" ") +
		t.mutedStyle().Render("(esc: dashboard, q: quit)")
}
