// Package tui is the terminal shell. One model owns the update loop;
// every mutation goes through the appstate store and every screen is a
// render function over store snapshots.
package tui

import (
	"context"
	"database/sql"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kittuduck/oraclefed/internal/appstate"
	"github.com/kittuduck/oraclefed/internal/oracle"
	"github.com/kittuduck/oraclefed/internal/persona"
)

const (
	paymentDelay = 900 * time.Millisecond
	fdDelay      = 900 * time.Millisecond
	loanDelay    = 1100 * time.Millisecond
	exploreDelay = 1200 * time.Millisecond
	onboardDelay = 800 * time.Millisecond
)

type advisorStartedMsg struct {
	err error
}

type paymentDoneMsg struct {
	sessionID int
}

type fdBookedMsg struct {
	sessionID int
}

type loanDisbursedMsg struct {
	sessionID int
}

type exploreResultMsg struct {
	sessionID int
}

type onboardStepMsg struct {
	sessionID int
}

type oracleReplyMsg struct {
	sessionID int
	text      string
	err       error
}

type chatLine struct {
	fromUser bool
	text     string
}

type model struct {
	store   *appstate.Store
	advisor *oracle.Advisor
	db      *sql.DB

	width  int
	height int

	flash string

	personaCursor int
	dashCursor    int

	payTab        appstate.PayTab
	payPayee      textinput.Model
	payAmount     textinput.Model
	payFocus      int
	payErr        string
	payProcessing bool
	paySession    int
	billsCursor   int

	goalCursor int
	goalAdding bool
	goalFocus  int
	goalTitle  textinput.Model
	goalTarget textinput.Model
	goalYear   textinput.Model
	goalErr    string

	oracleInput    textinput.Model
	oracleLines    []chatLine
	oracleThinking bool
	oracleSession  int

	fdAmount     textinput.Model
	fdErr        string
	fdProcessing bool
	fdSession    int

	exploreBusy    bool
	exploreFailed  bool
	exploreSession int

	loanCursor     int
	loanProcessing bool
	loanSession    int

	autoCursor int

	onboardStep    int
	onboardBusy    bool
	onboardSession int

	spin     spinner.Model
	quitting bool
}

// New builds the shell. db may be nil when the profile store is
// unavailable; the demo runs without it.
func New(store *appstate.Store, advisor *oracle.Advisor, db *sql.DB) tea.Model {
	payee := textinput.New()
	payee.Prompt = "to: "
	payee.Placeholder = "name or UPI id"
	payee.Width = 40

	amount := textinput.New()
	amount.Prompt = "₹ "
	amount.Placeholder = "0"
	amount.Width = 20

	goalTitle := textinput.New()
	goalTitle.Prompt = "title: "
	goalTitle.Width = 40

	goalTarget := textinput.New()
	goalTarget.Prompt = "target ₹ "
	goalTarget.Width = 20

	goalYear := textinput.New()
	goalYear.Prompt = "by year: "
	goalYear.Width = 8

	oracleInput := textinput.New()
	oracleInput.Prompt = "ask> "
	oracleInput.Placeholder = "how are my goals doing?"
	oracleInput.Width = 60

	fdAmount := textinput.New()
	fdAmount.Prompt = "₹ "
	fdAmount.Placeholder = "0"
	fdAmount.Width = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		store:       store,
		advisor:     advisor,
		db:          db,
		payPayee:    payee,
		payAmount:   amount,
		goalTitle:   goalTitle,
		goalTarget:  goalTarget,
		goalYear:    goalYear,
		oracleInput: oracleInput,
		fdAmount:    fdAmount,
		spin:        sp,
	}
}

func (m model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m model) startAdvisorCmd(p persona.Profile) tea.Cmd {
	return func() tea.Msg {
		return advisorStartedMsg{err: m.advisor.Start(context.Background(), p)}
	}
}

func (m model) askOracleCmd(sessionID int, prompt string) tea.Cmd {
	return func() tea.Msg {
		text, err := m.advisor.Ask(context.Background(), prompt)
		return oracleReplyMsg{sessionID: sessionID, text: text, err: err}
	}
}

func delayedMsgCmd(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.payPayee.Width = max(24, msg.Width-28)
		m.oracleInput.Width = max(24, msg.Width-20)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case advisorStartedMsg:
		if msg.err != nil {
			m.flash = "oracle is offline: " + msg.err.Error()
		}
		return m, nil

	case paymentDoneMsg:
		if msg.sessionID != m.paySession || !m.payProcessing {
			return m, nil
		}
		m.payProcessing = false
		amount, err := parseAmount(m.payAmount.Value())
		if err != nil {
			m.payErr = err.Error()
			return m, nil
		}
		// Completion callback: debit, then return home.
		m.store.ApplyPayment(amount)
		m.flash = "sent " + formatINRCompact(amount) + " ✓"
		m.payAmount.SetValue("")
		m.payPayee.SetValue("")
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
		return m, nil

	case fdBookedMsg:
		if msg.sessionID != m.fdSession || !m.fdProcessing {
			return m, nil
		}
		m.fdProcessing = false
		amount, err := parseAmount(m.fdAmount.Value())
		if err != nil {
			m.fdErr = err.Error()
			return m, nil
		}
		m.store.BookFixedDeposit(amount)
		m.fdAmount.SetValue("")
		m.flash = "FD booked for " + formatINRCompact(amount) + " ✓"
		return m, nil

	case loanDisbursedMsg:
		if msg.sessionID != m.loanSession || !m.loanProcessing {
			return m, nil
		}
		m.loanProcessing = false
		offers := m.loanOffers()
		if m.loanCursor < len(offers) {
			o := offers[m.loanCursor]
			m.store.DisburseLoan(o.Type, o.Amount)
			m.flash = "loan of " + formatINRCompact(o.Amount) + " disbursed ✓"
		}
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
		return m, nil

	case exploreResultMsg:
		if msg.sessionID != m.exploreSession || !m.exploreBusy {
			return m, nil
		}
		// The fund explorer always fails in the demo. This is a render
		// branch only; core state is untouched.
		m.exploreBusy = false
		m.exploreFailed = true
		return m, nil

	case onboardStepMsg:
		if msg.sessionID != m.onboardSession || !m.onboardBusy {
			return m, nil
		}
		m.onboardBusy = false
		m.onboardStep++
		return m, nil

	case oracleReplyMsg:
		if msg.sessionID != m.oracleSession {
			return m, nil
		}
		m.oracleThinking = false
		if msg.err != nil {
			m.oracleLines = append(m.oracleLines, chatLine{text: "oracle error: " + msg.err.Error()})
			return m, nil
		}
		m.oracleLines = append(m.oracleLines, chatLine{text: msg.text})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	m.flash = ""

	switch m.store.View() {
	case appstate.ViewPersonaSelect:
		return m.handlePersonaSelectKey(msg)
	case appstate.ViewDashboard:
		return m.handleDashboardKey(msg)
	case appstate.ViewPayments:
		return m.handlePaymentsKey(msg)
	case appstate.ViewGoals:
		return m.handleGoalsKey(msg)
	case appstate.ViewOracle:
		return m.handleOracleKey(msg)
	case appstate.ViewInvestments:
		return m.handleInvestmentsKey(msg)
	case appstate.ViewLoans, appstate.ViewNicheLoans:
		return m.handleLoansKey(msg)
	case appstate.ViewAutomationHub:
		return m.handleAutomationKey(msg)
	case appstate.ViewOnboarding:
		return m.handleOnboardingKey(msg)
	default:
		return m.handleStaticScreenKey(msg)
	}
}

// handleStaticScreenKey serves the read-only screens: they can only
// return to the dashboard.
func (m model) handleStaticScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc", "enter":
		m.store.Navigate(appstate.Route{View: appstate.ViewDashboard})
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	t := m.currentTheme()
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.accent).
		Padding(1, 1)
	contentStyle := lipgloss.NewStyle().Padding(1, 1, 0, 1)
	if m.width > 0 {
		frame = frame.Width(max(1, m.width-frame.GetHorizontalBorderSize()))
	}
	if m.height > 0 {
		frame = frame.Height(max(1, m.height-frame.GetVerticalBorderSize()))
	}
	layoutWidth := max(1, m.width-frame.GetHorizontalFrameSize()-contentStyle.GetHorizontalFrameSize())

	var body string
	switch m.store.View() {
	case appstate.ViewPersonaSelect:
		body = m.renderPersonaSelect(t, layoutWidth)
	case appstate.ViewDashboard:
		body = m.renderDashboard(t, layoutWidth)
	case appstate.ViewPayments:
		body = m.renderPayments(t, layoutWidth)
	case appstate.ViewGoals:
		body = m.renderGoals(t, layoutWidth)
	case appstate.ViewOracle:
		body = m.renderOracle(t, layoutWidth)
	case appstate.ViewOracleHub:
		body = m.renderOracleHub(t, layoutWidth)
	case appstate.ViewInvestments:
		body = m.renderInvestments(t, layoutWidth)
	case appstate.ViewPortfolio:
		body = m.renderPortfolio(t, layoutWidth)
	case appstate.ViewExpenditure:
		body = m.renderExpenditure(t, layoutWidth)
	case appstate.ViewLoans:
		body = m.renderLoans(t, layoutWidth, false)
	case appstate.ViewNicheLoans:
		body = m.renderLoans(t, layoutWidth, true)
	case appstate.ViewCardApply:
		body = m.renderCardApply(t, layoutWidth)
	case appstate.ViewAutomationHub:
		body = m.renderAutomationHub(t, layoutWidth)
	case appstate.ViewOnboarding:
		body = m.renderOnboarding(t, layoutWidth)
	case appstate.ViewProfile:
		body = m.renderProfile(t, layoutWidth)
	case appstate.ViewCards:
		body = m.renderCards(t, layoutWidth)
	case appstate.ViewSupport:
		body = m.renderSupport(t, layoutWidth)
	case appstate.ViewLegacyServices:
		body = m.renderLegacyServices(t, layoutWidth)
	case appstate.ViewTransactions:
		body = m.renderTransactions(t, layoutWidth)
	case appstate.ViewUPI:
		body = m.renderUPI(t, layoutWidth)
	default:
		body = m.renderDashboard(t, layoutWidth)
	}

	return frame.Render(contentStyle.Render(body))
}
