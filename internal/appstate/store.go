// Package appstate owns every piece of mutable application state. One
// Store instance is created at startup. Most writes come from the TUI
// update loop, but the advisor's tool dispatch runs off-loop, so a
// mutex guards the aggregate; screens read snapshots and never hold a
// writable reference.
package appstate

import (
	"sync"

	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/shopspring/decimal"
)

// Store is the single mutable aggregate behind the whole app.
type Store struct {
	mu sync.Mutex

	route    Route
	selected *persona.Profile

	goals   []Goal
	billers []persona.Biller
	fin     Financials

	darkMode bool
	festival Festival

	activeLoan *Loan
	savedOffer *LoanOffer
}

// NewStore seeds working data from the guest profile and starts on the
// persona picker.
func NewStore() *Store {
	s := &Store{
		route:    Route{View: ViewPersonaSelect},
		darkMode: true,
	}
	s.provision(persona.Guest())
	s.selected = nil
	return s
}

// Route returns the current route including its entry arguments.
func (s *Store) Route() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

// View returns the current view.
func (s *Store) View() ViewID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route.View
}

// SelectedPersona returns the selected profile, or nil before
// selection and after a reset.
func (s *Store) SelectedPersona() *persona.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	p := *s.selected
	return &p
}

// CurrentProfile returns the selected profile, falling back to the
// guest profile so every screen has one profile to render.
func (s *Store) CurrentProfile() persona.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected != nil {
		return *s.selected
	}
	return persona.Guest()
}

// Goals returns a copy of the working goal list.
func (s *Store) Goals() []Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Billers returns a copy of the working biller list.
func (s *Store) Billers() []persona.Biller {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]persona.Biller, len(s.billers))
	copy(out, s.billers)
	return out
}

func (s *Store) Financials() Financials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fin
}

func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

func (s *Store) Festival() Festival {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.festival
}

func (s *Store) ActiveLoan() *Loan {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeLoan == nil {
		return nil
	}
	l := *s.activeLoan
	return &l
}

func (s *Store) SavedLoanOffer() *LoanOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.savedOffer == nil {
		return nil
	}
	o := *s.savedOffer
	return &o
}

// Navigate is the one transition primitive. The persona picker is not
// reachable through it; only ResetPersona re-enters that view.
func (s *Store) Navigate(r Route) {
	if r.View == ViewPersonaSelect {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.route = r
}

// SelectPersona replaces all working state with data derived from the
// given profile and lands on the dashboard. Selecting the same profile
// twice is a full, idempotent replace.
func (s *Store) SelectPersona(p persona.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provision(p)
	s.route = Route{View: ViewDashboard}
}

// ResetPersona clears the selected profile and returns to the picker.
// Working goals, billers and financials keep their last values; the
// next SelectPersona overwrites them wholesale.
func (s *Store) ResetPersona() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.route = Route{View: ViewPersonaSelect}
}

func (s *Store) provision(p persona.Profile) {
	cp := p
	s.selected = &cp
	s.goals = deriveGoals(p.Goals)
	s.billers = make([]persona.Biller, len(p.Billers))
	copy(s.billers, p.Billers)
	s.fin = Financials{
		Liquid: p.Financials.Liquid,
		Need:   decimal.Zero,
		Goal:   decimal.Zero,
	}
}

// ApplyPayment debits the live balance. The demo ledger allows
// over-draw; screens gate submission, the state layer does not.
func (s *Store) ApplyPayment(amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fin.Liquid = s.fin.Liquid.Sub(amount)
}

// BookFixedDeposit moves money from the liquid balance into the goal
// bucket. Liquid+Goal is invariant across the operation.
func (s *Store) BookFixedDeposit(amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fin.Liquid = s.fin.Liquid.Sub(amount)
	s.fin.Goal = s.fin.Goal.Add(amount)
}

// DisburseLoan credits the live balance, records the loan and clears
// any parked offer.
func (s *Store) DisburseLoan(loanType string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fin.Liquid = s.fin.Liquid.Add(amount)
	s.activeLoan = &Loan{Type: loanType, Amount: amount}
	s.savedOffer = nil
}

// SaveLoanOffer parks an advisor-produced offer for later resumption.
func (s *Store) SaveLoanOffer(o LoanOffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	offer := o
	s.savedOffer = &offer
}

// ClearSavedLoanOffer drops the parked offer without disbursing.
func (s *Store) ClearSavedLoanOffer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedOffer = nil
}

// ToggleBillerAutopay flips ACTIVE and PAUSED for the matching AUTO
// biller. DUE billers carry no autopay status, so they are untouched.
func (s *Store) ToggleBillerAutopay(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.billers {
		if s.billers[i].ID != id || s.billers[i].Type != persona.BillerAuto {
			continue
		}
		if s.billers[i].Status == persona.AutopayActive {
			s.billers[i].Status = persona.AutopayPaused
		} else {
			s.billers[i].Status = persona.AutopayActive
		}
		return
	}
}

// AddGoal appends a goal, filling runtime defaults: a fresh goal starts
// ON_TRACK with its history anchored at the current amount.
func (s *Store) AddGoal(g persona.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.Status == "" {
		g.Status = persona.GoalOnTrack
	}
	s.goals = append(s.goals, Goal{
		Goal:            g,
		History:         []decimal.Decimal{g.CurrentAmount},
		ProjectedImpact: projectedImpact(g.Status),
	})
}

// UpdateGoal replaces the goal with the same id. Unknown ids leave the
// list unchanged.
func (s *Store) UpdateGoal(g Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.goals {
		if s.goals[i].ID == g.ID {
			s.goals[i] = g
			return
		}
	}
}

// AddBiller appends a biller. There is no duplicate detection.
func (s *Store) AddBiller(b persona.Biller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.billers = append(s.billers, b)
}

// ToggleTheme flips dark mode.
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = !s.darkMode
}

// CycleFestivalTheme rotates DEFAULT -> DIWALI -> HOLI -> DEFAULT.
func (s *Store) CycleFestivalTheme() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.festival {
	case FestivalDefault:
		s.festival = FestivalDiwali
	case FestivalDiwali:
		s.festival = FestivalHoli
	default:
		s.festival = FestivalDefault
	}
}
