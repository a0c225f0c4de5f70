package appstate

import (
	"testing"

	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/shopspring/decimal"
)

func selectFirstPersona(t *testing.T, s *Store) persona.Profile {
	t.Helper()
	p, ok := persona.ByID("aarav")
	if !ok {
		t.Fatal("catalog is missing the aarav profile")
	}
	s.SelectPersona(p)
	return p
}

func TestStoreStartsOnPersonaSelect(t *testing.T) {
	s := NewStore()
	if got := s.View(); got != ViewPersonaSelect {
		t.Fatalf("View() = %v, want %v", got, ViewPersonaSelect)
	}
	if s.SelectedPersona() != nil {
		t.Fatal("SelectedPersona() != nil before any selection")
	}
	if s.Financials().Liquid.IsZero() {
		t.Fatal("guest-seeded Financials().Liquid is zero")
	}
}

func TestEveryViewReachableFromDashboard(t *testing.T) {
	s := NewStore()
	selectFirstPersona(t, s)
	if got := s.View(); got != ViewDashboard {
		t.Fatalf("View() after SelectPersona = %v, want %v", got, ViewDashboard)
	}

	for _, v := range AllViews() {
		if v == ViewPersonaSelect {
			continue
		}
		s.Navigate(Route{View: v})
		if got := s.View(); got != v {
			t.Fatalf("Navigate(%v): View() = %v", v, got)
		}
		s.Navigate(Route{View: ViewDashboard})
		if got := s.View(); got != ViewDashboard {
			t.Fatalf("return from %v: View() = %v, want dashboard", v, got)
		}
	}
}

func TestNavigateCannotReachPersonaSelect(t *testing.T) {
	s := NewStore()
	selectFirstPersona(t, s)
	s.Navigate(Route{View: ViewPersonaSelect})
	if got := s.View(); got != ViewDashboard {
		t.Fatalf("View() = %v, want %v (picker only reachable via reset)", got, ViewDashboard)
	}
}

func TestNavigateCarriesPayload(t *testing.T) {
	s := NewStore()
	selectFirstPersona(t, s)

	s.Navigate(Route{View: ViewPayments, PayTab: PayTabBills})
	r := s.Route()
	if r.View != ViewPayments || r.PayTab != PayTabBills {
		t.Fatalf("Route() = %+v, want payments/bills", r)
	}

	s.Navigate(Route{View: ViewOracle, OraclePrompt: "how is my japan goal doing?"})
	r = s.Route()
	if r.OraclePrompt != "how is my japan goal doing?" {
		t.Fatalf("Route().OraclePrompt = %q", r.OraclePrompt)
	}

	// A later plain transition must not leak the previous arguments.
	s.Navigate(Route{View: ViewPayments})
	r = s.Route()
	if r.PayTab != PayTabTransfer || r.OraclePrompt != "" {
		t.Fatalf("Route() after plain navigate = %+v, want zero payload", r)
	}
}

func TestToggleBillerAutopayTwiceRestoresStatus(t *testing.T) {
	s := NewStore()
	selectFirstPersona(t, s)

	var auto persona.Biller
	for _, b := range s.Billers() {
		if b.Type == persona.BillerAuto {
			auto = b
			break
		}
	}
	if auto.ID == "" {
		t.Fatal("persona has no AUTO biller")
	}

	s.ToggleBillerAutopay(auto.ID)
	s.ToggleBillerAutopay(auto.ID)
	for _, b := range s.Billers() {
		if b.ID == auto.ID && b.Status != auto.Status {
			t.Fatalf("status after double toggle = %q, want %q", b.Status, auto.Status)
		}
	}
}

func TestToggleBillerAutopayFlipsAutoBiller(t *testing.T) {
	s := NewStore()
	s.AddBiller(persona.Biller{ID: "b3", Name: "Netflix", Type: persona.BillerAuto, Status: persona.AutopayActive})

	s.ToggleBillerAutopay("b3")
	for _, b := range s.Billers() {
		if b.ID == "b3" && b.Status != persona.AutopayPaused {
			t.Fatalf("status = %q, want %q", b.Status, persona.AutopayPaused)
		}
	}
}

func TestToggleBillerAutopayIgnoresDueBiller(t *testing.T) {
	s := NewStore()
	s.AddBiller(persona.Biller{ID: "due1", Name: "Electricity", Type: persona.BillerDue})

	before := s.Billers()
	s.ToggleBillerAutopay("due1")
	after := s.Billers()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("biller %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestBookFixedDepositConservesLiquidPlusGoal(t *testing.T) {
	amounts := []int64{0, 1, 500, 250000}
	for _, a := range amounts {
		s := NewStore()
		selectFirstPersona(t, s)
		before := s.Financials()
		sumBefore := before.Liquid.Add(before.Goal)

		amount := decimal.NewFromInt(a)
		s.BookFixedDeposit(amount)

		after := s.Financials()
		if !after.Liquid.Equal(before.Liquid.Sub(amount)) {
			t.Fatalf("amount %d: Liquid = %s, want %s", a, after.Liquid, before.Liquid.Sub(amount))
		}
		if !after.Goal.Equal(before.Goal.Add(amount)) {
			t.Fatalf("amount %d: Goal = %s, want %s", a, after.Goal, before.Goal.Add(amount))
		}
		if !after.Liquid.Add(after.Goal).Equal(sumBefore) {
			t.Fatalf("amount %d: Liquid+Goal drifted from %s to %s", a, sumBefore, after.Liquid.Add(after.Goal))
		}
	}
}

func TestSelectPersonaReplacesWorkingStateWholesale(t *testing.T) {
	s := NewStore()
	p1 := selectFirstPersona(t, s)
	p2, ok := persona.ByID("meera")
	if !ok {
		t.Fatal("catalog is missing the meera profile")
	}

	s.AddGoal(persona.Goal{ID: "stray", Title: "Stray Goal", TargetAmount: decimal.NewFromInt(1000)})
	s.SelectPersona(p2)

	goals := s.Goals()
	if len(goals) != len(p2.Goals) {
		t.Fatalf("len(Goals()) = %d, want %d", len(goals), len(p2.Goals))
	}
	for i, g := range goals {
		if g.ID != p2.Goals[i].ID {
			t.Fatalf("goal %d id = %q, want %q", i, g.ID, p2.Goals[i].ID)
		}
	}
	for _, g := range goals {
		for _, old := range p1.Goals {
			if g.ID == old.ID {
				t.Fatalf("goal %q from previous persona survived", g.ID)
			}
		}
	}

	billers := s.Billers()
	if len(billers) != len(p2.Billers) {
		t.Fatalf("len(Billers()) = %d, want %d", len(billers), len(p2.Billers))
	}
	for i, b := range billers {
		if b.ID != p2.Billers[i].ID {
			t.Fatalf("biller %d id = %q, want %q", i, b.ID, p2.Billers[i].ID)
		}
	}
	if !s.Financials().Liquid.Equal(p2.Financials.Liquid) {
		t.Fatalf("Liquid = %s, want %s", s.Financials().Liquid, p2.Financials.Liquid)
	}
}

// ResetPersona clears identity but deliberately leaves derived data
// stale; the picker never renders it and the next selection overwrites
// it wholesale.
func TestResetPersonaClearsIdentityButKeepsDerivedData(t *testing.T) {
	s := NewStore()
	p := selectFirstPersona(t, s)
	s.ApplyPayment(decimal.NewFromInt(5000))
	liquid := s.Financials().Liquid

	s.ResetPersona()

	if s.SelectedPersona() != nil {
		t.Fatal("SelectedPersona() != nil after reset")
	}
	if got := s.View(); got != ViewPersonaSelect {
		t.Fatalf("View() = %v, want %v", got, ViewPersonaSelect)
	}
	if len(s.Goals()) != len(p.Goals) {
		t.Fatalf("len(Goals()) = %d, want stale %d", len(s.Goals()), len(p.Goals))
	}
	if !s.Financials().Liquid.Equal(liquid) {
		t.Fatalf("Liquid = %s, want stale %s", s.Financials().Liquid, liquid)
	}
}

func TestPaymentFlowDebitsAndReturnsToDashboard(t *testing.T) {
	s := NewStore()
	s.SelectPersona(persona.Guest())

	if want := decimal.NewFromInt(1240500); !s.Financials().Liquid.Equal(want) {
		t.Fatalf("guest Liquid = %s, want %s", s.Financials().Liquid, want)
	}

	s.Navigate(Route{View: ViewPayments})
	// The screen's completion callback commits the debit and returns home.
	s.ApplyPayment(decimal.NewFromInt(120000))
	s.Navigate(Route{View: ViewDashboard})

	if want := decimal.NewFromInt(1120500); !s.Financials().Liquid.Equal(want) {
		t.Fatalf("Liquid = %s, want %s", s.Financials().Liquid, want)
	}
	if got := s.View(); got != ViewDashboard {
		t.Fatalf("View() = %v, want %v", got, ViewDashboard)
	}
}

func TestAddGoalFromAdvisorDefaults(t *testing.T) {
	s := NewStore()
	selectFirstPersona(t, s)
	before := len(s.Goals())

	s.AddGoal(persona.Goal{
		ID:           "g-bali",
		Title:        "Bali Trip",
		TargetAmount: decimal.NewFromInt(200000),
		DeadlineYear: 2027,
	})

	goals := s.Goals()
	if len(goals) != before+1 {
		t.Fatalf("len(Goals()) = %d, want %d", len(goals), before+1)
	}
	g := goals[len(goals)-1]
	if g.Title != "Bali Trip" {
		t.Fatalf("Title = %q, want %q", g.Title, "Bali Trip")
	}
	if !g.CurrentAmount.IsZero() {
		t.Fatalf("CurrentAmount = %s, want 0", g.CurrentAmount)
	}
	if g.Status != persona.GoalOnTrack {
		t.Fatalf("Status = %q, want %q", g.Status, persona.GoalOnTrack)
	}
	if len(g.History) != 1 || !g.History[0].IsZero() {
		t.Fatalf("History = %v, want [0]", g.History)
	}
}

func TestUpdateGoalReplacesById(t *testing.T) {
	s := NewStore()
	selectFirstPersona(t, s)
	goals := s.Goals()
	target := goals[0]
	target.MonthlyContribution = decimal.NewFromInt(99000)
	target.Status = persona.GoalRebalanced

	s.UpdateGoal(target)

	updated := s.Goals()
	if len(updated) != len(goals) {
		t.Fatalf("len(Goals()) = %d, want %d", len(updated), len(goals))
	}
	if !updated[0].MonthlyContribution.Equal(decimal.NewFromInt(99000)) {
		t.Fatalf("MonthlyContribution = %s, want 99000", updated[0].MonthlyContribution)
	}

	// Unknown id leaves the list unchanged.
	ghost := target
	ghost.ID = "no-such-goal"
	s.UpdateGoal(ghost)
	if len(s.Goals()) != len(goals) {
		t.Fatalf("UpdateGoal with unknown id changed length to %d", len(s.Goals()))
	}
}

func TestDisburseLoanCreditsAndClearsSavedOffer(t *testing.T) {
	s := NewStore()
	selectFirstPersona(t, s)
	before := s.Financials().Liquid

	s.SaveLoanOffer(LoanOffer{Type: "personal", Amount: decimal.NewFromInt(300000), RateAPR: 11.5, TenureMonths: 36})
	if s.SavedLoanOffer() == nil {
		t.Fatal("SavedLoanOffer() = nil after save")
	}

	s.DisburseLoan("personal", decimal.NewFromInt(300000))

	if want := before.Add(decimal.NewFromInt(300000)); !s.Financials().Liquid.Equal(want) {
		t.Fatalf("Liquid = %s, want %s", s.Financials().Liquid, want)
	}
	loan := s.ActiveLoan()
	if loan == nil || loan.Type != "personal" {
		t.Fatalf("ActiveLoan() = %+v, want personal loan", loan)
	}
	if s.SavedLoanOffer() != nil {
		t.Fatal("SavedLoanOffer() != nil after disbursal")
	}
}

func TestFestivalThemeCyclesThroughRotation(t *testing.T) {
	s := NewStore()
	want := []Festival{FestivalDiwali, FestivalHoli, FestivalDefault, FestivalDiwali}
	for i, w := range want {
		s.CycleFestivalTheme()
		if got := s.Festival(); got != w {
			t.Fatalf("cycle %d: Festival() = %v, want %v", i+1, got, w)
		}
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	selectFirstPersona(t, s)

	goals := s.Goals()
	goals[0].Title = "tampered"
	if s.Goals()[0].Title == "tampered" {
		t.Fatal("mutating a Goals() snapshot leaked into the store")
	}

	billers := s.Billers()
	billers[0].Status = persona.AutopayPaused
	billers[0].Name = "tampered"
	if s.Billers()[0].Name == "tampered" {
		t.Fatal("mutating a Billers() snapshot leaked into the store")
	}
}
