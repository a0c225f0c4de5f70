package appstate

import (
	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/shopspring/decimal"
)

// ViewID names one full-screen mode. The set is closed; the router only
// ever holds one of these values.
type ViewID int

const (
	ViewPersonaSelect ViewID = iota
	ViewDashboard
	ViewProfile
	ViewGoals
	ViewOracle
	ViewOracleHub
	ViewAutomationHub
	ViewPortfolio
	ViewExpenditure
	ViewOnboarding
	ViewPayments
	ViewCards
	ViewSupport
	ViewInvestments
	ViewLoans
	ViewCardApply
	ViewNicheLoans
	ViewLegacyServices
	ViewTransactions
	ViewUPI
)

var viewNames = map[ViewID]string{
	ViewPersonaSelect:  "persona select",
	ViewDashboard:      "dashboard",
	ViewProfile:        "profile",
	ViewGoals:          "goals",
	ViewOracle:         "oracle",
	ViewOracleHub:      "oracle hub",
	ViewAutomationHub:  "automation hub",
	ViewPortfolio:      "portfolio",
	ViewExpenditure:    "expenditure",
	ViewOnboarding:     "onboarding",
	ViewPayments:       "payments",
	ViewCards:          "cards",
	ViewSupport:        "support",
	ViewInvestments:    "investments",
	ViewLoans:          "loans",
	ViewCardApply:      "card apply",
	ViewNicheLoans:     "niche loans",
	ViewLegacyServices: "legacy services",
	ViewTransactions:   "transactions",
	ViewUPI:            "upi",
}

func (v ViewID) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "unknown"
}

// AllViews returns every ViewID in declaration order.
func AllViews() []ViewID {
	views := make([]ViewID, 0, len(viewNames))
	for v := ViewPersonaSelect; v <= ViewUPI; v++ {
		views = append(views, v)
	}
	return views
}

// PayTab selects which payments sub-screen opens on entry.
type PayTab int

const (
	PayTabTransfer PayTab = iota
	PayTabScan
	PayTabBills
)

// TransferPrefill seeds the payments form when another screen hands the
// user off mid-flow.
type TransferPrefill struct {
	Payee  string
	Amount decimal.Decimal
	Note   string
}

// Route is a transition carrying its arguments. Screens navigate with a
// whole Route so entry arguments can never go stale between a view
// change and a separate field write.
type Route struct {
	View            ViewID
	PayTab          PayTab
	OraclePrompt    string
	TransferPrefill *TransferPrefill
}

// Festival is a cosmetic colour-scheme overlay.
type Festival int

const (
	FestivalDefault Festival = iota
	FestivalDiwali
	FestivalHoli
)

func (f Festival) String() string {
	switch f {
	case FestivalDiwali:
		return "diwali"
	case FestivalHoli:
		return "holi"
	default:
		return "default"
	}
}

// Goal is the runtime shape screens consume: the catalog record plus
// values derived at provisioning time.
type Goal struct {
	persona.Goal
	History         []decimal.Decimal
	ProjectedImpact string
}

// Financials is the demo ledger. Liquid is the live balance; Need and
// Goal are the two side buckets the simulated flows move money into.
type Financials struct {
	Liquid decimal.Decimal
	Need   decimal.Decimal
	Goal   decimal.Decimal
}

// Loan records a disbursed loan.
type Loan struct {
	Type   string
	Amount decimal.Decimal
}

// LoanOffer is an offer the advisor parked for later resumption.
type LoanOffer struct {
	Type         string
	Amount       decimal.Decimal
	RateAPR      float64
	TenureMonths int
}
