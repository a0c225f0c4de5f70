// Package persona holds the static demo profiles that drive the app.
// Catalog entries are read-only seed data; anything mutable lives in
// appstate as a working copy.
package persona

import "github.com/shopspring/decimal"

// Icon is a renderable-asset identifier. The catalog never stores
// UI-framework values; the TUI layer resolves these to glyphs.
type Icon int

const (
	IconNone Icon = iota
	IconHome
	IconTravel
	IconEducation
	IconRetirement
	IconCar
	IconShield
	IconBolt
	IconWifi
	IconCard
	IconHealth
	IconMusic
	IconBusiness
	IconGift
	IconPhone
)

type GoalStatus string

const (
	GoalOnTrack    GoalStatus = "ON_TRACK"
	GoalAtRisk     GoalStatus = "AT_RISK"
	GoalRebalanced GoalStatus = "REBALANCED"
)

type BillerType string

const (
	BillerDue  BillerType = "DUE"
	BillerAuto BillerType = "AUTO"
)

// AutopayStatus only applies to AUTO billers; DUE billers carry the
// zero value.
type AutopayStatus string

const (
	AutopayActive AutopayStatus = "ACTIVE"
	AutopayPaused AutopayStatus = "PAUSED"
)

// Financials is the read-only snapshot a profile ships with. The live
// balance is seeded from Liquid and mutated in appstate only.
type Financials struct {
	Liquid        decimal.Decimal
	TotalBalance  decimal.Decimal
	MonthlyIncome decimal.Decimal
	MonthlySpend  decimal.Decimal
	SafeToSpend   decimal.Decimal
	AccountLabel  string
	AccountNumber string
	ChangePercent float64
}

type Goal struct {
	ID                  string
	Title               string
	CurrentAmount       decimal.Decimal
	TargetAmount        decimal.Decimal
	DeadlineYear        int
	Status              GoalStatus
	MonthlyContribution decimal.Decimal
	Description         string
	Insights            []string
	Icon                Icon
}

type Biller struct {
	ID       string
	Name     string
	Amount   decimal.Decimal
	Type     BillerType
	Status   AutopayStatus
	DueDate  string
	Category string
	Icon     Icon
}

// OracleBrief is a canned assistant insight surfaced on the dashboard
// and used as the offline advisor's source material.
type OracleBrief struct {
	Title string
	Body  string
}

type QuickAction struct {
	ID    string
	Label string
	Icon  Icon
}

type DiscoverCard struct {
	ID       string
	Title    string
	Subtitle string
	Tag      string
	Icon     Icon
}

// Profile is one demo persona. Instances in the catalog are never
// written to.
type Profile struct {
	ID            string
	Name          string
	Age           int
	Role          string
	AccentColor   string
	Financials    Financials
	Goals         []Goal
	Billers       []Biller
	OracleBriefs  []OracleBrief
	QuickActions  []QuickAction
	DiscoverCards []DiscoverCard
}
