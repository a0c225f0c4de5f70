package persona

import "github.com/shopspring/decimal"

// GuestID is the designated default profile used before anyone picks a
// persona. It replaces the old separate "no persona selected" dataset.
const GuestID = "guest"

func inr(rupees int64) decimal.Decimal {
	return decimal.NewFromInt(rupees)
}

var catalog = []Profile{
	{
		ID:          GuestID,
		Name:        "Demo Account",
		Age:         30,
		Role:        "Guest",
		AccentColor: "#F47A60",
		Financials: Financials{
			Liquid:        inr(1240500),
			TotalBalance:  inr(2860000),
			MonthlyIncome: inr(185000),
			MonthlySpend:  inr(92400),
			SafeToSpend:   inr(41200),
			AccountLabel:  "Everyday Savings",
			AccountNumber: "XXXX 4417",
			ChangePercent: 2.4,
		},
		Goals: []Goal{
			{
				ID:                  "g-guest-1",
				Title:               "Emergency Fund",
				CurrentAmount:       inr(350000),
				TargetAmount:        inr(600000),
				DeadlineYear:        2027,
				Status:              GoalOnTrack,
				MonthlyContribution: inr(15000),
				Description:         "Six months of expenses, parked in liquid funds.",
				Insights:            []string{"Emergency cover sits at 3.8 months today."},
				Icon:                IconShield,
			},
			{
				ID:                  "g-guest-2",
				Title:               "Goa Getaway",
				CurrentAmount:       inr(42000),
				TargetAmount:        inr(120000),
				DeadlineYear:        2026,
				Status:              GoalAtRisk,
				MonthlyContribution: inr(6000),
				Description:         "December trip with college friends.",
				Insights:            []string{"Two skipped contributions pushed this off pace."},
				Icon:                IconTravel,
			},
		},
		Billers: []Biller{
			{ID: "b-guest-1", Name: "BESCOM Electricity", Amount: inr(2340), Type: BillerDue, DueDate: "2026-09-05", Category: "Utilities", Icon: IconBolt},
			{ID: "b-guest-2", Name: "Airtel Fiber", Amount: inr(1199), Type: BillerAuto, Status: AutopayActive, DueDate: "2026-09-12", Category: "Internet", Icon: IconWifi},
			{ID: "b-guest-3", Name: "HDFC Credit Card", Amount: inr(18750), Type: BillerDue, DueDate: "2026-09-08", Category: "Cards", Icon: IconCard},
		},
		OracleBriefs: []OracleBrief{
			{Title: "Spending pace", Body: "You have spent 48% of your monthly budget with 60% of the month left. You are trending under budget."},
			{Title: "Idle cash", Body: "Rs 4.1L has sat idle in savings for 90 days. A sweep-in FD could earn roughly Rs 2,300 more per quarter."},
		},
		QuickActions: []QuickAction{
			{ID: "qa-send", Label: "Send Money", Icon: IconPhone},
			{ID: "qa-bills", Label: "Pay Bills", Icon: IconBolt},
			{ID: "qa-fd", Label: "Book FD", Icon: IconBusiness},
		},
		DiscoverCards: []DiscoverCard{
			{ID: "dc-guest-1", Title: "Sweep-in FD", Subtitle: "Idle cash earns 7.1% without locking it away", Tag: "SAVE", Icon: IconBusiness},
			{ID: "dc-guest-2", Title: "Travel Card", Subtitle: "Zero forex markup on international spends", Tag: "NEW", Icon: IconTravel},
		},
	},
	{
		ID:          "aarav",
		Name:        "Aarav Sharma",
		Age:         27,
		Role:        "Product Designer",
		AccentColor: "#7C9CF4",
		Financials: Financials{
			Liquid:        inr(482000),
			TotalBalance:  inr(910000),
			MonthlyIncome: inr(140000),
			MonthlySpend:  inr(88000),
			SafeToSpend:   inr(27500),
			AccountLabel:  "Salary Account",
			AccountNumber: "XXXX 9031",
			ChangePercent: 5.1,
		},
		Goals: []Goal{
			{
				ID:                  "g-aarav-1",
				Title:               "House Down Payment",
				CurrentAmount:       inr(680000),
				TargetAmount:        inr(2500000),
				DeadlineYear:        2029,
				Status:              GoalOnTrack,
				MonthlyContribution: inr(35000),
				Description:         "20% down on a 2BHK in Whitefield.",
				Insights:            []string{"Step-up of Rs 5k/yr keeps this on pace with salary hikes."},
				Icon:                IconHome,
			},
			{
				ID:                  "g-aarav-2",
				Title:               "Japan Trip",
				CurrentAmount:       inr(95000),
				TargetAmount:        inr(250000),
				DeadlineYear:        2027,
				Status:              GoalAtRisk,
				MonthlyContribution: inr(8000),
				Description:         "Two weeks across Tokyo and Kyoto.",
				Insights:            []string{"Yen strength added ~6% to the target this year."},
				Icon:                IconTravel,
			},
			{
				ID:                  "g-aarav-3",
				Title:               "MacBook Upgrade",
				CurrentAmount:       inr(110000),
				TargetAmount:        inr(180000),
				DeadlineYear:        2026,
				Status:              GoalRebalanced,
				MonthlyContribution: inr(10000),
				Description:         "Moved surplus from the trip goal after the sale deadline slipped.",
				Icon:                IconMusic,
			},
		},
		Billers: []Biller{
			{ID: "b-aarav-1", Name: "Rent - Indiranagar", Amount: inr(38000), Type: BillerDue, DueDate: "2026-09-01", Category: "Housing", Icon: IconHome},
			{ID: "b-aarav-2", Name: "Jio Postpaid", Amount: inr(599), Type: BillerAuto, Status: AutopayActive, DueDate: "2026-09-15", Category: "Phone", Icon: IconPhone},
			{ID: "b-aarav-3", Name: "Spotify Duo", Amount: inr(149), Type: BillerAuto, Status: AutopayPaused, DueDate: "2026-09-20", Category: "Entertainment", Icon: IconMusic},
			{ID: "b-aarav-4", Name: "Axis Credit Card", Amount: inr(24600), Type: BillerDue, DueDate: "2026-09-10", Category: "Cards", Icon: IconCard},
		},
		OracleBriefs: []OracleBrief{
			{Title: "Subscription creep", Body: "Subscriptions are up 22% over six months. Pausing two unused ones frees Rs 1,050 a month for the Japan goal."},
			{Title: "Card cycle", Body: "Shifting your card due date to the 3rd aligns it with salary credit and avoids the mid-month crunch."},
		},
		QuickActions: []QuickAction{
			{ID: "qa-send", Label: "Send Money", Icon: IconPhone},
			{ID: "qa-goals", Label: "My Goals", Icon: IconShield},
			{ID: "qa-cards", Label: "Cards", Icon: IconCard},
		},
		DiscoverCards: []DiscoverCard{
			{ID: "dc-aarav-1", Title: "First Home Loan", Subtitle: "Pre-approved up to Rs 48L at 8.35%", Tag: "OFFER", Icon: IconHome},
			{ID: "dc-aarav-2", Title: "Round-up Investing", Subtitle: "Spare change from every UPI spend into index funds", Tag: "BETA", Icon: IconBusiness},
		},
	},
	{
		ID:          "meera",
		Name:        "Meera Krishnan",
		Age:         41,
		Role:        "Boutique Owner",
		AccentColor: "#E8A13C",
		Financials: Financials{
			Liquid:        inr(2150000),
			TotalBalance:  inr(6420000),
			MonthlyIncome: inr(320000),
			MonthlySpend:  inr(195000),
			SafeToSpend:   inr(74000),
			AccountLabel:  "Current Account",
			AccountNumber: "XXXX 2208",
			ChangePercent: -1.2,
		},
		Goals: []Goal{
			{
				ID:                  "g-meera-1",
				Title:               "Second Store",
				CurrentAmount:       inr(1800000),
				TargetAmount:        inr(4000000),
				DeadlineYear:        2027,
				Status:              GoalOnTrack,
				MonthlyContribution: inr(90000),
				Description:         "Fit-out and first-year rent for the Jayanagar outlet.",
				Insights:            []string{"Festive-season margins could pull this in by a quarter."},
				Icon:                IconBusiness,
			},
			{
				ID:                  "g-meera-2",
				Title:               "Daughter's MBA",
				CurrentAmount:       inr(1250000),
				TargetAmount:        inr(3500000),
				DeadlineYear:        2030,
				Status:              GoalRebalanced,
				MonthlyContribution: inr(45000),
				Description:         "Rebalanced from equity to hybrid after the 2025 correction.",
				Insights:            []string{"Hybrid allocation trims downside while keeping 9% expected return."},
				Icon:                IconEducation,
			},
		},
		Billers: []Biller{
			{ID: "b-meera-1", Name: "Store Rent - Commercial St", Amount: inr(85000), Type: BillerDue, DueDate: "2026-09-01", Category: "Business", Icon: IconBusiness},
			{ID: "b-meera-2", Name: "Shopify Plus", Amount: inr(8200), Type: BillerAuto, Status: AutopayActive, DueDate: "2026-09-07", Category: "Business", Icon: IconWifi},
			{ID: "b-meera-3", Name: "Tata AIG Shop Cover", Amount: inr(4150), Type: BillerAuto, Status: AutopayActive, DueDate: "2026-09-18", Category: "Insurance", Icon: IconShield},
		},
		OracleBriefs: []OracleBrief{
			{Title: "Cash cycle", Body: "Receivables are clearing in 19 days versus 12 last quarter. An invoice-discounting line would smooth payroll weeks."},
			{Title: "GST buffer", Body: "Setting aside Rs 38k weekly covers next quarter's GST without the usual month-end scramble."},
		},
		QuickActions: []QuickAction{
			{ID: "qa-send", Label: "Pay Vendor", Icon: IconPhone},
			{ID: "qa-loans", Label: "Business Loans", Icon: IconBusiness},
			{ID: "qa-bills", Label: "Pay Bills", Icon: IconBolt},
		},
		DiscoverCards: []DiscoverCard{
			{ID: "dc-meera-1", Title: "Merchant Overdraft", Subtitle: "Working-capital line against card settlements", Tag: "OFFER", Icon: IconBusiness},
			{ID: "dc-meera-2", Title: "Gold Loan Express", Subtitle: "Same-day disbursal against pledged gold", Tag: "FAST", Icon: IconGift},
		},
	},
	{
		ID:          "rajesh",
		Name:        "Rajesh Iyer",
		Age:         63,
		Role:        "Retired Professor",
		AccentColor: "#6FBF8E",
		Financials: Financials{
			Liquid:        inr(880000),
			TotalBalance:  inr(11200000),
			MonthlyIncome: inr(95000),
			MonthlySpend:  inr(62000),
			SafeToSpend:   inr(28000),
			AccountLabel:  "Senior Citizen Savings",
			AccountNumber: "XXXX 7743",
			ChangePercent: 0.8,
		},
		Goals: []Goal{
			{
				ID:                  "g-rajesh-1",
				Title:               "Health Corpus",
				CurrentAmount:       inr(1600000),
				TargetAmount:        inr(2000000),
				DeadlineYear:        2027,
				Status:              GoalOnTrack,
				MonthlyContribution: inr(20000),
				Description:         "Top-up beyond the family floater policy.",
				Insights:            []string{"Super top-up premium renews in November; corpus covers the deductible twice over."},
				Icon:                IconHealth,
			},
			{
				ID:                  "g-rajesh-2",
				Title:               "Europe River Cruise",
				CurrentAmount:       inr(310000),
				TargetAmount:        inr(650000),
				DeadlineYear:        2027,
				Status:              GoalAtRisk,
				MonthlyContribution: inr(15000),
				Description:         "Anniversary trip along the Danube.",
				Icon:                IconTravel,
			},
		},
		Billers: []Biller{
			{ID: "b-rajesh-1", Name: "LIC Annuity Premium", Amount: inr(12500), Type: BillerAuto, Status: AutopayActive, DueDate: "2026-09-03", Category: "Insurance", Icon: IconShield},
			{ID: "b-rajesh-2", Name: "Star Health Premium", Amount: inr(6800), Type: BillerAuto, Status: AutopayActive, DueDate: "2026-09-11", Category: "Insurance", Icon: IconHealth},
			{ID: "b-rajesh-3", Name: "Tata Play", Amount: inr(460), Type: BillerDue, DueDate: "2026-09-09", Category: "Entertainment", Icon: IconWifi},
		},
		OracleBriefs: []OracleBrief{
			{Title: "FD ladder", Body: "Three FDs mature within the same fortnight in October. Laddering them across quarters steadies interest income."},
			{Title: "Pension credit", Body: "Pension landed two days late last month; an auto-sweep buffer of Rs 70k keeps autopays from bouncing."},
		},
		QuickActions: []QuickAction{
			{ID: "qa-fd", Label: "Book FD", Icon: IconBusiness},
			{ID: "qa-legacy", Label: "Branch Services", Icon: IconHome},
			{ID: "qa-support", Label: "Support", Icon: IconPhone},
		},
		DiscoverCards: []DiscoverCard{
			{ID: "dc-rajesh-1", Title: "Senior Citizen FD", Subtitle: "Extra 0.5% on deposits above 12 months", Tag: "RATE", Icon: IconBusiness},
			{ID: "dc-rajesh-2", Title: "Doorstep Banking", Subtitle: "Cheque pickup and cash delivery at home", Tag: "SERVICE", Icon: IconHome},
		},
	},
}

// All returns the catalog in display order. Callers must treat the
// returned profiles as read-only.
func All() []Profile {
	return catalog
}

// ByID looks a profile up by id.
func ByID(id string) (Profile, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Guest returns the default profile used before persona selection.
func Guest() Profile {
	p, _ := ByID(GuestID)
	return p
}
