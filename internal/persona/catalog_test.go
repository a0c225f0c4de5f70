package persona

import "testing"

func TestCatalogShape(t *testing.T) {
	all := All()
	if len(all) < 3 {
		t.Fatalf("len(All()) = %d, want at least 3 profiles", len(all))
	}

	seen := map[string]bool{}
	for _, p := range all {
		if p.ID == "" || p.Name == "" {
			t.Fatalf("profile %+v missing identity fields", p)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate profile id %q", p.ID)
		}
		seen[p.ID] = true

		if p.Financials.Liquid.IsNegative() {
			t.Fatalf("profile %q has negative liquid seed", p.ID)
		}
		for _, g := range p.Goals {
			if g.ID == "" || g.Title == "" {
				t.Fatalf("profile %q has goal with missing identity: %+v", p.ID, g)
			}
			switch g.Status {
			case GoalOnTrack, GoalAtRisk, GoalRebalanced:
			default:
				t.Fatalf("profile %q goal %q has status %q outside the closed set", p.ID, g.ID, g.Status)
			}
			if g.TargetAmount.LessThan(g.CurrentAmount) {
				t.Fatalf("profile %q goal %q already past target", p.ID, g.ID)
			}
		}
		for _, b := range p.Billers {
			switch b.Type {
			case BillerDue:
				if b.Status != "" {
					t.Fatalf("profile %q DUE biller %q carries autopay status %q", p.ID, b.ID, b.Status)
				}
			case BillerAuto:
				if b.Status != AutopayActive && b.Status != AutopayPaused {
					t.Fatalf("profile %q AUTO biller %q has status %q", p.ID, b.ID, b.Status)
				}
			default:
				t.Fatalf("profile %q biller %q has type %q outside the closed set", p.ID, b.ID, b.Type)
			}
		}
	}

	if !seen[GuestID] {
		t.Fatal("catalog has no guest profile")
	}
}

func TestByID(t *testing.T) {
	p, ok := ByID("aarav")
	if !ok {
		t.Fatal("ByID(aarav) not found")
	}
	if p.Name != "Aarav Sharma" {
		t.Fatalf("Name = %q, want %q", p.Name, "Aarav Sharma")
	}

	if _, ok := ByID("nobody"); ok {
		t.Fatal("ByID(nobody) reported found")
	}
}

func TestGuestIsTheDefaultProfile(t *testing.T) {
	g := Guest()
	if g.ID != GuestID {
		t.Fatalf("Guest().ID = %q, want %q", g.ID, GuestID)
	}
	if len(g.Goals) == 0 || len(g.Billers) == 0 {
		t.Fatal("guest profile must carry demo goals and billers")
	}
}
