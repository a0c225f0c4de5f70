package oracle

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

type fakeActions struct {
	addedTitle   string
	addedTarget  decimal.Decimal
	addedYear    int
	updatedID    string
	updatedMC    decimal.Decimal
	loanType     string
	loanAmount   decimal.Decimal
	savedType    string
	savedRate    float64
	savedTenure  int
	disburseHits int
}

func (f *fakeActions) AddGoal(title string, target decimal.Decimal, year int) {
	f.addedTitle = title
	f.addedTarget = target
	f.addedYear = year
}

func (f *fakeActions) UpdateGoal(id string, mc decimal.Decimal) {
	f.updatedID = id
	f.updatedMC = mc
}

func (f *fakeActions) DisburseLoan(loanType string, amount decimal.Decimal) {
	f.loanType = loanType
	f.loanAmount = amount
	f.disburseHits++
}

func (f *fakeActions) SaveLoanOffer(loanType string, amount decimal.Decimal, rate float64, tenure int) {
	f.savedType = loanType
	f.savedRate = rate
	f.savedTenure = tenure
}

func TestDispatchAddGoal(t *testing.T) {
	actions := &fakeActions{}
	a := NewAdvisor(nil, actions)

	resp := a.dispatch(&genai.FunctionCall{
		Name: "add_goal",
		Args: map[string]any{
			"title":         "Bali Trip",
			"target_amount": float64(200000),
			"deadline_year": float64(2027),
		},
	})

	if resp.Response["ok"] != true {
		t.Fatalf("dispatch response = %v, want ok", resp.Response)
	}
	if actions.addedTitle != "Bali Trip" {
		t.Fatalf("AddGoal title = %q, want %q", actions.addedTitle, "Bali Trip")
	}
	if !actions.addedTarget.Equal(decimal.NewFromInt(200000)) {
		t.Fatalf("AddGoal target = %s, want 200000", actions.addedTarget)
	}
	if actions.addedYear != 2027 {
		t.Fatalf("AddGoal year = %d, want 2027", actions.addedYear)
	}
}

func TestDispatchRejectsMissingArgs(t *testing.T) {
	actions := &fakeActions{}
	a := NewAdvisor(nil, actions)

	resp := a.dispatch(&genai.FunctionCall{
		Name: "disburse_loan",
		Args: map[string]any{"loan_type": "personal"},
	})

	if _, hasErr := resp.Response["error"]; !hasErr {
		t.Fatalf("dispatch response = %v, want error", resp.Response)
	}
	if actions.disburseHits != 0 {
		t.Fatal("DisburseLoan was called despite missing amount")
	}
}

func TestDispatchUnknownFunction(t *testing.T) {
	a := NewAdvisor(nil, &fakeActions{})

	resp := a.dispatch(&genai.FunctionCall{Name: "format_disk", Args: map[string]any{}})
	if _, hasErr := resp.Response["error"]; !hasErr {
		t.Fatalf("dispatch response = %v, want error for unknown function", resp.Response)
	}
}

func TestDispatchSaveLoanOffer(t *testing.T) {
	actions := &fakeActions{}
	a := NewAdvisor(nil, actions)

	resp := a.dispatch(&genai.FunctionCall{
		Name: "save_loan_offer",
		Args: map[string]any{
			"loan_type":     "gold",
			"amount":        float64(150000),
			"rate_apr":      9.25,
			"tenure_months": float64(24),
		},
	})

	if resp.Response["ok"] != true {
		t.Fatalf("dispatch response = %v, want ok", resp.Response)
	}
	if actions.savedType != "gold" || actions.savedRate != 9.25 || actions.savedTenure != 24 {
		t.Fatalf("SaveLoanOffer got (%q, %v, %d)", actions.savedType, actions.savedRate, actions.savedTenure)
	}
}

func TestOfflineAdvisorAnswersFromBriefs(t *testing.T) {
	a := NewAdvisor(nil, &fakeActions{})
	p := persona.Guest()
	if err := a.Start(context.Background(), p); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if a.Online() {
		t.Fatal("Online() = true with nil client")
	}

	got, err := a.Ask(context.Background(), "tell me about my idle cash")
	if err != nil {
		t.Fatalf("Ask() unexpected error: %v", err)
	}
	if !strings.Contains(got, "Idle cash") {
		t.Fatalf("Ask() = %q, want keyword-matched idle cash brief", got)
	}
}

func TestOfflineAdvisorRotatesBriefs(t *testing.T) {
	a := NewAdvisor(nil, &fakeActions{})
	if err := a.Start(context.Background(), persona.Guest()); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	first, _ := a.Ask(context.Background(), "zzz")
	second, _ := a.Ask(context.Background(), "zzz")
	if first == second {
		t.Fatalf("consecutive unmatched answers identical: %q", first)
	}
}

func TestAdvisorHandlesConcurrentAsks(t *testing.T) {
	a := NewAdvisor(nil, &fakeActions{})
	if err := a.Start(context.Background(), persona.Guest()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	const callers = 8
	answers := make(chan string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, err := a.Ask(context.Background(), "anything new?")
			if err != nil {
				t.Errorf("Ask() error: %v", err)
				return
			}
			answers <- text
		}()
	}
	wg.Wait()
	close(answers)

	for text := range answers {
		if text == "" {
			t.Fatal("Ask() returned an empty answer under concurrency")
		}
	}
}

func TestStartAlongsideInFlightAsk(t *testing.T) {
	a := NewAdvisor(nil, &fakeActions{})
	if err := a.Start(context.Background(), persona.Guest()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := a.Ask(context.Background(), "how are my goals doing?"); err != nil {
				t.Errorf("Ask() error: %v", err)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.Start(context.Background(), persona.Guest()); err != nil {
				t.Errorf("Start() error: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestStartDropsPreviousChat(t *testing.T) {
	a := NewAdvisor(nil, &fakeActions{})
	a.chat = &genai.Chat{}

	if err := a.Start(context.Background(), persona.Guest()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if a.chat != nil {
		t.Fatal("Start() kept the previous persona's chat session")
	}
}

func TestDispatchTraceFollowsConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	EnableDebugLog(&buf)
	defer EnableDebugLog(io.Discard)

	a := NewAdvisor(nil, &fakeActions{})
	a.dispatch(&genai.FunctionCall{
		Name: "disburse_loan",
		Args: map[string]any{"loan_type": "personal", "amount": float64(100000)},
	})

	if !strings.Contains(buf.String(), "disburse_loan") {
		t.Fatalf("debug log = %q, want the function name traced", buf.String())
	}
}
