// Package oracle wraps the generative assistant. It can mutate app
// state only through the Actions callbacks, which map one-to-one onto
// the store's named operations.
package oracle

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Actions is the closed set of mutations the advisor may trigger.
type Actions interface {
	AddGoal(title string, targetAmount decimal.Decimal, deadlineYear int)
	UpdateGoal(id string, monthlyContribution decimal.Decimal)
	DisburseLoan(loanType string, amount decimal.Decimal)
	SaveLoanOffer(loanType string, amount decimal.Decimal, rateAPR float64, tenureMonths int)
}

// Advisor is one chat session with the in-app assistant. With a nil
// client it answers offline from the persona's canned briefs, so the
// demo never requires network access.
//
// Start and Ask run on bubbletea command goroutines and can overlap
// (a persona switch while a reply is in flight), so a mutex guards the
// session state.
type Advisor struct {
	ModelName string

	mu      sync.Mutex
	client  *genai.Client
	chat    *genai.Chat
	actions Actions

	briefs   []persona.OracleBrief
	briefIdx int
}

func NewAdvisor(client *genai.Client, actions Actions) *Advisor {
	return &Advisor{
		ModelName: defaultModel,
		client:    client,
		actions:   actions,
	}
}

// Online reports whether a real model backs this advisor.
func (a *Advisor) Online() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.client != nil
}

// Start opens a fresh chat seeded with the profile's context. Called
// again on every persona switch so briefs and system context follow
// the selected profile. The previous chat is dropped up front: if
// creating the new one fails, Ask falls back to the new profile's
// briefs instead of the stale session.
func (a *Advisor) Start(ctx context.Context, p persona.Profile) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.briefs = p.OracleBriefs
	a.briefIdx = 0
	a.chat = nil

	if a.client == nil {
		return nil
	}

	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: declarations()},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction(p)}}},
	}
	chat, err := a.client.Chats.Create(ctx, a.ModelName, cfg, nil)
	if err != nil {
		return fmt.Errorf("create oracle chat: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one user prompt and resolves any function calls before
// returning the final text.
func (a *Advisor) Ask(ctx context.Context, prompt string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.client == nil || a.chat == nil {
		return a.offlineAnswer(prompt), nil
	}
	return a.send(ctx, &genai.Part{Text: prompt})
}

func (a *Advisor) send(ctx context.Context, part *genai.Part) (string, error) {
	resp, err := a.chat.Send(ctx, part)
	if err != nil {
		return "", fmt.Errorf("oracle send: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from oracle")
	}

	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := a.dispatch(part0.FunctionCall)
		// Feed the result back until the model produces text.
		return a.send(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return part0.Text, nil
}

// offlineAnswer serves canned briefs: a keyword match on brief titles
// first, otherwise the next brief in rotation.
func (a *Advisor) offlineAnswer(prompt string) string {
	if len(a.briefs) == 0 {
		return "I don't have insights for this profile yet."
	}

	lower := strings.ToLower(prompt)
	for _, b := range a.briefs {
		for _, word := range strings.Fields(strings.ToLower(b.Title)) {
			if len(word) >= 4 && strings.Contains(lower, word) {
				return b.Title + ": " + b.Body
			}
		}
	}

	b := a.briefs[a.briefIdx%len(a.briefs)]
	a.briefIdx++
	return b.Title + ": " + b.Body
}

func systemInstruction(p persona.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are Oracle, the in-app financial assistant of a demo banking app.\n")
	fmt.Fprintf(&sb, "The user is %s, %d, %s.\n", p.Name, p.Age, p.Role)
	fmt.Fprintf(&sb, "Liquid balance: %s INR. Monthly income: %s INR. Monthly spend: %s INR.\n",
		p.Financials.Liquid, p.Financials.MonthlyIncome, p.Financials.MonthlySpend)
	sb.WriteString("Their goals: ")
	for i, g := range p.Goals {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%s (%s of %s by %d, %s)", g.Title, g.CurrentAmount, g.TargetAmount, g.DeadlineYear, g.Status)
	}
	sb.WriteString(".\nUse the provided tools to create or adjust goals, disburse pre-approved loans ")
	sb.WriteString("or park loan offers when the user agrees. Amounts are rupees. Keep answers under 80 words.")
	return sb.String()
}
