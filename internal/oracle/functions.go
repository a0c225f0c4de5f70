package oracle

import (
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// debugLog is silent by default; the TUI owns the terminal, so traces
// only go where the cmd layer points them.
var debugLog = log.New(io.Discard, "oracle ", log.LstdFlags)

// EnableDebugLog sends function-call traces to w.
func EnableDebugLog(w io.Writer) {
	debugLog.SetOutput(w)
}

func declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        "add_goal",
			Description: "Create a new savings goal for the user.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":         {Type: genai.TypeString, Description: "Short goal title, e.g. 'Bali Trip'."},
					"target_amount": {Type: genai.TypeNumber, Description: "Target amount in rupees."},
					"deadline_year": {Type: genai.TypeInteger, Description: "Year the goal should complete."},
				},
				Required: []string{"title", "target_amount", "deadline_year"},
			},
		},
		{
			Name:        "update_goal",
			Description: "Change the monthly contribution of an existing goal.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":                   {Type: genai.TypeString, Description: "Goal id."},
					"monthly_contribution": {Type: genai.TypeNumber, Description: "New monthly contribution in rupees."},
				},
				Required: []string{"id", "monthly_contribution"},
			},
		},
		{
			Name:        "disburse_loan",
			Description: "Disburse a pre-approved loan into the user's account after explicit consent.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"loan_type": {Type: genai.TypeString, Description: "Loan type, e.g. 'personal', 'gold'."},
					"amount":    {Type: genai.TypeNumber, Description: "Amount in rupees."},
				},
				Required: []string{"loan_type", "amount"},
			},
		},
		{
			Name:        "save_loan_offer",
			Description: "Park a loan offer so the user can resume it later from the loans screen.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"loan_type":     {Type: genai.TypeString, Description: "Loan type."},
					"amount":        {Type: genai.TypeNumber, Description: "Amount in rupees."},
					"rate_apr":      {Type: genai.TypeNumber, Description: "Annual interest rate in percent."},
					"tenure_months": {Type: genai.TypeInteger, Description: "Tenure in months."},
				},
				Required: []string{"loan_type", "amount", "rate_apr", "tenure_months"},
			},
		},
	}
}

func (a *Advisor) dispatch(call *genai.FunctionCall) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{
		ID:       call.ID,
		Name:     call.Name,
		Response: map[string]any{},
	}
	if a.actions == nil {
		fresp.Response["error"] = "assistant actions are not wired"
		return fresp
	}

	debugLog.Printf("function call %q args=%v", call.Name, call.Args)

	switch call.Name {
	case "add_goal":
		title, ok1 := stringArg(call.Args, "title")
		target, ok2 := decimalArg(call.Args, "target_amount")
		year, ok3 := intArg(call.Args, "deadline_year")
		if !ok1 || !ok2 || !ok3 {
			fresp.Response["error"] = "add_goal: missing or mistyped arguments"
			return fresp
		}
		a.actions.AddGoal(title, target, year)

	case "update_goal":
		id, ok1 := stringArg(call.Args, "id")
		contribution, ok2 := decimalArg(call.Args, "monthly_contribution")
		if !ok1 || !ok2 {
			fresp.Response["error"] = "update_goal: missing or mistyped arguments"
			return fresp
		}
		a.actions.UpdateGoal(id, contribution)

	case "disburse_loan":
		loanType, ok1 := stringArg(call.Args, "loan_type")
		amount, ok2 := decimalArg(call.Args, "amount")
		if !ok1 || !ok2 {
			fresp.Response["error"] = "disburse_loan: missing or mistyped arguments"
			return fresp
		}
		a.actions.DisburseLoan(loanType, amount)

	case "save_loan_offer":
		loanType, ok1 := stringArg(call.Args, "loan_type")
		amount, ok2 := decimalArg(call.Args, "amount")
		rate, ok3 := floatArg(call.Args, "rate_apr")
		tenure, ok4 := intArg(call.Args, "tenure_months")
		if !ok1 || !ok2 || !ok3 || !ok4 {
			fresp.Response["error"] = "save_loan_offer: missing or mistyped arguments"
			return fresp
		}
		a.actions.SaveLoanOffer(loanType, amount, rate, tenure)

	default:
		fresp.Response["error"] = fmt.Sprintf("unknown function %s", call.Name)
		return fresp
	}

	fresp.Response["ok"] = true
	return fresp
}

func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok && v != ""
}

func floatArg(args map[string]any, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func decimalArg(args map[string]any, key string) (decimal.Decimal, bool) {
	v, ok := floatArg(args, key)
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(v), true
}

func intArg(args map[string]any, key string) (int, bool) {
	v, ok := floatArg(args, key)
	if !ok {
		return 0, false
	}
	return int(v), true
}
