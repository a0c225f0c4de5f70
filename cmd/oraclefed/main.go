package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/kittuduck/oraclefed/internal/appstate"
	"github.com/kittuduck/oraclefed/internal/auth"
	"github.com/kittuduck/oraclefed/internal/oracle"
	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/kittuduck/oraclefed/internal/profile"
	"github.com/kittuduck/oraclefed/internal/tui"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
	"google.golang.org/genai"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "auth":
			if err := runAuth(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "auth error: %v\n", err)
				os.Exit(1)
			}
			return
		case "account":
			if err := runAccount(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "account error: %v\n", err)
				os.Exit(1)
			}
			return
		case "wipe":
			if _, err := profile.Wipe(); err != nil {
				fmt.Fprintf(os.Stderr, "wipe error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Local profile store removed.")
			return
		}
	}

	if err := runTUI(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI() error {
	ctx := context.Background()

	store := appstate.NewStore()

	var client *genai.Client
	apiKey, err := auth.LoadAPIKey()
	switch {
	case errors.Is(err, auth.ErrNoAPIKey):
		fmt.Fprintln(os.Stderr, "no Gemini key set; the oracle runs offline (oraclefed auth set)")
	case err != nil:
		fmt.Fprintf(os.Stderr, "credential store unavailable: %v; the oracle runs offline\n", err)
	default:
		client, err = genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
		if err != nil {
			return fmt.Errorf("init gemini client: %w", err)
		}
	}

	if path := os.Getenv("ORACLEFED_DEBUG_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		oracle.EnableDebugLog(f)
	}

	advisor := oracle.NewAdvisor(client, storeActions{store: store})

	db, _, err := profile.Open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "profile store unavailable: %v\n", err)
		db = nil
	}
	if db != nil {
		defer db.Close()
	}

	_, err = tea.NewProgram(tui.New(store, advisor, db), tea.WithAltScreen()).Run()
	return err
}

// storeActions lets the advisor's tool calls mutate application state.
type storeActions struct {
	store *appstate.Store
}

func (a storeActions) AddGoal(title string, targetAmount decimal.Decimal, deadlineYear int) {
	a.store.AddGoal(persona.Goal{
		ID:           "g-" + uuid.NewString(),
		Title:        title,
		TargetAmount: targetAmount,
		DeadlineYear: deadlineYear,
	})
}

func (a storeActions) UpdateGoal(id string, monthlyContribution decimal.Decimal) {
	for _, g := range a.store.Goals() {
		if g.ID == id {
			g.MonthlyContribution = monthlyContribution
			a.store.UpdateGoal(g)
			return
		}
	}
}

func (a storeActions) DisburseLoan(loanType string, amount decimal.Decimal) {
	a.store.DisburseLoan(loanType, amount)
}

func (a storeActions) SaveLoanOffer(loanType string, amount decimal.Decimal, rateAPR float64, tenureMonths int) {
	a.store.SaveLoanOffer(appstate.LoanOffer{
		Type:         loanType,
		Amount:       amount,
		RateAPR:      rateAPR,
		TenureMonths: tenureMonths,
	})
}

func runAuth(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: oraclefed auth set|clear")
	}
	switch args[0] {
	case "set":
		fmt.Print("Enter Gemini API key: ")
		key, err := readSecret()
		if err != nil {
			return err
		}
		fmt.Println()
		if err := auth.SaveAPIKey(key); err != nil {
			return err
		}
		fmt.Println("API key saved to your system credential store.")
		return nil
	case "clear":
		if err := auth.DeleteAPIKey(); err != nil {
			return err
		}
		fmt.Println("API key removed.")
		return nil
	default:
		return fmt.Errorf("unknown auth command %q", args[0])
	}
}

func runAccount(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: oraclefed account create|login <email>")
	}
	cmd, email := args[0], args[1]

	ctx := context.Background()
	db, _, err := profile.Open(ctx)
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}
	defer db.Close()
	repo := profile.NewRepo(db)

	fmt.Print("Password: ")
	password, err := readSecret()
	if err != nil {
		return err
	}
	fmt.Println()

	switch cmd {
	case "create":
		name := strings.SplitN(email, "@", 2)[0]
		if _, err := repo.SignUp(ctx, email, password, name); err != nil {
			return err
		}
		fmt.Printf("Account created for %s.\n", email)
		return nil
	case "login":
		sess, err := repo.SignIn(ctx, email, password)
		if err != nil {
			return err
		}
		fmt.Printf("Signed in; session %s…\n", sess.Token[:8])
		return nil
	default:
		return fmt.Errorf("unknown account command %q", cmd)
	}
}

func readSecret() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		value, err := term.ReadPassword(fd)
		if err != nil {
			return "", err
		}
		return string(value), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		if len(line) == 0 {
			return "", err
		}
	}
	return strings.TrimSpace(line), nil
}
