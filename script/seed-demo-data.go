package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehak6/accounting/internal/domain/entity"
	"github.com/mehak6/accounting/internal/domain/port/usecase"
	"github.com/mehak6/accounting/internal/domain/usecase/ledger"
	"github.com/mehak6/accounting/internal/domain/usecase/report"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/database"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/database/migration"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/logger"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/repository"
	timeprovider "github.com/mehak6/accounting/internal/infrastructure/adapter/time"
)

// MovementScenario defines a recurring money movement used for seeding
type MovementScenario struct {
	Name        string
	Amount      string
	Description string
}

func main() {
	dbPath := flag.String("db", "data/ledger-demo.db", "Path to the sqlite ledger file to seed")
	companies := flag.Int("companies", 3, "Number of demo companies to create")
	users := flag.Int("users", 6, "Number of demo users to create")
	months := flag.Int("months", 6, "Months of history to generate, ending today")
	seed := flag.Int64("seed", 0, "Random seed (0 means time-based)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	log := logger.NewNoopLogger()
	timeProvider := timeprovider.NewRealTimeProvider()

	cfg := database.DefaultConfig()
	cfg.Path = *dbPath

	conn, err := database.NewConnection(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	if err := migration.NewMigrationManager(conn.DB, log).MigrateAll(); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uow := database.NewUnitOfWork(conn.DB, log, timeProvider)
	store := ledger.NewService(uow, timeProvider, log)

	fmt.Printf("Seeding %s (seed %d)\n", *dbPath, *seed)

	companyIDs := make([]uint64, 0, *companies)
	for i := 0; i < *companies; i++ {
		id, err := store.CreateCompany(ctx, usecase.CreateCompanyInput{
			Name:    fmt.Sprintf("Demo Company %d", i+1),
			Address: fmt.Sprintf("%d Demo Street", (i+1)*10),
			Email:   fmt.Sprintf("billing%d@demo.test", i+1),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create company: %v\n", err)
			os.Exit(1)
		}
		companyIDs = append(companyIDs, id)
	}

	userIDs := make([]uint64, 0, *users)
	for i := 0; i < *users; i++ {
		employer := companyIDs[rng.Intn(len(companyIDs))]
		id, err := store.CreateUser(ctx, usecase.CreateUserInput{
			Name:      fmt.Sprintf("Demo User %d", i+1),
			Email:     fmt.Sprintf("user%d@demo.test", i+1),
			Role:      "Staff",
			CompanyID: &employer,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create user: %v\n", err)
			os.Exit(1)
		}
		userIDs = append(userIDs, id)
	}

	// Fund each company with an opening deposit so the salary runs below
	// never drive balances absurdly negative
	for _, companyID := range companyIDs {
		ref := entity.PartyRef{Kind: entity.KindCompany, ID: companyID}
		if _, err := store.Deposit(ctx, ref, decimal.RequireFromString("50000.00"), "Opening capital"); err != nil {
			fmt.Fprintf(os.Stderr, "failed to fund company %d: %v\n", companyID, err)
			os.Exit(1)
		}
	}

	scenarios := []MovementScenario{
		{"SAL", "2500.00", "Monthly salary"},
		{"BON", "400.00", "Performance bonus"},
		{"EXP", "85.50", "Expense reimbursement"},
		{"ADV", "1000.00", "Salary advance"},
	}

	recorded := 0
	scenarioCounts := make(map[string]int)
	now := time.Now()
	for m := *months - 1; m >= 0; m-- {
		payday := now.AddDate(0, -m, 0)
		for _, userID := range userIDs {
			scenario := scenarios[rng.Intn(len(scenarios))]
			from := companyIDs[rng.Intn(len(companyIDs))]

			_, err := store.RecordTransaction(ctx, usecase.RecordTransactionInput{
				Date:        payday,
				Amount:      decimal.RequireFromString(scenario.Amount),
				From:        entity.PartyRef{Kind: entity.KindCompany, ID: from},
				To:          entity.PartyRef{Kind: entity.KindUser, ID: userID},
				Description: scenario.Description,
				Reference:   fmt.Sprintf("%s-%s", scenario.Name, payday.Format("200601")),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to record transaction: %v\n", err)
				os.Exit(1)
			}
			recorded++
			scenarioCounts[scenario.Name]++
		}
	}

	reporter := report.NewService(
		repository.NewCompanyRepository(conn.DB, timeProvider, log),
		repository.NewUserRepository(conn.DB, timeProvider, log),
		repository.NewTransactionRepository(conn.DB, log),
		log,
	)
	summary, err := reporter.Summary(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to summarize: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n================= SEED RESULTS =================")
	fmt.Printf("Companies created:   %d\n", len(companyIDs))
	fmt.Printf("Users created:       %d\n", len(userIDs))
	fmt.Printf("Transactions:        %d\n", recorded)
	for name, count := range scenarioCounts {
		fmt.Printf("  %-14s: %d\n", name, count)
	}
	fmt.Printf("Company balances:    %s\n", summary.CompanyBalanceTotal.StringFixed(2))
	fmt.Printf("User balances:       %s\n", summary.UserBalanceTotal.StringFixed(2))
	fmt.Printf("Grand total:         %s\n", summary.GrandTotal.StringFixed(2))
	fmt.Println("================================================")
}
