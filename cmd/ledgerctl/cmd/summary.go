package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mehak6/accounting/internal/domain/entity"
	"github.com/mehak6/accounting/internal/domain/usecase/report"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/repository"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Display ledger-wide balance and transaction totals",
	Long: `Display the aggregate state of the ledger: balance totals per
party kind, the grand total, and transaction statistics.

Example:
  ledgerctl summary`,
	Run: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) {
	a, err := bootstrap()
	exitOnError(err, "failed to open ledger")
	defer a.Close()

	companies := repository.NewCompanyRepository(a.Connection.DB, a.TimeProvider, a.Logger)
	users := repository.NewUserRepository(a.Connection.DB, a.TimeProvider, a.Logger)
	transactions := repository.NewTransactionRepository(a.Connection.DB, a.Logger)
	reporter := report.NewService(companies, users, transactions, a.Logger)

	summary, err := reporter.Summary(context.Background())
	exitOnError(err, "failed to compute summary")

	fmt.Println("\n=== Ledger Summary ===")
	fmt.Printf("Company balances:  %s\n", entity.FormatAmount(summary.CompanyBalanceTotal))
	fmt.Printf("User balances:     %s\n", entity.FormatAmount(summary.UserBalanceTotal))
	fmt.Printf("Grand total:       %s\n", entity.FormatAmount(summary.GrandTotal))
	fmt.Printf("Transactions:      %d\n", summary.TransactionCount)
	fmt.Printf("Total amount:      %s\n", entity.FormatAmount(summary.TotalAmount))
	fmt.Printf("Average amount:    %s\n", entity.FormatAmount(summary.AverageAmount))
	fmt.Println()
}
