package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mehak6/accounting/internal/domain/usecase/ledger"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/database"
)

var resetYes bool

// resetCmd represents the reset command.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every transaction and zero all balances",
	Long: `Delete every transaction from the ledger and reset all company
and user balances to zero. Parties themselves are kept. This cannot be
undone; take a backup first.

Example:
  ledgerctl reset --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	if !resetYes && !confirm("This deletes all transactions and zeroes every balance. Continue? [y/N] ") {
		fmt.Println("Aborted")
		return
	}

	a, err := bootstrap()
	exitOnError(err, "failed to open ledger")
	defer a.Close()

	uow := database.NewUnitOfWork(a.Connection.DB, a.Logger, a.TimeProvider)
	store := ledger.NewService(uow, a.TimeProvider, a.Logger)

	err = store.ResetAll(context.Background())
	exitOnError(err, "reset failed")

	fmt.Println("Ledger reset: all transactions removed, balances zeroed")
}

// confirm reads a yes/no answer from stdin
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
