package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the ledger database and bring its schema up to date",
	Long: `Create the ledger database file if it does not exist and apply
every pending schema migration. Running it on an up-to-date ledger is
harmless.

Example:
  ledgerctl init`,
	Run: runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	a, err := bootstrap()
	exitOnError(err, "failed to initialize ledger")
	defer a.Close()

	fmt.Println("Ledger initialized")
	if a.Config.Database.Driver == "sqlite" {
		fmt.Printf("Database file: %s\n", a.Config.Database.Path)
	}
}
