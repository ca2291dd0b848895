package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mehak6/accounting/internal/infrastructure/adapter/database"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/logger"
	timeProvider "github.com/mehak6/accounting/internal/infrastructure/adapter/time"
	"github.com/mehak6/accounting/internal/infrastructure/config"
)

// restoreCmd represents the restore command.
var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Replace the ledger file with a backup",
	Long: `Replace the ledger database file with the given backup. The
current file is copied aside first so a mistaken restore can be undone
by hand. With no argument the available backups are listed.

Example:
  ledgerctl restore backups/ledger.db.20260830-120000.bak`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRestore,
}

func runRestore(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig()
	exitOnError(err, "failed to load configuration")

	if cfg.Database.Driver != database.DriverSQLite {
		exitOnError(fmt.Errorf("driver %q has no file to replace", cfg.Database.Driver), "restore is sqlite-only")
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	tp := timeProvider.NewRealTimeProvider()
	mgr := database.NewBackupManager(cfg.Database.Path, cfg.Backup.Directory, appLogger, tp)

	if len(args) == 0 {
		backups, err := mgr.ListBackups()
		exitOnError(err, "failed to list backups")
		if len(backups) == 0 {
			fmt.Println("No backups found")
			return
		}
		fmt.Println("Available backups (newest first):")
		for _, b := range backups {
			fmt.Printf("  %s\n", b)
		}
		return
	}

	err = mgr.Restore(args[0])
	exitOnError(err, "restore failed")

	fmt.Printf("Ledger restored from %s\n", args[0])
}
