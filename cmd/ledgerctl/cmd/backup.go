package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mehak6/accounting/internal/infrastructure/adapter/database"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/logger"
	timeProvider "github.com/mehak6/accounting/internal/infrastructure/adapter/time"
	"github.com/mehak6/accounting/internal/infrastructure/config"
)

// backupCmd represents the backup command.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the ledger file into the backup directory",
	Long: `Copy the ledger database file into the configured backup
directory under a timestamped name. Only the sqlite driver supports
file backups.

Example:
  ledgerctl backup`,
	Run: runBackup,
}

func runBackup(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig()
	exitOnError(err, "failed to load configuration")

	if cfg.Database.Driver != database.DriverSQLite {
		exitOnError(fmt.Errorf("driver %q has no file to copy", cfg.Database.Driver), "backup is sqlite-only")
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	tp := timeProvider.NewRealTimeProvider()

	mgr := database.NewBackupManager(cfg.Database.Path, cfg.Backup.Directory, appLogger, tp)
	target, err := mgr.Backup()
	exitOnError(err, "backup failed")

	fmt.Printf("Backup written to %s\n", target)
}
