// Package cmd provides CLI commands for ledgerctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	coreport "github.com/mehak6/accounting/internal/domain/port/core"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/database"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/database/migration"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/logger"
	timeProvider "github.com/mehak6/accounting/internal/infrastructure/adapter/time"
	"github.com/mehak6/accounting/internal/infrastructure/config"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Maintain a local bookkeeping ledger",
	Long: `ledgerctl manages the ledger database that backs the bookkeeping
application: schema setup, whole-file backups and restores, the
ledger-wide summary, and the full reset.

Example:
  ledgerctl init
  ledgerctl summary
  ledgerctl backup`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(resetCmd)
}

// app bundles everything a command needs after bootstrap
type app struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	Connection   *database.Connection
}

// Close releases the database connection and flushes logs
func (a *app) Close() {
	if a.Connection != nil {
		if err := a.Connection.Close(); err != nil {
			a.Logger.Warn("Failed to close database connection", map[string]any{
				"error": err.Error(),
			})
		}
	}
	_ = a.Logger.Flush()
}

// bootstrap loads configuration, builds the logger and opens the database.
// Migrations run on every start so the schema is always current.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	if verbose {
		appLogger.SetLevel(coreport.LogLevelDebug)
	}

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	migrationMgr := migration.NewMigrationManagerWithTimeProvider(conn.DB, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &app{
		Config:       cfg,
		Logger:       appLogger,
		TimeProvider: tp,
		Connection:   conn,
	}, nil
}

// exitOnError prints the error and exits with a failure status
func exitOnError(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
