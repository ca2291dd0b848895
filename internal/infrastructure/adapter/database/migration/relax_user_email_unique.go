package migration

import (
	"context"
	"strings"

	coreport "github.com/mehak6/accounting/internal/domain/port/core"
	"gorm.io/gorm"
)

// RelaxUserEmailUnique is a migration that drops the unique constraint on
// users.email. Sqlite cannot alter a constraint in place, so the table is
// rebuilt and the rows copied over.
type RelaxUserEmailUnique struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewRelaxUserEmailUnique creates a new migration instance
func NewRelaxUserEmailUnique(db *gorm.DB, logger coreport.Logger) *RelaxUserEmailUnique {
	return &RelaxUserEmailUnique{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *RelaxUserEmailUnique) Run(ctx context.Context) error {
	m.logger.Info("Relaxing unique constraint on users.email", nil)

	if m.db.Dialector.Name() != "sqlite" {
		// Postgres schemas never carried the constraint
		return nil
	}

	unique, err := m.hasUniqueEmail()
	if err != nil {
		return err
	}
	if !unique {
		m.logger.Info("users.email already non-unique, nothing to do", nil)
		return nil
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		statements := []string{
			`CREATE TABLE users_new (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				company_id INTEGER,
				name TEXT NOT NULL,
				email TEXT,
				role TEXT,
				department TEXT,
				balance NUMERIC NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL,
				updated_at DATETIME NOT NULL
			)`,
			`INSERT INTO users_new (id, company_id, name, email, role, department, balance, created_at, updated_at)
				SELECT id, company_id, name, email, role, department, balance, created_at, updated_at FROM users`,
			`DROP TABLE users`,
			`ALTER TABLE users_new RENAME TO users`,
			`CREATE INDEX IF NOT EXISTS idx_users_company_id ON users (company_id)`,
		}
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				m.logger.Error("Failed to rebuild users table", map[string]any{"error": err.Error()})
				return err
			}
		}
		return nil
	})
}

// hasUniqueEmail inspects the sqlite schema for a unique email index
func (m *RelaxUserEmailUnique) hasUniqueEmail() (bool, error) {
	var ddl []string
	err := m.db.Raw(
		`SELECT sql FROM sqlite_master WHERE tbl_name = 'users' AND sql IS NOT NULL`,
	).Scan(&ddl).Error
	if err != nil {
		m.logger.Error("Failed to inspect users schema", map[string]any{"error": err.Error()})
		return false, err
	}

	for _, stmt := range ddl {
		lower := strings.ToLower(stmt)
		if strings.Contains(lower, "unique") && strings.Contains(lower, "email") {
			return true, nil
		}
	}
	return false, nil
}
