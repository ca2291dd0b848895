package database

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	coreport "github.com/mehak6/accounting/internal/domain/port/core"
)

// BackupManager copies the sqlite ledger file to and from a backup
// directory. It works on the closed database file, so callers must not
// hold an open connection while restoring.
type BackupManager struct {
	databasePath string
	backupDir    string
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewBackupManager creates a new backup manager for the given database file
func NewBackupManager(databasePath, backupDir string, logger coreport.Logger, timeProvider coreport.TimeProvider) *BackupManager {
	return &BackupManager{
		databasePath: databasePath,
		backupDir:    backupDir,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Backup copies the ledger file into the backup directory under a
// timestamped name and returns the created path.
func (b *BackupManager) Backup() (string, error) {
	if _, err := os.Stat(b.databasePath); err != nil {
		return "", fmt.Errorf("ledger file not found: %w", err)
	}

	if err := os.MkdirAll(b.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	stamp := b.timeProvider.Now().Format("20060102-150405")
	base := filepath.Base(b.databasePath)
	target := filepath.Join(b.backupDir, fmt.Sprintf("%s.%s.bak", base, stamp))

	if err := copyFile(b.databasePath, target); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	b.logger.Info("Ledger backup created", map[string]any{
		"source": b.databasePath,
		"backup": target,
	})
	return target, nil
}

// Restore replaces the ledger file with the given backup. The current file
// is first copied aside so a bad restore can be undone by hand.
func (b *BackupManager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}

	if _, err := os.Stat(b.databasePath); err == nil {
		stamp := b.timeProvider.Now().Format("20060102-150405")
		safety := b.databasePath + ".pre-restore." + stamp
		if err := copyFile(b.databasePath, safety); err != nil {
			return fmt.Errorf("failed to preserve current ledger: %w", err)
		}
		b.logger.Info("Current ledger preserved before restore", map[string]any{
			"safety_copy": safety,
		})
	}

	if dir := filepath.Dir(b.databasePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	if err := copyFile(backupPath, b.databasePath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	b.logger.Info("Ledger restored from backup", map[string]any{
		"backup": backupPath,
		"target": b.databasePath,
	})
	return nil
}

// ListBackups returns the backup files present in the backup directory,
// newest first by modification time.
func (b *BackupManager) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(b.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	type stamped struct {
		path    string
		modTime time.Time
	}
	var found []stamped
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		found = append(found, stamped{
			path:    filepath.Join(b.backupDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	paths := make([]string, 0, len(found))
	for i := range found {
		best := i
		for j := i + 1; j < len(found); j++ {
			if found[j].modTime.After(found[best].modTime) {
				best = j
			}
		}
		found[i], found[best] = found[best], found[i]
		paths = append(paths, found[i].path)
	}
	return paths, nil
}

// copyFile copies src to dst, truncating dst if it exists
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
