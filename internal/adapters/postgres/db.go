package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/freshpantry/stockroom/internal/domain"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Connect opens the stockroom database and verifies it is reachable before
// any ledger traffic is served. Failures here and on later queries that
// cannot reach the database are wrapped with domain.ErrStorageUnavailable,
// which the http layer maps to 503.
func Connect(ctx context.Context, databaseURL string, maxConns int32) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w: %w", domain.ErrStorageUnavailable, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql db: %w", err)
	}
	if maxConns > 0 {
		sqlDB.SetMaxOpenConns(int(maxConns))
		sqlDB.SetMaxIdleConns(int(maxConns) / 2)
	}
	// The ledgers see short bursts of small statements, so recycle
	// connections rather than holding them for hours.
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return db, nil
}

// RunMigrations executes the embedded schema files in lexical order. The
// statements are idempotent (CREATE IF NOT EXISTS), so rerunning at every
// startup is safe and there is no version table.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)
	for _, file := range files {
		raw, readErr := migrationFS.ReadFile(file)
		if readErr != nil {
			return fmt.Errorf("read %s: %w", file, readErr)
		}
		if execErr := db.WithContext(ctx).Exec(string(raw)).Error; execErr != nil {
			return fmt.Errorf("apply %s: %w", file, execErr)
		}
	}
	return nil
}
