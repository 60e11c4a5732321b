// Package storage runs the embedded goose migrations and answers the
// readiness question: can we reach the database, and does its migration head
// match the one compiled into the binary.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/migrations"
)

// Migrate applies all embedded migrations. Both binaries call it on start;
// goose serializes concurrent runners on its version table.
func Migrate(ctx context.Context, sqlDB *sql.DB, logger *zap.Logger) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	head, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("read migration head: %w", err)
	}
	logger.Info("database migrated", zap.Int64("head", head))
	return nil
}

// DeclaredHead returns the highest migration version embedded in the binary,
// parsed from the numeric filename prefixes.
func DeclaredHead() (int64, error) {
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("read embedded migrations: %w", err)
	}
	var head int64
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(prefix, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed migration name %q: %w", name, err)
		}
		if v > head {
			head = v
		}
	}
	if head == 0 {
		return 0, fmt.Errorf("no embedded migrations found")
	}
	return head, nil
}
