package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed schema/*.sql
var schemaFiles embed.FS

// ApplySchema creates the tables when they do not exist yet. Every statement
// is idempotent, so it is safe to run on each start.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	file := "schema/mysql.sql"
	if isSQLite(db) {
		file = "schema/sqlite.sql"
	}

	content, err := schemaFiles.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read schema %s: %w", file, err)
	}

	for _, statement := range strings.Split(string(content), ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("apply schema %s: %w", file, err)
		}
	}

	zap.L().Debug("database schema applied", zap.String("driver", db.DriverName()))
	return nil
}
