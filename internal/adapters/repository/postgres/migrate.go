package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// ApplyMigrations executes every up migration in file name order.
func ApplyMigrations(ctx context.Context, db *sql.DB) error {
	names, err := migrationNames(".up.sql")
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := execMigration(ctx, db, name); err != nil {
			return err
		}
	}
	return nil
}

// RevertMigrations executes every down migration in reverse file name order.
func RevertMigrations(ctx context.Context, db *sql.DB) error {
	names, err := migrationNames(".down.sql")
	if err != nil {
		return err
	}

	for i := len(names) - 1; i >= 0; i-- {
		if err := execMigration(ctx, db, names[i]); err != nil {
			return err
		}
	}
	return nil
}

// ApplyMigration executes the single migration whose file name ends with
// "<name>.sql", e.g. "create_rooms.up".
func ApplyMigration(ctx context.Context, db *sql.DB, name string) error {
	pattern, err := regexp.Compile(fmt.Sprintf(`^.*%s\.sql$`, regexp.QuoteMeta(name)))
	if err != nil {
		return fmt.Errorf("invalid migration name: %w", err)
	}

	names, err := migrationNames(".sql")
	if err != nil {
		return err
	}
	for _, n := range names {
		if pattern.MatchString(n) {
			return execMigration(ctx, db, n)
		}
	}
	return fmt.Errorf("migration file not found: %s", name)
}

func migrationNames(suffix string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func execMigration(ctx context.Context, db *sql.DB, name string) error {
	content, err := migrationFiles.ReadFile("migrations/" + name)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", name, err)
	}

	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", name, err)
	}
	return nil
}
