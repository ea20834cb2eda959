package migrations

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"

	"srs-scheduler/internal/pkg/errs"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Up applies all pending migrations. It is safe to call on every startup.
func Up(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.Wrap(err, "failed to set goose dialect")
	}
	if err := goose.Up(db, "sql"); err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}
	return nil
}
