package postgres

import (
	"database/sql"
	"embed"
	"fmt"

	"podcast-service/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies all pending embedded migrations. It opens its own short
// lived database/sql connection because goose does not speak pgxpool.
func Migrate(cfg *config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf(errFailedOpenMigrationConnFmt, err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf(errFailedSetDialectFmt, err)
	}
	goose.SetBaseFS(embedMigrations)

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf(errFailedRunMigrationsFmt, err)
	}

	return nil
}
