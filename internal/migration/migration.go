package migration

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

const (
	dialect        = "postgres"
	migrationTable = "schema_migrations"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func init() {
	migrate.SetTable(migrationTable)
}

func Source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// Up applies every pending migration.
func Up(db *sql.DB, log *zap.Logger) (int, error) {
	n, err := migrate.Exec(db, dialect, Source(), migrate.Up)
	if err != nil {
		log.Error("migration.Up error executing migrations", zap.Error(err))
		return n, err
	}
	log.Info("migration.Up succeeded", zap.Int("applied", n))
	return n, nil
}

// Down rolls back at most steps migrations; steps <= 0 rolls back all of them.
func Down(db *sql.DB, log *zap.Logger, steps int) (int, error) {
	n, err := migrate.ExecMax(db, dialect, Source(), migrate.Down, steps)
	if err != nil {
		log.Error("migration.Down error executing migrations", zap.Error(err))
		return n, err
	}
	log.Info("migration.Down succeeded", zap.Int("rolled_back", n))
	return n, nil
}
