// Package migrations embeds the schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

// Supported commands for Run.
const (
	CommandUp     = "up"
	CommandDown   = "down"
	CommandStatus = "status"
	CommandReset  = "reset"
)

func setup() error {
	goose.SetBaseFS(files)

	// StoreRadar is Postgres only
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	return nil
}

// Run executes a goose command against the embedded migrations.
func Run(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if db == nil {
		return errors.New("db is required")
	}
	switch command {
	case CommandUp, CommandDown, CommandStatus, CommandReset:
	default:
		return errors.Errorf("unsupported migration command %q", command)
	}

	if err := setup(); err != nil {
		return err
	}

	// RunContext prints status output to stdout (goose internal)
	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	return nil
}

// Versions lists the embedded migration versions in order.
func Versions() ([]int64, error) {
	if err := setup(); err != nil {
		return nil, err
	}

	migrations, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
	if err != nil {
		return nil, errors.Wrap(err, "collect migrations")
	}

	versions := make([]int64, 0, len(migrations))
	for _, m := range migrations {
		versions = append(versions, m.Version)
	}

	return versions, nil
}
