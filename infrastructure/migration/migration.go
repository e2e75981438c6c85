package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/database/postgres"
)

//go:embed sql/*.sql
var files embed.FS

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(128) PRIMARY KEY,
    applied_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
)`

// Apply executa, em ordem, os scripts ainda não aplicados. Cada script roda na
// própria transação junto com o registro da versão.
func Apply(ctx context.Context, conn postgres.Conn) ([]string, error) {
	if _, err := conn.ExecContext(ctx, createVersionsTable); err != nil {
		return nil, fmt.Errorf("erro ao criar tabela de versões: %w", err)
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return nil, err
	}

	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	executed := make([]string, 0)
	for _, name := range names {
		version := strings.TrimSuffix(strings.TrimPrefix(name, "sql/"), ".sql")
		if applied[version] {
			continue
		}

		script, err := files.ReadFile(name)
		if err != nil {
			return executed, err
		}

		err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(script)); err != nil {
				return err
			}

			query, args, err := squirrel.
				Insert("schema_migrations").
				Columns("version").
				Values(version).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return executed, fmt.Errorf("erro ao aplicar migração %s: %w", version, err)
		}

		logrus.WithField("version", version).Info("migration: applied")
		executed = append(executed, version)
	}

	return executed, nil
}

func appliedVersions(ctx context.Context, conn postgres.Conn) (map[string]bool, error) {
	rows, err := conn.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao ler versões aplicadas: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
