package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// migrationLockKey seeds the Postgres advisory lock so the ledger and
// the migrate command cannot apply migrations concurrently.
const migrationLockKey = "token_ledger.schema_migrations"

// Migrator applies the token_ledger and projections schema migrations
// in order. Files follow golang-migrate naming:
// {version}_{name}.up.sql / .down.sql, e.g. 000001_command_log.up.sql.
type Migrator struct {
	db  *sql.DB
	dir string
}

func NewMigrator(db *sql.DB, migrationsDir string) *Migrator {
	return &Migrator{db: db, dir: migrationsDir}
}

// Up applies every pending up-migration. Safe to run on each ledger
// start: the advisory lock serializes concurrent runners, and already
// applied versions are skipped.
func (m *Migrator) Up(ctx context.Context) error {
	unlock, err := m.acquireLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if err := m.ensureVersionTable(ctx); err != nil {
		return fmt.Errorf("ensure version table: %w", err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return fmt.Errorf("read applied versions: %w", err)
	}

	files, err := m.migrationFiles(".up.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	pending := 0
	for _, f := range files {
		version := migrationVersion(f)
		if applied[version] {
			continue
		}
		if err := m.applyFile(ctx, version, f); err != nil {
			return err
		}
		pending++
	}

	if pending == 0 {
		log.Println("INFO: token ledger schema is up to date")
	} else {
		log.Printf("INFO: applied %d schema migration(s)", pending)
	}
	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	unlock, err := m.acquireLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if err := m.ensureVersionTable(ctx); err != nil {
		return err
	}

	var version, filename string
	err = m.db.QueryRowContext(ctx,
		`SELECT version, filename FROM public.schema_migrations ORDER BY version DESC LIMIT 1`,
	).Scan(&version, &filename)
	if err == sql.ErrNoRows {
		log.Println("INFO: no schema migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read latest version: %w", err)
	}

	downFile := strings.Replace(filename, ".up.sql", ".down.sql", 1)
	content, err := os.ReadFile(filepath.Join(m.dir, downFile))
	if err != nil {
		return fmt.Errorf("read down migration %s: %w", downFile, err)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		tx.Rollback()
		return fmt.Errorf("exec down migration %s: %w", downFile, err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM public.schema_migrations WHERE version = $1`, version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("remove version %s: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("INFO: rolled back schema migration %s", downFile)
	return nil
}

// applyFile runs one up-migration and records its version, atomically.
// The ledger schemas are plain DDL, so everything rides in one tx.
func (m *Migrator) applyFile(ctx context.Context, version, filename string) error {
	content, err := os.ReadFile(filepath.Join(m.dir, filename))
	if err != nil {
		return fmt.Errorf("read migration %s: %w", filename, err)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for %s: %w", filename, err)
	}
	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		tx.Rollback()
		return fmt.Errorf("exec migration %s: %w", filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO public.schema_migrations (version, filename) VALUES ($1, $2)`,
		version, filename,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("record version %s: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", filename, err)
	}

	log.Printf("INFO: applied schema migration %s", filename)
	return nil
}

// acquireLock takes a session-level advisory lock keyed on the ledger's
// migration namespace and returns its release func.
func (m *Migrator) acquireLock(ctx context.Context) (func(), error) {
	h := fnv.New64a()
	h.Write([]byte(migrationLockKey))
	key := int64(h.Sum64())

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire migration lock: %w", err)
	}
	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, key); err != nil {
		conn.Close()
		return nil, fmt.Errorf("acquire migration lock: %w", err)
	}

	return func() {
		if _, err := conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, key); err != nil {
			log.Printf("WARN: release migration lock: %v", err)
		}
		conn.Close()
	}, nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS public.schema_migrations (
			version    TEXT PRIMARY KEY,
			filename   TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM public.schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func (m *Migrator) migrationFiles(suffix string) ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// migrationVersion returns the numeric prefix of a migration filename,
// "000001" for "000001_command_log.up.sql".
func migrationVersion(filename string) string {
	version, _, found := strings.Cut(filename, "_")
	if !found {
		return filename
	}
	return version
}
