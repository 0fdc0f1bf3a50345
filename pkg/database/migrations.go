package database

import (
	"database/sql"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered schema history. Append only; never edit an
// applied entry.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "contract_snapshots",
		SQL: `
			CREATE TABLE IF NOT EXISTS contract_snapshots (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				client_name TEXT NOT NULL,
				buckets TEXT NOT NULL,
				category_fees TEXT NOT NULL,
				total_cost TEXT NOT NULL,
				total_cost_words TEXT NOT NULL,
				created_at DATETIME NOT NULL
			);
		`,
	},
	{
		Version: 2,
		Name:    "expense_snapshots",
		SQL: `
			CREATE TABLE IF NOT EXISTS expense_snapshots (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				applicant_name TEXT NOT NULL,
				fields TEXT NOT NULL,
				group_sums TEXT NOT NULL,
				grand_total TEXT NOT NULL,
				grand_total_words TEXT NOT NULL,
				created_at DATETIME NOT NULL
			);
		`,
	},
}

// Migrator handles database migrations
type Migrator struct {
	db     *DB
	logger *zap.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *DB, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// createMigrationsTable creates the migrations tracking table
func (m *Migrator) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := m.db.Exec(query)
	return err
}

// getAppliedMigrations returns the set of applied migration versions
func (m *Migrator) getAppliedMigrations() (map[int]bool, error) {
	rows, err := m.db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// RunMigrations applies all pending built-in migrations
func (m *Migrator) RunMigrations() error {
	m.logger.Info("Starting database migrations")

	if err := m.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := m.getAppliedMigrations()
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	pending := make([]Migration, len(migrations))
	copy(pending, migrations)
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	for _, migration := range pending {
		if applied[migration.Version] {
			m.logger.Debug("Skipping applied migration",
				zap.Int("version", migration.Version),
				zap.String("name", migration.Name))
			continue
		}

		m.logger.Info("Applying migration",
			zap.Int("version", migration.Version),
			zap.String("name", migration.Name))

		if err := m.applyMigration(migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
		}
	}

	m.logger.Info("Database migrations completed successfully")
	return nil
}

// applyMigration applies a single migration within a transaction
func (m *Migrator) applyMigration(migration Migration) error {
	return m.db.WithTransaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(migration.SQL); err != nil {
			return fmt.Errorf("failed to execute migration SQL: %w", err)
		}

		_, err := tx.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			migration.Version,
			migration.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}

		return nil
	})
}
