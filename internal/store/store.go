// Package store provides SQLite-based persistence of empire snapshots and the raid log
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/napolitain/idle-empire/internal/models"
)

var (
	// ErrEmpireNotFound is returned by LoadEmpire for an unknown id
	ErrEmpireNotFound = errors.New("empire not found")
	// ErrRaidNotFound is returned when resolving an unknown raid
	ErrRaidNotFound = errors.New("raid not found")
	// ErrRaidAlreadyResolved is returned when a raid outcome is recorded twice
	ErrRaidAlreadyResolved = errors.New("raid already resolved")
)

// DB wraps a SQLite connection
type DB struct {
	conn   *sqlx.DB
	logger *slog.Logger
}

// Open opens or creates a SQLite database at the given path; a nil logger uses slog.Default()
func Open(path string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn, logger: logger}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS empires (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		snapshot_json TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS raids (
		id TEXT PRIMARY KEY,
		empire_id TEXT NOT NULL,
		province_id TEXT NOT NULL,
		enemy TEXT NOT NULL,
		enemy_json TEXT NOT NULL,
		spawned_at INTEGER NOT NULL,
		arrives_at INTEGER NOT NULL,
		resolved INTEGER NOT NULL DEFAULT 0,
		result TEXT NOT NULL DEFAULT '',
		certainty REAL NOT NULL DEFAULT 0,
		narrative TEXT NOT NULL DEFAULT '',
		outcome_json TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_raids_empire ON raids(empire_id, arrives_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveEmpire stores a full snapshot of the empire, replacing any earlier one
func (db *DB) SaveEmpire(emp *models.Empire) error {
	if err := saveSnapshot(db.conn, emp); err != nil {
		return err
	}
	db.logger.Debug("empire saved", "id", emp.ID, "provinces", len(emp.Provinces))
	return nil
}

func saveSnapshot(exec sqlx.Execer, emp *models.Empire) error {
	data, err := json.Marshal(emp)
	if err != nil {
		return fmt.Errorf("marshal empire: %w", err)
	}

	_, err = exec.Exec(
		"INSERT OR REPLACE INTO empires (id, name, snapshot_json, saved_at) VALUES (?, ?, ?, ?)",
		emp.ID, emp.Name, string(data), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save empire %s: %w", emp.ID, err)
	}
	return nil
}

// LoadEmpire restores the latest snapshot of an empire
func (db *DB) LoadEmpire(id string) (*models.Empire, error) {
	var data string
	err := db.conn.Get(&data, "SELECT snapshot_json FROM empires WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load empire %s: %w", id, ErrEmpireNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load empire %s: %w", id, err)
	}

	var emp models.Empire
	if err := json.Unmarshal([]byte(data), &emp); err != nil {
		return nil, fmt.Errorf("unmarshal empire %s: %w", id, err)
	}
	return &emp, nil
}

// RaidRecord is one row of the raid log
type RaidRecord struct {
	ID         string  `db:"id"`
	EmpireID   string  `db:"empire_id"`
	ProvinceID string  `db:"province_id"`
	Enemy      string  `db:"enemy"`
	SpawnedAt  int64   `db:"spawned_at"`
	ArrivesAt  int64   `db:"arrives_at"`
	Resolved   bool    `db:"resolved"`
	Result     string  `db:"result"`
	Certainty  float64 `db:"certainty"`
	Narrative  string  `db:"narrative"`
}

// RecordRaid logs a newly spawned raid; recording the same id twice is a no-op
func (db *DB) RecordRaid(empireID string, r *models.Raid) error {
	enemy, err := json.Marshal(r.Enemy)
	if err != nil {
		return fmt.Errorf("marshal enemy: %w", err)
	}

	_, err = db.conn.Exec(
		`INSERT OR IGNORE INTO raids (id, empire_id, province_id, enemy, enemy_json, spawned_at, arrives_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, empireID, r.ProvinceID, r.Enemy.Name, string(enemy), r.SpawnedAt, r.ArrivesAt,
	)
	if err != nil {
		return fmt.Errorf("record raid %s: %w", r.ID, err)
	}
	return nil
}

// ResolveRaid marks a raid resolved, runs apply to settle the outcome on the
// empire, then saves the empire snapshot in the same transaction. The update
// only matches an unresolved row, so apply runs at most once per raid
func (db *DB) ResolveRaid(emp *models.Empire, id string, o models.CombatOutcome, apply func()) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := markResolved(tx, id, o); err != nil {
		return err
	}
	apply()
	if err := saveSnapshot(tx, emp); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("resolve raid %s: %w", id, err)
	}
	db.logger.Debug("raid resolved", "raid", id, "empire", emp.ID, "result", o.Result)
	return nil
}

func markResolved(tx *sqlx.Tx, id string, o models.CombatOutcome) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal outcome: %w", err)
	}

	res, err := tx.Exec(
		`UPDATE raids SET resolved = 1, result = ?, certainty = ?, narrative = ?, outcome_json = ?
		WHERE id = ? AND resolved = 0`,
		o.Result.String(), o.VictoryCertainty, o.Narrative, string(data), id,
	)
	if err != nil {
		return fmt.Errorf("resolve raid %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve raid %s: %w", id, err)
	}
	if n > 0 {
		return nil
	}

	var exists int
	if err := tx.Get(&exists, "SELECT COUNT(*) FROM raids WHERE id = ?", id); err != nil {
		return fmt.Errorf("resolve raid %s: %w", id, err)
	}
	if exists == 0 {
		return fmt.Errorf("resolve raid %s: %w", id, ErrRaidNotFound)
	}
	return fmt.Errorf("resolve raid %s: %w", id, ErrRaidAlreadyResolved)
}

// PendingRaids returns the unresolved raids of an empire in arrival order
func (db *DB) PendingRaids(empireID string) ([]*models.Raid, error) {
	var rows []struct {
		ID         string `db:"id"`
		ProvinceID string `db:"province_id"`
		EnemyJSON  string `db:"enemy_json"`
		SpawnedAt  int64  `db:"spawned_at"`
		ArrivesAt  int64  `db:"arrives_at"`
	}
	err := db.conn.Select(&rows,
		`SELECT id, province_id, enemy_json, spawned_at, arrives_at FROM raids
		WHERE empire_id = ? AND resolved = 0 ORDER BY arrives_at, id`,
		empireID,
	)
	if err != nil {
		return nil, fmt.Errorf("pending raids: %w", err)
	}

	raids := make([]*models.Raid, 0, len(rows))
	for _, row := range rows {
		r := &models.Raid{
			ID:         row.ID,
			ProvinceID: row.ProvinceID,
			SpawnedAt:  row.SpawnedAt,
			ArrivesAt:  row.ArrivesAt,
		}
		if err := json.Unmarshal([]byte(row.EnemyJSON), &r.Enemy); err != nil {
			return nil, fmt.Errorf("unmarshal raid %s: %w", row.ID, err)
		}
		raids = append(raids, r)
	}
	return raids, nil
}

// RecentRaids returns the most recent N raids of an empire, newest first
func (db *DB) RecentRaids(empireID string, limit int) ([]RaidRecord, error) {
	var raids []RaidRecord
	err := db.conn.Select(&raids,
		`SELECT id, empire_id, province_id, enemy, spawned_at, arrives_at, resolved, result, certainty, narrative
		FROM raids WHERE empire_id = ? ORDER BY arrives_at DESC, id DESC LIMIT ?`,
		empireID, limit,
	)
	return raids, err
}
