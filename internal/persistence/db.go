// Package persistence provides SQLite-based storage for finished runs, so
// batches can be compared across invocations.
package persistence

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/carebot/internal/runner"
)

// DB wraps a SQLite connection for run-result storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		scenario TEXT NOT NULL,
		strategy TEXT NOT NULL,
		initial_battery INTEGER NOT NULL,
		initial_urgency INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		final_battery INTEGER NOT NULL,
		final_urgency INTEGER NOT NULL,
		user_helped INTEGER NOT NULL,
		battery_depleted INTEGER NOT NULL,
		substitutions INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		step INTEGER NOT NULL,
		action TEXT NOT NULL,
		state TEXT NOT NULL,
		message TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy);
	CREATE INDEX IF NOT EXISTS idx_history_run ON history(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveResult writes one finished run and its full action history.
func (db *DB) SaveResult(res runner.Result) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(run_id, scenario, strategy, initial_battery, initial_urgency,
		 steps, final_battery, final_urgency, user_helped, battery_depleted, substitutions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID.String(), res.Name, res.Strategy,
		res.InitialBattery, res.InitialUrgency,
		res.Steps, res.FinalBattery, res.FinalUrgency,
		boolToInt(res.UserHelped), boolToInt(res.BatteryDepleted), res.Substitutions,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", res.RunID, err)
	}

	stmt, err := tx.Preparex(
		"INSERT INTO history (run_id, step, action, state, message) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, h := range res.History {
		if _, err := stmt.Exec(res.RunID.String(), h.Step, h.Action.String(), h.State, h.Message); err != nil {
			return fmt.Errorf("insert history for run %s: %w", res.RunID, err)
		}
	}

	return tx.Commit()
}

// SaveResults writes a batch of runs.
func (db *DB) SaveResults(results []runner.Result) error {
	for _, res := range results {
		if err := db.SaveResult(res); err != nil {
			return err
		}
	}
	slog.Info("run results saved", "count", len(results))
	return nil
}

// RunRow is the stored shape of one run.
type RunRow struct {
	RunID           string `db:"run_id"`
	Scenario        string `db:"scenario"`
	Strategy        string `db:"strategy"`
	InitialBattery  int    `db:"initial_battery"`
	InitialUrgency  int    `db:"initial_urgency"`
	Steps           int    `db:"steps"`
	FinalBattery    int    `db:"final_battery"`
	FinalUrgency    int    `db:"final_urgency"`
	UserHelped      bool   `db:"user_helped"`
	BatteryDepleted bool   `db:"battery_depleted"`
	Substitutions   int    `db:"substitutions"`
	CreatedAt       string `db:"created_at"`
}

// RecentRuns returns the most recent N runs, newest first.
func (db *DB) RecentRuns(limit int) ([]RunRow, error) {
	var rows []RunRow
	err := db.conn.Select(&rows,
		"SELECT * FROM runs ORDER BY created_at DESC, run_id LIMIT ?", limit)
	return rows, err
}

// RunsByStrategy returns every stored run for one strategy.
func (db *DB) RunsByStrategy(strategy string) ([]RunRow, error) {
	var rows []RunRow
	err := db.conn.Select(&rows,
		"SELECT * FROM runs WHERE strategy = ? ORDER BY created_at", strategy)
	return rows, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
