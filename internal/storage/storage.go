package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("not found")

// timeLayout is RFC3339Nano with a fixed-width fraction, so stored dates keep
// full precision and still sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Storage struct {
	DB  *sql.DB
	log *logrus.Entry
}

// New opens the database behind connString and creates the schema when
// missing. libsql:// and https:// URLs go to Turso through libsql;
// file: URLs and :memory: are opened locally with the pure Go sqlite driver.
func New(connString string, log *logrus.Entry) (*Storage, error) {
	if connString == "" {
		return nil, errors.New("database connection string is empty")
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	driver := driverFor(connString)
	db, err := sql.Open(driver, connString)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", redact(connString), err)
	}
	if driver == "sqlite" {
		// A single connection keeps :memory: databases alive and avoids
		// SQLITE_BUSY between our own writers.
		db.SetMaxOpenConns(1)
	}

	if err := initializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	log.WithField("driver", driver).Debug("Database ready")
	return &Storage{DB: db, log: log}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func driverFor(connString string) string {
	if connString == ":memory:" || strings.HasPrefix(connString, "file:") {
		return "sqlite"
	}
	return "libsql"
}

// redact drops the query string, which carries the auth token for Turso.
func redact(connString string) string {
	if i := strings.IndexByte(connString, '?'); i >= 0 {
		return connString[:i]
	}
	return connString
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS workouts (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            name TEXT NOT NULL,
            date TEXT NOT NULL,
            duration INTEGER,
            notes TEXT,
            completed INTEGER NOT NULL DEFAULT 1,
            created_at TEXT NOT NULL
        );

        CREATE INDEX IF NOT EXISTS idx_workouts_user_date ON workouts (user_id, date);

        CREATE TABLE IF NOT EXISTS workout_exercises (
            id TEXT PRIMARY KEY,
            workout_id TEXT NOT NULL,
            exercise_id TEXT NOT NULL,
            exercise_name TEXT NOT NULL,
            muscle_group TEXT NOT NULL,
            secondary_muscles TEXT,
            equipment TEXT NOT NULL,
            sort_order INTEGER NOT NULL,
            FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS exercise_sets (
            id TEXT PRIMARY KEY,
            workout_exercise_id TEXT NOT NULL,
            weight REAL NOT NULL,
            reps INTEGER NOT NULL,
            set_type TEXT NOT NULL,
            completed INTEGER NOT NULL,
            rest_time INTEGER,
            notes TEXT,
            sort_order INTEGER NOT NULL,
            FOREIGN KEY (workout_exercise_id) REFERENCES workout_exercises(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS routines (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            name TEXT NOT NULL,
            created_at TEXT NOT NULL,
            last_used TEXT
        );

        CREATE TABLE IF NOT EXISTS routine_exercises (
            routine_id TEXT NOT NULL,
            exercise_id TEXT NOT NULL,
            exercise_name TEXT NOT NULL,
            muscle_group TEXT NOT NULL,
            secondary_muscles TEXT,
            equipment TEXT NOT NULL,
            default_sets INTEGER NOT NULL,
            sort_order INTEGER NOT NULL,
            FOREIGN KEY (routine_id) REFERENCES routines(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS custom_exercises (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            name TEXT NOT NULL,
            muscle_group TEXT NOT NULL,
            secondary_muscles TEXT,
            equipment TEXT NOT NULL,
            instructions TEXT,
            created_at TEXT NOT NULL,
            UNIQUE (user_id, name)
        );
    `)
	return err
}
