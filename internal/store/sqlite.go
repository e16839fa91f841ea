package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// ErrDuplicateUsername is returned by CreateUser when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

const (
	// DefaultHistoryLimit bounds Recent when the caller passes limit <= 0.
	DefaultHistoryLimit = 50

	DemoUsername = "demo"
	DemoPassword = "demo123"
	demoEmail    = "demo@example.com"
	demoName     = "Demo User"
)

// HashFunc produces a one-way password hash. The store does not hash
// passwords itself; the credential layer supplies the function so the
// demo seed and reset paths can create accounts without a package cycle.
type HashFunc func(password string) (string, error)

type SQLiteStore struct {
	db           *sqlx.DB
	hashPassword HashFunc
}

func NewSQLiteStore(dataSourceName string, hasher HashFunc) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db, hashPassword: hasher}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	store.migrate()
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS users (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        username TEXT UNIQUE NOT NULL,
        password TEXT NOT NULL,
        email TEXT,
        name TEXT,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS chat_history (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        username TEXT NOT NULL,
        message TEXT NOT NULL,
        response TEXT NOT NULL,
        timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (username) REFERENCES users (username)
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

type columnInfo struct {
	CID       int     `db:"cid"`
	Name      string  `db:"name"`
	Type      string  `db:"type"`
	NotNull   int     `db:"notnull"`
	DfltValue *string `db:"dflt_value"`
	PK        int     `db:"pk"`
}

// migrate brings a pre-existing database up to the current schema by adding
// any missing optional columns. Failures are logged and startup continues
// with the existing schema.
func (s *SQLiteStore) migrate() {
	s.addMissingColumn("users", "name", "TEXT", "")
	s.addMissingColumn("users", "email", "TEXT", "")
	s.addMissingColumn("users", "created_at", "TIMESTAMP",
		"UPDATE users SET created_at = CURRENT_TIMESTAMP WHERE created_at IS NULL")
	s.addMissingColumn("chat_history", "timestamp", "TIMESTAMP",
		"UPDATE chat_history SET timestamp = CURRENT_TIMESTAMP WHERE timestamp IS NULL")
}

func (s *SQLiteStore) addMissingColumn(table, column, columnType, backfill string) {
	var cols []columnInfo
	if err := s.db.Select(&cols, fmt.Sprintf("PRAGMA table_info(%s)", table)); err != nil {
		logrus.Warnf("Migration: could not inspect table %s: %v", table, err)
		return
	}
	for _, col := range cols {
		if col.Name == column {
			return
		}
	}

	if _, err := s.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, columnType)); err != nil {
		logrus.Warnf("Migration: could not add column %s.%s: %v", table, column, err)
		return
	}
	if backfill != "" {
		if _, err := s.db.Exec(backfill); err != nil {
			logrus.Warnf("Migration: backfill of %s.%s failed: %v", table, column, err)
			return
		}
	}
	logrus.Infof("Migration: added column %s.%s", table, column)
}

// EnsureSeedUser inserts the fixed demo account when the users table is
// empty. Safe to call on every startup.
func (s *SQLiteStore) EnsureSeedUser() error {
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	email := demoEmail
	name := demoName
	if err := s.CreateUser(DemoUsername, hash, &email, &name); err != nil {
		// Another starter may have won the race; an existing demo row is fine.
		if errors.Is(err, ErrDuplicateUsername) {
			return nil
		}
		return err
	}
	logrus.Info("Seeded demo account")
	return nil
}

// User methods

func (s *SQLiteStore) CreateUser(username, passwordHash string, email, name *string) error {
	var existing string
	err := s.db.Get(&existing, "SELECT username FROM users WHERE username = ?", username)
	if err == nil {
		return ErrDuplicateUsername
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO users (username, password, email, name, created_at) VALUES (?, ?, ?, ?, ?)",
		username, passwordHash, email, name, time.Now(),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByUsername returns nil without error when the user does not exist.
func (s *SQLiteStore) GetUserByUsername(username string) (*User, error) {
	var user User
	err := s.db.Get(&user,
		"SELECT id, username, password, email, name, created_at FROM users WHERE username = ?", username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (s *SQLiteStore) UpdatePasswordHash(username, passwordHash string) error {
	res, err := s.db.Exec("UPDATE users SET password = ? WHERE username = ?", passwordHash, username)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQLiteStore) UpdateProfile(username string, email, name *string) error {
	res, err := s.db.Exec("UPDATE users SET email = COALESCE(?, email), name = COALESCE(?, name) WHERE username = ?",
		email, name, username)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteUser removes the user's chat rows and then the user row in a single
// transaction, so concurrent readers never observe orphan chat rows.
func (s *SQLiteStore) DeleteUser(username string) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM chat_history WHERE username = ?", username); err != nil {
		return fmt.Errorf("failed to delete chat history: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM users WHERE username = ?", username); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return tx.Commit()
}

// Chat history methods

func (s *SQLiteStore) AppendChat(username, message, response string) error {
	_, err := s.db.Exec(
		"INSERT INTO chat_history (username, message, response, timestamp) VALUES (?, ?, ?, ?)",
		username, message, response, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat entry: %w", err)
	}
	return nil
}

// RecentChats returns up to limit entries for the user, newest first.
func (s *SQLiteStore) RecentChats(username string, limit int) ([]ChatEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	var entries []ChatEntry
	err := s.db.Select(&entries, `
		SELECT id, username, message, response, timestamp FROM chat_history
		WHERE username = ? ORDER BY timestamp DESC, id DESC LIMIT ?`,
		username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	return entries, nil
}

func (s *SQLiteStore) PurgeUser(username string) error {
	if _, err := s.db.Exec("DELETE FROM chat_history WHERE username = ?", username); err != nil {
		return fmt.Errorf("failed to purge chat history: %w", err)
	}
	return nil
}

// ResetAll drops and recreates both tables, then reseeds the demo account.
// Destructive, admin-only.
func (s *SQLiteStore) ResetAll() error {
	if _, err := s.db.Exec("DROP TABLE IF EXISTS chat_history"); err != nil {
		return fmt.Errorf("failed to drop chat_history: %w", err)
	}
	if _, err := s.db.Exec("DROP TABLE IF EXISTS users"); err != nil {
		return fmt.Errorf("failed to drop users: %w", err)
	}
	if err := s.initSchema(); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}
	return s.EnsureSeedUser()
}
