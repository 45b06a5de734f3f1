package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore persists records as rows of a single `records` table. The
// table maps record names to opaque JSON bodies, mirroring the named
// record layout of the other backends rather than decomposing the
// collections into relational rows.
type MySQLStore struct {
	db *sql.DB
}

// OpenMySQL connects to MySQL, verifies the connection and ensures the
// records table exists.
func OpenMySQL(user, pass, host, port, name string) (*MySQLStore, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	const ddl = `CREATE TABLE IF NOT EXISTS records (
		name       VARCHAR(191) PRIMARY KEY,
		body       MEDIUMBLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &MySQLStore{db: db}, nil
}

// Get fetches the record body by name.
func (m *MySQLStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var body []byte
	err := m.db.QueryRowContext(ctx,
		"SELECT body FROM records WHERE name=? LIMIT 1", name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read record %s: %w", name, err)
	}
	return body, true, nil
}

// Set upserts the record body.
func (m *MySQLStore) Set(ctx context.Context, name string, body []byte) error {
	_, err := m.db.ExecContext(ctx,
		"INSERT INTO records (name, body) VALUES (?,?) ON DUPLICATE KEY UPDATE body=VALUES(body)",
		name, body)
	if err != nil {
		return fmt.Errorf("write record %s: %w", name, err)
	}
	return nil
}

// Delete removes the record row; missing rows are ignored.
func (m *MySQLStore) Delete(ctx context.Context, name string) error {
	if _, err := m.db.ExecContext(ctx, "DELETE FROM records WHERE name=?", name); err != nil {
		return fmt.Errorf("delete record %s: %w", name, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (m *MySQLStore) Close() error { return m.db.Close() }
