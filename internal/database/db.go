// Package database provides database connection management and schema setup.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hmnguyen/vietlearn/internal/config"
)

const connectRetryAttempts = 5

// Open opens a database connection for the configured driver.
// The default driver is sqlite3 with a local file-backed store.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(%s) > %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite3" {
		// SQLite doesn't support concurrent writers
		db.SetMaxOpenConns(1)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Connect opens a connection, waits for the database to become reachable and
// creates the schema. A freshly started database server may refuse the first
// few pings, so the ping is retried with backoff.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(connectRetryAttempts),
	); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.PingContext() > %w", err)
	}

	if err := Init(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Init() > %w", err)
	}

	return db, nil
}

var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS words (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vietnamese_word VARCHAR(100) NOT NULL UNIQUE,
		english_definition TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_words_vietnamese_word ON words (vietnamese_word)`,
	`CREATE TABLE IF NOT EXISTS grammar (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		grammar_point VARCHAR(200) NOT NULL UNIQUE,
		english_explanation TEXT NOT NULL,
		example_sentence TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_grammar_grammar_point ON grammar (grammar_point)`,
}

var mysqlStatements = []string{
	`CREATE TABLE IF NOT EXISTS words (
		id INT NOT NULL AUTO_INCREMENT,
		vietnamese_word VARCHAR(100) NOT NULL,
		english_definition TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY idx_words_vietnamese_word (vietnamese_word)
	)`,
	`CREATE TABLE IF NOT EXISTS grammar (
		id INT NOT NULL AUTO_INCREMENT,
		grammar_point VARCHAR(200) NOT NULL,
		english_explanation TEXT NOT NULL,
		example_sentence TEXT,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY idx_grammar_grammar_point (grammar_point)
	)`,
}

// Init creates the tables if they don't exist.
func Init(ctx context.Context, db *sqlx.DB) error {
	statements := sqliteStatements
	if db.DriverName() == "mysql" {
		statements = mysqlStatements
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("db.ExecContext(schema) > %w", err)
		}
	}
	return nil
}
