package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/pawsandgo/pawsgo/domain"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var _ domain.BlobStore = (*Store)(nil)

// Store persists string blobs in a single prefs table, embedding the database
// connection. It is the durable half of the repository: collections are kept
// in memory and written through the store as JSON on every mutation.
type Store struct {
	dbConn *sqlx.DB // dbConn is the active database connection pool.
}

// NewStore initializes a new Store with the given sqlx.DB database connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{
		dbConn: db,
	}
}

// Get implements the domain.BlobStore interface.
// It returns the blob stored under key, reporting false when the key is absent.
func (store *Store) Get(key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM prefs WHERE key = ?`

	err := store.dbConn.Get(&value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting blob %s : %w", key, err)
	}

	return value, true, nil
}

// Set implements the domain.BlobStore interface.
// It stores the blob under key, replacing any previous value.
func (store *Store) Set(key, value string) error {
	query := `INSERT INTO prefs(key, value)
	          VALUES (?, ?)
	          ON CONFLICT(key) DO UPDATE SET value=excluded.value`

	_, err := store.dbConn.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("setting blob %s : %w", key, err)
	}

	return nil
}

// Delete implements the domain.BlobStore interface.
// Missing keys are ignored.
func (store *Store) Delete(keys ...string) error {
	query := `DELETE FROM prefs WHERE key = ?`

	for _, key := range keys {
		if _, err := store.dbConn.Exec(query, key); err != nil {
			return fmt.Errorf("deleting blob %s : %w", key, err)
		}
	}

	return nil
}

// Close terminates the database connection.
// It is critical to call this to free up database resources.
func (store *Store) Close() error {
	err := store.dbConn.Close()
	if err != nil {
		return fmt.Errorf("closing store : %w", err)
	}
	return nil
}

// New establishes a new connection to a SQLite database file and applies all pending migrations.
// It configures the connection for optimal performance and data integrity by enabling WAL mode.
//
// The `name` parameter should be the file path for the SQLite database.
//
// It returns a ready-to-use sqlx.DB connection pool or an error if the connection or migrations fail.
func New(name string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000", name))
	if err != nil {
		return nil, fmt.Errorf("connecting to db : %w", err)
	}

	db.SetMaxOpenConns(1)

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return nil, fmt.Errorf("setting dialect for migrations : %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return nil, fmt.Errorf("applying migration : %w", err)
	}
	return db, nil
}
