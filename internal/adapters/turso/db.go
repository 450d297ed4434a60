package turso

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/tursodatabase/go-libsql"
)

// DB wraps a libsql connection.
type DB struct {
	*sql.DB
	url string
}

// NewDB opens a libsql database. Remote URLs (libsql://, https://) take the
// auth token as a query parameter; local file: URLs ignore it.
func NewDB(dbURL, authToken string) (*DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	connStr := dbURL
	if authToken != "" && !strings.HasPrefix(dbURL, "file:") {
		sep := "?"
		if strings.Contains(dbURL, "?") {
			sep = "&"
		}
		connStr = dbURL + sep + "authToken=" + url.QueryEscape(authToken)
	}

	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, url: dbURL}, nil
}

// URL returns the database URL without credentials.
func (d *DB) URL() string { return d.url }
