package data

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// InitDuckDB opens an in-memory DuckDB database.
func InitDuckDB() (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

type Repository struct {
	db *sql.DB
}

func NewDuckDBRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// LoadItemsCSV reads items from a CSV file with a header row containing
// title, author and genre columns. Rows keep their file order.
func (r *Repository) LoadItemsCSV(path string) ([]*Item, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}

	// table functions do not take bind parameters for the file name
	quoted := strings.ReplaceAll(path, "'", "''")
	query := fmt.Sprintf(`
		SELECT title, author, genre
		FROM read_csv_auto('%s', header = true, all_varchar = true)
	`, quoted)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var title, author, genre sql.NullString
		if err := rows.Scan(&title, &author, &genre); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if strings.TrimSpace(title.String) == "" {
			continue
		}
		items = append(items, NewItem(
			strings.TrimSpace(title.String),
			strings.TrimSpace(author.String),
			strings.TrimSpace(genre.String),
		))
	}

	return items, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
