package data

import (
	"testing"
)

func TestInitDuckDB(t *testing.T) {
	db, err := InitDuckDB()
	if err != nil {
		t.Fatalf("Failed to initialize DB: %v", err)
	}
	defer db.Close()

	var one int
	if err := db.QueryRow(`SELECT 1`).Scan(&one); err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if one != 1 {
		t.Errorf("Expected 1, got %d", one)
	}
}
