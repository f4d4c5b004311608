package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/travelboard/internal/db"
)

// NewTestDB opens a fresh session database, closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenSession()
	if err != nil {
		t.Fatalf("failed to open session database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
