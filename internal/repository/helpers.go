package repository

import (
	"database/sql"
	"time"

	"github.com/alexanderramin/travelboard/internal/domain"
)

// parseNullableDate parses a nullable YYYY-MM-DD column.
// NULL, empty and unparseable values all yield nil.
func parseNullableDate(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(domain.DateLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableDate converts an optional date into a value for SQLite storage.
func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(domain.DateLayout)
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
