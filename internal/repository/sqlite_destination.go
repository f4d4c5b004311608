package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/travelboard/internal/db"
	"github.com/alexanderramin/travelboard/internal/domain"
)

// SQLiteDestinationRepo implements DestinationRepo on the session database.
// Create issues several statements; callers that need atomicity bind the
// repo to a transaction through db.UnitOfWork.
type SQLiteDestinationRepo struct {
	db db.DBTX
}

func NewSQLiteDestinationRepo(db db.DBTX) *SQLiteDestinationRepo {
	return &SQLiteDestinationRepo{db: db}
}

const destinationColumns = `id, name, country, start_date, end_date, budget, status, notes`

func (r *SQLiteDestinationRepo) Create(ctx context.Context, d *domain.Destination) error {
	query := `INSERT INTO destinations (id, position, name, country, start_date, end_date, budget, status, notes)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM destinations), ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.Country,
		nullableDate(d.Dates.Start),
		nullableDate(d.Dates.End),
		d.Budget,
		string(d.Status),
		d.Notes,
	)
	if err != nil {
		return fmt.Errorf("inserting destination: %w", err)
	}

	for i, label := range d.Activities {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO destination_activities (destination_id, position, label) VALUES (?, ?, ?)`,
			d.ID, i, label)
		if err != nil {
			return fmt.Errorf("inserting activity %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteDestinationRepo) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id = ?`, id)
	d, err := scanDestination(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	activities, err := r.listActivities(ctx, `WHERE destination_id = ?`, id)
	if err != nil {
		return nil, err
	}
	d.Activities = activities[d.ID]
	if d.Activities == nil {
		d.Activities = []string{}
	}
	return d, nil
}

func (r *SQLiteDestinationRepo) List(ctx context.Context) ([]*domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing destinations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destinations: %w", err)
	}

	activities, err := r.listActivities(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, d := range out {
		d.Activities = activities[d.ID]
		if d.Activities == nil {
			d.Activities = []string{}
		}
	}
	return out, nil
}

func (r *SQLiteDestinationRepo) UpdateStatus(ctx context.Context, id string, status domain.DestinationStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE destinations SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return false, fmt.Errorf("updating destination status: %w", err)
	}
	return rowsAffected(res)
}

func (r *SQLiteDestinationRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting destination: %w", err)
	}
	return rowsAffected(res)
}

func (r *SQLiteDestinationRepo) Totals(ctx context.Context) (domain.Summary, error) {
	var s domain.Summary
	err := r.db.QueryRowContext(ctx, `SELECT
			COUNT(*),
			COALESCE(SUM(budget), 0),
			COALESCE(SUM(CASE WHEN status != 'completed' THEN 1 ELSE 0 END), 0)
		FROM destinations`).Scan(&s.Count, &s.TotalBudget, &s.Upcoming)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("summarizing destinations: %w", err)
	}
	return s, nil
}

// listActivities loads activity labels grouped by destination id, each
// group in entry order.
func (r *SQLiteDestinationRepo) listActivities(ctx context.Context, where string, args ...any) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT destination_id, label FROM destination_activities `+where+` ORDER BY destination_id, position`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var id, label string
		if err := rows.Scan(&id, &label); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		out[id] = append(out[id], label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return out, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDestination(s scanner) (*domain.Destination, error) {
	var d domain.Destination
	var status string
	var start, end sql.NullString

	err := s.Scan(&d.ID, &d.Name, &d.Country, &start, &end, &d.Budget, &status, &d.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning destination: %w", err)
	}

	d.Status = domain.DestinationStatus(status)
	d.Dates = domain.DateRange{
		Start: parseNullableDate(start),
		End:   parseNullableDate(end),
	}
	return &d, nil
}
