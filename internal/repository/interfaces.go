package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/travelboard/internal/domain"
)

// ErrNotFound is returned by lookups for an id that is not in the session.
var ErrNotFound = errors.New("destination not found")

// DestinationRepo stores the session's destinations in insertion order.
// UpdateStatus and Delete report whether a row was affected; an unknown id
// is not an error.
type DestinationRepo interface {
	Create(ctx context.Context, d *domain.Destination) error
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
	List(ctx context.Context) ([]*domain.Destination, error)
	UpdateStatus(ctx context.Context, id string, status domain.DestinationStatus) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Totals(ctx context.Context) (domain.Summary, error)
}
