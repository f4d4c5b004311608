package service

import (
	"context"

	"github.com/alexanderramin/travelboard/internal/domain"
)

// DestinationService is the session's destination list. Delete and
// UpdateStatus on an unknown id are silent no-ops; returned errors are
// session-store faults.
type DestinationService interface {
	Add(ctx context.Context, d *domain.Destination) error
	CommitDraft(ctx context.Context, draft *domain.Draft) (*domain.Destination, bool, error)
	Seed(ctx context.Context, seeds []*domain.Destination) error
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
	List(ctx context.Context) ([]*domain.Destination, error)
	UpdateStatus(ctx context.Context, id string, status domain.DestinationStatus) error
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (domain.Summary, error)
}
