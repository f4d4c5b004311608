package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/travelboard/internal/db"
	"github.com/alexanderramin/travelboard/internal/domain"
	"github.com/alexanderramin/travelboard/internal/repository"
	"github.com/google/uuid"
)

type destinationService struct {
	destinations repository.DestinationRepo
	uow          db.UnitOfWork
	observer     UseCaseObserver
}

func NewDestinationService(
	destinations repository.DestinationRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) DestinationService {
	return &destinationService{
		destinations: destinations,
		uow:          uow,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// Add appends d to the end of the list under a freshly generated id.
// Any id already set on d is replaced. d is updated with the stored
// record only once the insert has committed.
func (s *destinationService) Add(ctx context.Context, d *domain.Destination) (err error) {
	defer s.observe(ctx, "add-destination", time.Now().UTC(), &err, map[string]any{"name": d.Name})()

	rec := d.Clone()
	if rec.Status == "" {
		rec.Status = domain.StatusPlanned
	}
	if !rec.Status.Valid() {
		return fmt.Errorf("adding %q: %w", rec.Name, domain.ErrInvalidStatus)
	}
	rec.Budget = domain.ClampBudget(rec.Budget)
	rec.ID = uuid.New().String()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteDestinationRepo(tx).Create(ctx, rec)
	})
	if err != nil {
		return err
	}
	*d = *rec
	return nil
}

// CommitDraft validates the draft and, when valid, appends the candidate
// and resets the draft. An invalid draft leaves both the list and the
// draft untouched and reports ok=false.
func (s *destinationService) CommitDraft(ctx context.Context, draft *domain.Draft) (*domain.Destination, bool, error) {
	if draft.Validate() != nil {
		return nil, false, nil
	}
	candidate := draft.Candidate()
	dest := candidate.Clone()
	if err := s.Add(ctx, dest); err != nil {
		return nil, false, err
	}
	draft.Reset()
	return dest, true, nil
}

// Seed inserts the start-up records in one transaction.
func (s *destinationService) Seed(ctx context.Context, seeds []*domain.Destination) (err error) {
	defer s.observe(ctx, "seed-destinations", time.Now().UTC(), &err, map[string]any{"count": len(seeds)})()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteDestinationRepo(tx)
		for _, seed := range seeds {
			d := seed.Clone()
			d.ID = uuid.New().String()
			d.Budget = domain.ClampBudget(d.Budget)
			if d.Status == "" {
				d.Status = domain.StatusPlanned
			}
			if err := repo.Create(ctx, d); err != nil {
				return fmt.Errorf("seeding %q: %w", d.Name, err)
			}
		}
		return nil
	})
}

func (s *destinationService) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	return s.destinations.GetByID(ctx, id)
}

func (s *destinationService) List(ctx context.Context) ([]*domain.Destination, error) {
	return s.destinations.List(ctx)
}

func (s *destinationService) UpdateStatus(ctx context.Context, id string, status domain.DestinationStatus) (err error) {
	fields := map[string]any{"id": id, "status": string(status)}
	defer s.observe(ctx, "update-status", time.Now().UTC(), &err, fields)()

	if !status.Valid() {
		return fmt.Errorf("updating %s: %w: %q", id, domain.ErrInvalidStatus, status)
	}
	found, err := s.destinations.UpdateStatus(ctx, id, status)
	fields["found"] = found
	return err
}

func (s *destinationService) Delete(ctx context.Context, id string) (err error) {
	fields := map[string]any{"id": id}
	defer s.observe(ctx, "delete-destination", time.Now().UTC(), &err, fields)()

	found, err := s.destinations.Delete(ctx, id)
	fields["found"] = found
	return err
}

func (s *destinationService) Summary(ctx context.Context) (domain.Summary, error) {
	return s.destinations.Totals(ctx)
}

// observe returns a func that reports the use case once it finishes.
// errp is read when the returned func runs, so named results work.
func (s *destinationService) observe(ctx context.Context, name string, startedAt time.Time, errp *error, fields map[string]any) func() {
	return func() {
		err := *errp
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}
