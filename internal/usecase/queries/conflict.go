package queries

import (
	"context"

	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrConflictNotFound    = errs.New("conflict not found")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
	ErrInvalidCursor       = errs.New("invalid cursor")
)

// StatusFilter selects which lifecycle states a conflict listing returns.
// The resolved filter covers both manual and automatic resolution.
type StatusFilter string

const (
	FilterActive   StatusFilter = "active"
	FilterResolved StatusFilter = "resolved"
	FilterAll      StatusFilter = "all"
)

func (f StatusFilter) statuses() ([]string, error) {
	switch f {
	case FilterActive, "":
		return []string{"ACTIVE"}, nil
	case FilterResolved:
		return []string{"RESOLVED", "AUTO_RESOLVED"}, nil
	case FilterAll:
		return []string{"ACTIVE", "RESOLVED", "AUTO_RESOLVED"}, nil
	default:
		return nil, ErrInvalidStatusFilter
	}
}

type ConflictReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ConflictView, error)
	FindByUser(ctx context.Context, userID uuid.UUID, statuses []string) ([]*ConflictListItem, error)
	FindByDeal(ctx context.Context, dealID uuid.UUID, statuses []string) ([]*ConflictListItem, error)
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (*ConflictSummary, error)
}

type ConflictQueries interface {
	GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*ConflictView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter StatusFilter) ([]*ConflictListItem, error)
	ListByDeal(ctx context.Context, userID uuid.UUID, dealID uuid.UUID, filter StatusFilter) ([]*ConflictListItem, error)
	GetSummary(ctx context.Context, userID uuid.UUID) (*ConflictSummary, error)
}

type conflictQueriesImpl struct {
	readStore ConflictReadStore
	deals     DealReadStore
}

func NewConflictQueries(readStore ConflictReadStore, deals DealReadStore) ConflictQueries {
	return &conflictQueriesImpl{
		readStore: readStore,
		deals:     deals,
	}
}

func (q *conflictQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*ConflictView, error) {
	cv, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrConflictNotFound
		}
		return nil, err
	}
	// Ownership check goes through the target deal; conflicts never cross
	// creator portfolios.
	if _, err := q.deals.FindByID(ctx, userID, cv.TargetDealID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrConflictNotFound
		}
		return nil, err
	}
	return cv, nil
}

func (q *conflictQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, filter StatusFilter) ([]*ConflictListItem, error) {
	statuses, err := filter.statuses()
	if err != nil {
		return nil, err
	}
	return q.readStore.FindByUser(ctx, userID, statuses)
}

func (q *conflictQueriesImpl) ListByDeal(ctx context.Context, userID uuid.UUID, dealID uuid.UUID, filter StatusFilter) ([]*ConflictListItem, error) {
	statuses, err := filter.statuses()
	if err != nil {
		return nil, err
	}
	if _, err := q.deals.FindByID(ctx, userID, dealID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return q.readStore.FindByDeal(ctx, dealID, statuses)
}

func (q *conflictQueriesImpl) GetSummary(ctx context.Context, userID uuid.UUID) (*ConflictSummary, error) {
	return q.readStore.CountActiveByUser(ctx, userID)
}
