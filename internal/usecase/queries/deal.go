package queries

import (
	"context"
	"time"

	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDealNotFound        = errs.New("deal not found")
	ErrDeliverableNotFound = errs.New("deliverable not found")
)

type DealReadStore interface {
	FindByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*DealView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*DealListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*DealListItem, error)
	FindDeliverables(ctx context.Context, dealID uuid.UUID) ([]*DeliverableView, error)
}

type DealQueries interface {
	GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*DealView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*DealListItem, *Cursor, error)
	ListDeliverables(ctx context.Context, userID uuid.UUID, dealID uuid.UUID) ([]*DeliverableView, error)
}

type dealQueriesImpl struct {
	readStore DealReadStore
}

func NewDealQueries(readStore DealReadStore) DealQueries {
	return &dealQueriesImpl{readStore: readStore}
}

func (q *dealQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*DealView, error) {
	dv, err := q.readStore.FindByID(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return dv, nil
}

func (q *dealQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*DealListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*DealListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *dealQueriesImpl) ListDeliverables(ctx context.Context, userID uuid.UUID, dealID uuid.UUID) ([]*DeliverableView, error) {
	if _, err := q.readStore.FindByID(ctx, userID, dealID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return q.readStore.FindDeliverables(ctx, dealID)
}
