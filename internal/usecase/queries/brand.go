package queries

import (
	"context"

	"github.com/google/uuid"
)

type BrandReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*BrandView, error)
}

type BrandQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BrandView, error)
}

type brandQueriesImpl struct {
	readStore BrandReadStore
}

func NewBrandQueries(readStore BrandReadStore) BrandQueries {
	return &brandQueriesImpl{readStore: readStore}
}

func (q *brandQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BrandView, error) {
	return q.readStore.FindByUser(ctx, userID)
}
