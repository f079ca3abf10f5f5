package readstore

import (
	"context"

	"dealdesk/internal/infra"
	"dealdesk/internal/infra/db"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type BrandReadStore struct {
	db db.DBTX
}

func NewBrandReadStore(db db.DBTX) *BrandReadStore {
	return &BrandReadStore{db: db}
}

func (r *BrandReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BrandView, error) {
	const query = `
		SELECT id, name, category, created_at, updated_at
		FROM brands
		WHERE user_id = $1
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list brands", err)
	}
	defer rows.Close()

	items := []*queries.BrandView{}
	for rows.Next() {
		var v queries.BrandView
		if serr := rows.Scan(&v.ID, &v.Name, &v.Category, &v.CreatedAt, &v.UpdatedAt); serr != nil {
			return nil, infra.WrapRepoErr("failed to scan brand row", serr)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate brand rows", err)
	}
	return items, nil
}
