package repository

import (
	"context"
	"time"

	"dealdesk/internal/domain/brand"
	"dealdesk/internal/infra"
	"dealdesk/internal/infra/db"

	"github.com/google/uuid"
)

type BrandRepository struct{}

func NewBrandRepository() *BrandRepository {
	return &BrandRepository{}
}

func (r *BrandRepository) Create(ctx context.Context, tx db.DBTX, b *brand.Brand) (uuid.UUID, error) {
	const query = `
		INSERT INTO brands (id, user_id, name, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, b.ID(), b.UserID(), b.Name(), b.Category()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create brand", err)
	}
	return id, nil
}

func (r *BrandRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*brand.Brand, error) {
	const query = `
		SELECT id, user_id, name, category, created_at, updated_at
		FROM brands WHERE id = $1`

	b, err := scanBrand(tx.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("brand not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find brand by id", err)
	}
	return b, nil
}

func (r *BrandRepository) ListByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]*brand.Brand, error) {
	const query = `
		SELECT id, user_id, name, category, created_at, updated_at
		FROM brands WHERE user_id = $1 ORDER BY name`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list brands by user", err)
	}
	defer rows.Close()

	var brands []*brand.Brand
	for rows.Next() {
		b, serr := scanBrand(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan brand row", serr)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate brand rows", err)
	}
	return brands, nil
}

func scanBrand(row rowScanner) (*brand.Brand, error) {
	var (
		id, userID           uuid.UUID
		name, category       string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &userID, &name, &category, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return brand.ReconstructBrand(id, userID, name, category, createdAt, updatedAt), nil
}
