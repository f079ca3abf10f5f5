package readstore

import (
	"context"
	"time"

	"dealdesk/internal/infra"
	"dealdesk/internal/infra/db"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealReadStore struct {
	db db.DBTX
}

func NewDealReadStore(db db.DBTX) *DealReadStore {
	return &DealReadStore{db: db}
}

func (r *DealReadStore) FindByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*queries.DealView, error) {
	const query = `
		SELECT d.id, d.brand_id, b.name, d.title, d.status, d.amount_cents, d.currency,
			d.exclusivity_scope, d.exclusivity_category,
			d.exclusivity_start_date, d.exclusivity_end_date,
			(SELECT COUNT(*) FROM conflicts c
				WHERE (c.target_deal_id = d.id OR c.conflicting_deal_id = d.id)
					AND c.status = 'ACTIVE'),
			d.created_at, d.updated_at
		FROM deals d
		JOIN brands b ON b.id = d.brand_id
		WHERE d.id = $1 AND d.user_id = $2`

	var v queries.DealView
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&v.ID, &v.BrandID, &v.BrandName, &v.Title, &v.Status, &v.AmountCents, &v.Currency,
		&v.ExclusivityScope, &v.ExclusivityCategory,
		&v.ExclusivityStartDate, &v.ExclusivityEndDate,
		&v.ActiveConflictCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get deal view by id", err)
	}
	return &v, nil
}

const dealListSelect = `
	SELECT d.id, b.name, d.title, d.status, d.amount_cents, d.currency,
		(SELECT COUNT(*) FROM conflicts c
			WHERE (c.target_deal_id = d.id OR c.conflicting_deal_id = d.id)
				AND c.status = 'ACTIVE'),
		d.created_at
	FROM deals d
	JOIN brands b ON b.id = d.brand_id`

func (r *DealReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.DealListItem, error) {
	query := dealListSelect + `
		WHERE d.user_id = $1
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT $2`

	return r.listItems(ctx, query, userID, limit)
}

func (r *DealReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.DealListItem, error) {
	query := dealListSelect + `
		WHERE d.user_id = $1 AND (d.created_at, d.id) < ($2, $3)
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT $4`

	return r.listItems(ctx, query, userID, lastCreatedAt, lastID, limit)
}

func (r *DealReadStore) FindDeliverables(ctx context.Context, dealID uuid.UUID) ([]*queries.DeliverableView, error) {
	const query = `
		SELECT id, deal_id, title, status, scheduled_at, created_at, updated_at
		FROM deliverables
		WHERE deal_id = $1
		ORDER BY scheduled_at NULLS LAST, created_at, id`

	rows, err := r.db.Query(ctx, query, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deliverables", err)
	}
	defer rows.Close()

	items := []*queries.DeliverableView{}
	for rows.Next() {
		var v queries.DeliverableView
		if serr := rows.Scan(&v.ID, &v.DealID, &v.Title, &v.Status, &v.ScheduledAt, &v.CreatedAt, &v.UpdatedAt); serr != nil {
			return nil, infra.WrapRepoErr("failed to scan deliverable row", serr)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate deliverable rows", err)
	}
	return items, nil
}

func (r *DealReadStore) listItems(ctx context.Context, query string, args ...any) ([]*queries.DealListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals", err)
	}
	defer rows.Close()

	items := []*queries.DealListItem{}
	for rows.Next() {
		var item queries.DealListItem
		if serr := rows.Scan(
			&item.ID, &item.BrandName, &item.Title, &item.Status,
			&item.AmountCents, &item.Currency, &item.ActiveConflictCount, &item.CreatedAt,
		); serr != nil {
			return nil, infra.WrapRepoErr("failed to scan deal row", serr)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate deal rows", err)
	}
	return items, nil
}
