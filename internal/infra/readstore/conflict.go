package readstore

import (
	"context"
	"encoding/json"

	"dealdesk/internal/infra"
	"dealdesk/internal/infra/db"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConflictReadStore struct {
	db db.DBTX
}

func NewConflictReadStore(db db.DBTX) *ConflictReadStore {
	return &ConflictReadStore{db: db}
}

// BLOCK conflicts sort before WARN regardless of age.
const conflictListOrder = ` ORDER BY CASE c.severity WHEN 'BLOCK' THEN 0 ELSE 1 END, c.created_at DESC, c.id`

func (r *ConflictReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ConflictView, error) {
	const query = `
		SELECT c.id, c.type, c.severity, c.status,
			c.target_deal_id, td.title, tb.name,
			c.target_deliverable_id,
			c.conflicting_deal_id, cd.title, cb.name,
			c.overlap, c.auto_resolved, c.suggested_resolutions, c.resolved_at,
			c.created_at, c.updated_at
		FROM conflicts c
		JOIN deals td ON td.id = c.target_deal_id
		JOIN brands tb ON tb.id = td.brand_id
		JOIN deals cd ON cd.id = c.conflicting_deal_id
		JOIN brands cb ON cb.id = cd.brand_id
		WHERE c.id = $1`

	var (
		v          queries.ConflictView
		overlapRaw []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Type, &v.Severity, &v.Status,
		&v.TargetDealID, &v.TargetDealTitle, &v.TargetBrandName,
		&v.TargetDeliverableID,
		&v.ConflictingRuleDealID, &v.ConflictingRuleDealTitle, &v.ConflictingRuleBrandName,
		&overlapRaw, &v.AutoResolved, &v.SuggestedResolutions, &v.ResolvedAt,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("conflict not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get conflict view by id", err)
	}
	if len(overlapRaw) > 0 {
		if err := json.Unmarshal(overlapRaw, &v.Overlap); err != nil {
			return nil, infra.WrapRepoErr("failed to decode conflict overlap", err)
		}
	}
	return &v, nil
}

func (r *ConflictReadStore) FindByUser(ctx context.Context, userID uuid.UUID, statuses []string) ([]*queries.ConflictListItem, error) {
	query := `
		SELECT c.id, c.type, c.severity, c.status,
			c.target_deal_id, td.title, tb.name,
			c.target_deliverable_id,
			c.conflicting_deal_id, cd.title, cb.name,
			c.overlap, c.suggested_resolutions,
			c.auto_resolved, c.created_at
		FROM conflicts c
		JOIN deals td ON td.id = c.target_deal_id
		JOIN brands tb ON tb.id = td.brand_id
		JOIN deals cd ON cd.id = c.conflicting_deal_id
		JOIN brands cb ON cb.id = cd.brand_id
		WHERE c.user_id = $1 AND c.status = ANY($2)` + conflictListOrder

	return r.listItems(ctx, query, userID, statuses)
}

func (r *ConflictReadStore) FindByDeal(ctx context.Context, dealID uuid.UUID, statuses []string) ([]*queries.ConflictListItem, error) {
	query := `
		SELECT c.id, c.type, c.severity, c.status,
			c.target_deal_id, td.title, tb.name,
			c.target_deliverable_id,
			c.conflicting_deal_id, cd.title, cb.name,
			c.overlap, c.suggested_resolutions,
			c.auto_resolved, c.created_at
		FROM conflicts c
		JOIN deals td ON td.id = c.target_deal_id
		JOIN brands tb ON tb.id = td.brand_id
		JOIN deals cd ON cd.id = c.conflicting_deal_id
		JOIN brands cb ON cb.id = cd.brand_id
		WHERE (c.target_deal_id = $1 OR c.conflicting_deal_id = $1)
			AND c.status = ANY($2)` + conflictListOrder

	return r.listItems(ctx, query, dealID, statuses)
}

func (r *ConflictReadStore) CountActiveByUser(ctx context.Context, userID uuid.UUID) (*queries.ConflictSummary, error) {
	const query = `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE severity = 'BLOCK'),
			COUNT(*) FILTER (WHERE severity = 'WARN')
		FROM conflicts
		WHERE user_id = $1 AND status = 'ACTIVE'`

	var s queries.ConflictSummary
	err := r.db.QueryRow(ctx, query, userID).Scan(&s.ActiveCount, &s.BlockCount, &s.WarnCount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count active conflicts", err)
	}
	return &s, nil
}

func (r *ConflictReadStore) listItems(ctx context.Context, query string, id uuid.UUID, statuses []string) ([]*queries.ConflictListItem, error) {
	rows, err := r.db.Query(ctx, query, id, statuses)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conflicts", err)
	}
	defer rows.Close()

	items := []*queries.ConflictListItem{}
	for rows.Next() {
		var (
			item       queries.ConflictListItem
			overlapRaw []byte
		)
		if serr := rows.Scan(
			&item.ID, &item.Type, &item.Severity, &item.Status,
			&item.TargetDealID, &item.TargetDealTitle, &item.TargetBrandName,
			&item.TargetDeliverableID,
			&item.ConflictingRuleDealID, &item.ConflictingRuleDealTitle, &item.ConflictingRuleBrandName,
			&overlapRaw, &item.SuggestedResolutions,
			&item.AutoResolved, &item.CreatedAt,
		); serr != nil {
			return nil, infra.WrapRepoErr("failed to scan conflict row", serr)
		}
		if len(overlapRaw) > 0 {
			if serr := json.Unmarshal(overlapRaw, &item.Overlap); serr != nil {
				return nil, infra.WrapRepoErr("failed to decode conflict overlap", serr)
			}
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate conflict rows", err)
	}
	return items, nil
}
