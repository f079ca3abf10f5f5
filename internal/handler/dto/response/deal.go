package response

import (
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"
)

type ExclusivityClauseResponse struct {
	Scope     string `json:"scope"`
	Category  string `json:"category,omitempty"`
	StartDate int64  `json:"start_date"`
	EndDate   int64  `json:"end_date"`
}

type DealResponse struct {
	ID                  string                     `json:"id"`
	BrandID             string                     `json:"brand_id"`
	BrandName           string                     `json:"brand_name"`
	Title               string                     `json:"title"`
	Status              string                     `json:"status"`
	AmountCents         int64                      `json:"amount_cents"`
	Currency            string                     `json:"currency"`
	Exclusivity         *ExclusivityClauseResponse `json:"exclusivity,omitempty"`
	ActiveConflictCount int64                      `json:"active_conflict_count"`
	CreatedAt           int64                      `json:"created_at"`
	UpdatedAt           int64                      `json:"updated_at"`
}

func FromDealView(v *queries.DealView) *DealResponse {
	res := &DealResponse{
		ID:                  v.ID.String(),
		BrandID:             v.BrandID.String(),
		BrandName:           v.BrandName,
		Title:               v.Title,
		Status:              v.Status,
		AmountCents:         v.AmountCents,
		Currency:            v.Currency,
		ActiveConflictCount: v.ActiveConflictCount,
		CreatedAt:           v.CreatedAt.Unix(),
		UpdatedAt:           v.UpdatedAt.Unix(),
	}
	if v.ExclusivityScope != nil && v.ExclusivityStartDate != nil && v.ExclusivityEndDate != nil {
		clause := &ExclusivityClauseResponse{
			Scope:     *v.ExclusivityScope,
			StartDate: v.ExclusivityStartDate.Unix(),
			EndDate:   v.ExclusivityEndDate.Unix(),
		}
		if v.ExclusivityCategory != nil {
			clause.Category = *v.ExclusivityCategory
		}
		res.Exclusivity = clause
	}
	return res
}

type DealListItemResponse struct {
	ID                  string `json:"id"`
	BrandName           string `json:"brand_name"`
	Title               string `json:"title"`
	Status              string `json:"status"`
	AmountCents         int64  `json:"amount_cents"`
	Currency            string `json:"currency"`
	ActiveConflictCount int64  `json:"active_conflict_count"`
	CreatedAt           int64  `json:"created_at"`
}

type DealListResponse struct {
	Deals      []*DealListItemResponse `json:"deals"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

func FromDealList(items []*queries.DealListItem, next *queries.Cursor) *DealListResponse {
	res := &DealListResponse{Deals: make([]*DealListItemResponse, len(items))}
	for i, it := range items {
		res.Deals[i] = &DealListItemResponse{
			ID:                  it.ID.String(),
			BrandName:           it.BrandName,
			Title:               it.Title,
			Status:              it.Status,
			AmountCents:         it.AmountCents,
			Currency:            it.Currency,
			ActiveConflictCount: it.ActiveConflictCount,
			CreatedAt:           it.CreatedAt.Unix(),
		}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

// ReconcileResponse reports what a mutation's reconciliation pass changed.
type ReconcileResponse struct {
	ConflictsDetected     int `json:"conflicts_detected"`
	ConflictsRefreshed    int `json:"conflicts_refreshed"`
	ConflictsAutoResolved int `json:"conflicts_auto_resolved"`
}

func FromReconcileStats(s commands.ReconcileStats) ReconcileResponse {
	return ReconcileResponse{
		ConflictsDetected:     s.Inserted,
		ConflictsRefreshed:    s.Refreshed,
		ConflictsAutoResolved: s.AutoResolved,
	}
}

type CreateDealResponse struct {
	Deal      *DealResponse     `json:"deal"`
	Reconcile ReconcileResponse `json:"reconcile"`
}

type UpdateDealResponse struct {
	Deal      *DealResponse     `json:"deal"`
	Reconcile ReconcileResponse `json:"reconcile"`
}
