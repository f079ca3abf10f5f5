package response

import (
	"dealdesk/internal/domain/conflict"
	"dealdesk/internal/usecase/queries"
)

type ConflictResponse struct {
	ID                       string           `json:"id"`
	Type                     string           `json:"type"`
	Severity                 string           `json:"severity"`
	Status                   string           `json:"status"`
	TargetDealID             string           `json:"target_deal_id"`
	TargetDealTitle          string           `json:"target_deal_title"`
	TargetBrandName          string           `json:"target_brand_name"`
	TargetDeliverableID      *string          `json:"target_deliverable_id,omitempty"`
	ConflictingRuleDealID    string           `json:"conflicting_rule_deal_id"`
	ConflictingRuleDealTitle string           `json:"conflicting_rule_deal_title"`
	ConflictingRuleBrandName string           `json:"conflicting_rule_brand_name"`
	Overlap                  conflict.Overlap `json:"overlap"`
	AutoResolved             bool             `json:"auto_resolved"`
	SuggestedResolutions     []string         `json:"suggested_resolutions"`
	ResolvedAt               *int64           `json:"resolved_at,omitempty"`
	CreatedAt                int64            `json:"created_at"`
	UpdatedAt                int64            `json:"updated_at"`
}

func FromConflictView(v *queries.ConflictView) *ConflictResponse {
	res := &ConflictResponse{
		ID:                       v.ID.String(),
		Type:                     v.Type,
		Severity:                 v.Severity,
		Status:                   v.Status,
		TargetDealID:             v.TargetDealID.String(),
		TargetDealTitle:          v.TargetDealTitle,
		TargetBrandName:          v.TargetBrandName,
		ConflictingRuleDealID:    v.ConflictingRuleDealID.String(),
		ConflictingRuleDealTitle: v.ConflictingRuleDealTitle,
		ConflictingRuleBrandName: v.ConflictingRuleBrandName,
		Overlap:                  v.Overlap,
		AutoResolved:             v.AutoResolved,
		SuggestedResolutions:     v.SuggestedResolutions,
		CreatedAt:                v.CreatedAt.Unix(),
		UpdatedAt:                v.UpdatedAt.Unix(),
	}
	if v.TargetDeliverableID != nil {
		id := v.TargetDeliverableID.String()
		res.TargetDeliverableID = &id
	}
	if v.ResolvedAt != nil {
		ts := v.ResolvedAt.Unix()
		res.ResolvedAt = &ts
	}
	return res
}

type ConflictListItemResponse struct {
	ID                       string           `json:"id"`
	Type                     string           `json:"type"`
	Severity                 string           `json:"severity"`
	Status                   string           `json:"status"`
	TargetDealID             string           `json:"target_deal_id"`
	TargetDealTitle          string           `json:"target_deal_title"`
	TargetBrandName          string           `json:"target_brand_name"`
	TargetDeliverableID      *string          `json:"target_deliverable_id,omitempty"`
	ConflictingRuleDealID    string           `json:"conflicting_rule_deal_id"`
	ConflictingRuleDealTitle string           `json:"conflicting_rule_deal_title"`
	ConflictingRuleBrandName string           `json:"conflicting_rule_brand_name"`
	Overlap                  conflict.Overlap `json:"overlap"`
	SuggestedResolutions     []string         `json:"suggested_resolutions"`
	AutoResolved             bool             `json:"auto_resolved"`
	CreatedAt                int64            `json:"created_at"`
}

func FromConflictList(items []*queries.ConflictListItem) []*ConflictListItemResponse {
	res := make([]*ConflictListItemResponse, len(items))
	for i, it := range items {
		item := &ConflictListItemResponse{
			ID:                       it.ID.String(),
			Type:                     it.Type,
			Severity:                 it.Severity,
			Status:                   it.Status,
			TargetDealID:             it.TargetDealID.String(),
			TargetDealTitle:          it.TargetDealTitle,
			TargetBrandName:          it.TargetBrandName,
			ConflictingRuleDealID:    it.ConflictingRuleDealID.String(),
			ConflictingRuleDealTitle: it.ConflictingRuleDealTitle,
			ConflictingRuleBrandName: it.ConflictingRuleBrandName,
			Overlap:                  it.Overlap,
			SuggestedResolutions:     it.SuggestedResolutions,
			AutoResolved:             it.AutoResolved,
			CreatedAt:                it.CreatedAt.Unix(),
		}
		if it.TargetDeliverableID != nil {
			id := it.TargetDeliverableID.String()
			item.TargetDeliverableID = &id
		}
		res[i] = item
	}
	return res
}

type ConflictSummaryResponse struct {
	ActiveCount int64 `json:"active_count"`
	BlockCount  int64 `json:"block_count"`
	WarnCount   int64 `json:"warn_count"`
}

func FromConflictSummary(s *queries.ConflictSummary) *ConflictSummaryResponse {
	return &ConflictSummaryResponse{
		ActiveCount: s.ActiveCount,
		BlockCount:  s.BlockCount,
		WarnCount:   s.WarnCount,
	}
}
