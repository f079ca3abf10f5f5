package response

import (
	"dealdesk/internal/usecase/queries"
)

type DeliverableResponse struct {
	ID          string `json:"id"`
	DealID      string `json:"deal_id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	ScheduledAt *int64 `json:"scheduled_at,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func FromDeliverableView(v *queries.DeliverableView) *DeliverableResponse {
	res := &DeliverableResponse{
		ID:        v.ID.String(),
		DealID:    v.DealID.String(),
		Title:     v.Title,
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
	if v.ScheduledAt != nil {
		ts := v.ScheduledAt.Unix()
		res.ScheduledAt = &ts
	}
	return res
}

func FromDeliverableList(items []*queries.DeliverableView) []*DeliverableResponse {
	res := make([]*DeliverableResponse, len(items))
	for i, it := range items {
		res[i] = FromDeliverableView(it)
	}
	return res
}

type CreateDeliverableResponse struct {
	Deliverable *DeliverableResponse `json:"deliverable"`
	Reconcile   ReconcileResponse    `json:"reconcile"`
}
