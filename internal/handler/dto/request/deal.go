package request

import (
	"time"

	"github.com/google/uuid"
)

type ExclusivityClauseRequest struct {
	Scope              string      `json:"scope" binding:"required,oneof=CATEGORY BRAND GLOBAL"`
	Category           string      `json:"category" binding:"omitempty,max=100"`
	CompetitorBrandIDs []uuid.UUID `json:"competitor_brand_ids" binding:"omitempty,max=100"`
	StartDate          time.Time   `json:"start_date" binding:"required"`
	EndDate            time.Time   `json:"end_date" binding:"required"`
}

type CreateDealRequest struct {
	BrandID     uuid.UUID                 `json:"brand_id" binding:"required"`
	Title       string                    `json:"title" binding:"required,max=200"`
	AmountCents int64                     `json:"amount_cents" binding:"gte=0"`
	Currency    string                    `json:"currency" binding:"required,len=3"`
	Exclusivity *ExclusivityClauseRequest `json:"exclusivity" binding:"omitempty"`
}

type UpdateDealRequest struct {
	Title            *string                   `json:"title" binding:"omitempty,max=200"`
	Status           *string                   `json:"status" binding:"omitempty,oneof=INBOUND NEGOTIATING AGREED PAID CANCELLED"`
	Exclusivity      *ExclusivityClauseRequest `json:"exclusivity" binding:"omitempty"`
	ClearExclusivity bool                      `json:"clear_exclusivity"`
}
