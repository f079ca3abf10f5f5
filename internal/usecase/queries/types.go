package queries

import (
	"time"

	"dealdesk/internal/domain/conflict"

	"github.com/google/uuid"
)

// ConflictView represents read-optimized conflict data joined with the brand
// and deal names a creator needs to act on it
type ConflictView struct {
	ID                       uuid.UUID        `json:"id"`
	Type                     string           `json:"type"`
	Severity                 string           `json:"severity"`
	Status                   string           `json:"status"`
	TargetDealID             uuid.UUID        `json:"target_deal_id"`
	TargetDealTitle          string           `json:"target_deal_title"`
	TargetBrandName          string           `json:"target_brand_name"`
	TargetDeliverableID      *uuid.UUID       `json:"target_deliverable_id,omitempty"`
	ConflictingRuleDealID    uuid.UUID        `json:"conflicting_rule_deal_id"`
	ConflictingRuleDealTitle string           `json:"conflicting_rule_deal_title"`
	ConflictingRuleBrandName string           `json:"conflicting_rule_brand_name"`
	Overlap                  conflict.Overlap `json:"overlap"`
	AutoResolved             bool             `json:"auto_resolved"`
	SuggestedResolutions     []string         `json:"suggested_resolutions"`
	ResolvedAt               *time.Time       `json:"resolved_at,omitempty"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
}

type ConflictListItem struct {
	ID                       uuid.UUID        `json:"id"`
	Type                     string           `json:"type"`
	Severity                 string           `json:"severity"`
	Status                   string           `json:"status"`
	TargetDealID             uuid.UUID        `json:"target_deal_id"`
	TargetDealTitle          string           `json:"target_deal_title"`
	TargetBrandName          string           `json:"target_brand_name"`
	TargetDeliverableID      *uuid.UUID       `json:"target_deliverable_id,omitempty"`
	ConflictingRuleDealID    uuid.UUID        `json:"conflicting_rule_deal_id"`
	ConflictingRuleDealTitle string           `json:"conflicting_rule_deal_title"`
	ConflictingRuleBrandName string           `json:"conflicting_rule_brand_name"`
	Overlap                  conflict.Overlap `json:"overlap"`
	SuggestedResolutions     []string         `json:"suggested_resolutions"`
	AutoResolved             bool             `json:"auto_resolved"`
	CreatedAt                time.Time        `json:"created_at"`
}

// ConflictSummary aggregates active conflict counts for the portfolio dashboard
type ConflictSummary struct {
	ActiveCount int64 `json:"active_count"`
	BlockCount  int64 `json:"block_count"`
	WarnCount   int64 `json:"warn_count"`
}

type DealView struct {
	ID                   uuid.UUID  `json:"id"`
	BrandID              uuid.UUID  `json:"brand_id"`
	BrandName            string     `json:"brand_name"`
	Title                string     `json:"title"`
	Status               string     `json:"status"`
	AmountCents          int64      `json:"amount_cents"`
	Currency             string     `json:"currency"`
	ExclusivityScope     *string    `json:"exclusivity_scope,omitempty"`
	ExclusivityCategory  *string    `json:"exclusivity_category,omitempty"`
	ExclusivityStartDate *time.Time `json:"exclusivity_start_date,omitempty"`
	ExclusivityEndDate   *time.Time `json:"exclusivity_end_date,omitempty"`
	ActiveConflictCount  int64      `json:"active_conflict_count"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type DealListItem struct {
	ID                  uuid.UUID `json:"id"`
	BrandName           string    `json:"brand_name"`
	Title               string    `json:"title"`
	Status              string    `json:"status"`
	AmountCents         int64     `json:"amount_cents"`
	Currency            string    `json:"currency"`
	ActiveConflictCount int64     `json:"active_conflict_count"`
	CreatedAt           time.Time `json:"created_at"`
}

type BrandView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeliverableView struct {
	ID          uuid.UUID  `json:"id"`
	DealID      uuid.UUID  `json:"deal_id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
