package conflict

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeExclusivityOverlap  Type = "EXCLUSIVITY_OVERLAP"
	TypeCategoryConflict    Type = "CATEGORY_CONFLICT"
	TypeSchedulingCollision Type = "SCHEDULING_COLLISION"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeExclusivityOverlap, TypeCategoryConflict, TypeSchedulingCollision:
		return true
	default:
		return false
	}
}

type Severity string

const (
	SeverityWarn  Severity = "WARN"
	SeverityBlock Severity = "BLOCK"
)

func (s Severity) String() string {
	return string(s)
}

// Rank orders severities for list sorting; higher sorts first.
func (s Severity) Rank() int {
	if s == SeverityBlock {
		return 2
	}
	return 1
}

type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusResolved     Status = "RESOLVED"
	StatusAutoResolved Status = "AUTO_RESOLVED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusAutoResolved
}

// Overlap is the free-form metadata persisted with a conflict describing what
// intersected. Interval fields are set for exclusivity/category conflicts,
// Day and OtherDeliverableID for scheduling collisions.
type Overlap struct {
	Start              *time.Time `json:"start,omitempty"`
	End                *time.Time `json:"end,omitempty"`
	Day                *string    `json:"day,omitempty"`
	MatchedScope       string     `json:"matched_scope,omitempty"`
	MatchedCategory    string     `json:"matched_category,omitempty"`
	MatchedBrandID     *uuid.UUID `json:"matched_brand_id,omitempty"`
	RuleDealID         *uuid.UUID `json:"rule_deal_id,omitempty"`
	OtherDeliverableID *uuid.UUID `json:"other_deliverable_id,omitempty"`
}

// PairKey is the natural key of a conflict: type plus the canonically ordered
// deal pair plus the target deliverable (uuid.Nil when none). At most one
// ACTIVE conflict exists per key.
type PairKey struct {
	Type          Type
	DealLow       uuid.UUID
	DealHigh      uuid.UUID
	DeliverableID uuid.UUID
}

func NewPairKey(t Type, dealA, dealB uuid.UUID, deliverableID *uuid.UUID) PairKey {
	low, high := orderUUIDs(dealA, dealB)
	key := PairKey{Type: t, DealLow: low, DealHigh: high}
	if deliverableID != nil {
		key.DeliverableID = *deliverableID
	}
	return key
}

func orderUUIDs(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}
	return b, a
}
