//go:build unit || e2e

package builder

import (
	"time"

	domconflict "dealdesk/internal/domain/conflict"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConflictBuilder struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Type                domconflict.Type
	Severity            domconflict.Severity
	Status              domconflict.Status
	TargetDealID        uuid.UUID
	ConflictingDealID   uuid.UUID
	TargetDeliverableID *uuid.UUID
	Overlap             domconflict.Overlap
	AutoResolved        bool
	ResolvedAt          *time.Time
	Suggestions         []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewConflictBuilder() *ConflictBuilder {
	now := time.Now()
	start := now.AddDate(0, 0, -7)
	end := now.AddDate(0, 1, 0)
	return &ConflictBuilder{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		Type:              domconflict.TypeExclusivityOverlap,
		Severity:          domconflict.SeverityBlock,
		Status:            domconflict.StatusActive,
		TargetDealID:      uuid.New(),
		ConflictingDealID: uuid.New(),
		Overlap: domconflict.Overlap{
			Start:        &start,
			End:          &end,
			MatchedScope: "CATEGORY",
		},
		Suggestions: []string{"Request an exclusivity carve-out from Acme Fitness"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (c *ConflictBuilder) With(mutate func(*ConflictBuilder)) *ConflictBuilder {
	mutate(c)
	return c
}

func (c *ConflictBuilder) BuildDomain() *domconflict.Conflict {
	return domconflict.ReconstructConflict(
		c.ID, c.UserID,
		c.Type, c.Severity,
		c.TargetDealID, c.ConflictingDealID, c.TargetDeliverableID,
		c.Overlap, c.Status, c.AutoResolved, c.ResolvedAt,
		c.Suggestions, c.CreatedAt, c.UpdatedAt,
	)
}

func (c *ConflictBuilder) BuildViewQuery() *queries.ConflictView {
	return &queries.ConflictView{
		ID:                       c.ID,
		Type:                     c.Type.String(),
		Severity:                 c.Severity.String(),
		Status:                   c.Status.String(),
		TargetDealID:             c.TargetDealID,
		TargetDealTitle:          "Spring campaign",
		TargetBrandName:          "Acme Fitness",
		TargetDeliverableID:      c.TargetDeliverableID,
		ConflictingRuleDealID:    c.ConflictingDealID,
		ConflictingRuleDealTitle: "Winter campaign",
		ConflictingRuleBrandName: "Pulse Athletics",
		Overlap:                  c.Overlap,
		AutoResolved:             c.AutoResolved,
		SuggestedResolutions:     c.Suggestions,
		ResolvedAt:               c.ResolvedAt,
		CreatedAt:                c.CreatedAt,
		UpdatedAt:                c.UpdatedAt,
	}
}

func (c *ConflictBuilder) BuildListItemQuery() queries.ConflictListItem {
	return queries.ConflictListItem{
		ID:                       c.ID,
		Type:                     c.Type.String(),
		Severity:                 c.Severity.String(),
		Status:                   c.Status.String(),
		TargetDealID:             c.TargetDealID,
		TargetDealTitle:          "Spring campaign",
		TargetBrandName:          "Acme Fitness",
		TargetDeliverableID:      c.TargetDeliverableID,
		ConflictingRuleDealID:    c.ConflictingDealID,
		ConflictingRuleDealTitle: "Winter campaign",
		ConflictingRuleBrandName: "Pulse Athletics",
		Overlap:                  c.Overlap,
		SuggestedResolutions:     c.Suggestions,
		AutoResolved:             c.AutoResolved,
		CreatedAt:                c.CreatedAt,
	}
}
