package conflict

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyResolved = errors.New("conflict is already resolved")
	ErrNotActive       = errors.New("conflict is not active")
)

// Conflict is the persisted engine-owned record. Terminal rows are never
// mutated; a recurring overlap creates a fresh ACTIVE row instead.
type Conflict struct {
	id                   uuid.UUID
	userID               uuid.UUID
	typ                  Type
	severity             Severity
	targetDealID         uuid.UUID
	conflictingDealID    uuid.UUID
	targetDeliverableID  *uuid.UUID
	overlap              Overlap
	status               Status
	autoResolved         bool
	resolvedAt           *time.Time
	suggestedResolutions []string
	createdAt            time.Time
	updatedAt            time.Time
}

// NewConflict materializes a detected candidate as an ACTIVE row with its
// resolutions attached.
func NewConflict(userID uuid.UUID, cand *Candidate) *Conflict {
	return &Conflict{
		id:                   uuid.New(),
		userID:               userID,
		typ:                  cand.Type,
		severity:             cand.Severity,
		targetDealID:         cand.Target.DealID,
		conflictingDealID:    cand.Conflicting.DealID,
		targetDeliverableID:  cand.TargetDeliverableID,
		overlap:              cand.Overlap,
		status:               StatusActive,
		suggestedResolutions: SuggestResolutions(cand),
	}
}

func ReconstructConflict(
	id, userID uuid.UUID,
	typ Type,
	severity Severity,
	targetDealID, conflictingDealID uuid.UUID,
	targetDeliverableID *uuid.UUID,
	overlap Overlap,
	status Status,
	autoResolved bool,
	resolvedAt *time.Time,
	suggestedResolutions []string,
	createdAt, updatedAt time.Time,
) *Conflict {
	return &Conflict{
		id:                   id,
		userID:               userID,
		typ:                  typ,
		severity:             severity,
		targetDealID:         targetDealID,
		conflictingDealID:    conflictingDealID,
		targetDeliverableID:  targetDeliverableID,
		overlap:              overlap,
		status:               status,
		autoResolved:         autoResolved,
		resolvedAt:           resolvedAt,
		suggestedResolutions: suggestedResolutions,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// MarkResolved is the manual transition; allowed only while ACTIVE.
func (c *Conflict) MarkResolved(now time.Time) error {
	if c.status != StatusActive {
		return ErrAlreadyResolved
	}
	c.status = StatusResolved
	c.resolvedAt = &now
	return nil
}

// AutoResolve is the reconciler's transition when the overlap no longer
// holds.
func (c *Conflict) AutoResolve(now time.Time) error {
	if c.status != StatusActive {
		return ErrNotActive
	}
	c.status = StatusAutoResolved
	c.autoResolved = true
	c.resolvedAt = &now
	return nil
}

// RefreshOverlap updates the overlap metadata while the conflict persists
// across recomputes.
func (c *Conflict) RefreshOverlap(overlap Overlap) error {
	if c.status != StatusActive {
		return ErrNotActive
	}
	c.overlap = overlap
	return nil
}

func (c *Conflict) Key() PairKey {
	return NewPairKey(c.typ, c.targetDealID, c.conflictingDealID, c.targetDeliverableID)
}

func (c *Conflict) IsActive() bool {
	return c.status == StatusActive
}

func (c *Conflict) ID() uuid.UUID                  { return c.id }
func (c *Conflict) UserID() uuid.UUID              { return c.userID }
func (c *Conflict) Type() Type                     { return c.typ }
func (c *Conflict) Severity() Severity             { return c.severity }
func (c *Conflict) TargetDealID() uuid.UUID        { return c.targetDealID }
func (c *Conflict) ConflictingDealID() uuid.UUID   { return c.conflictingDealID }
func (c *Conflict) TargetDeliverableID() *uuid.UUID { return c.targetDeliverableID }
func (c *Conflict) Overlap() Overlap               { return c.overlap }
func (c *Conflict) Status() Status                 { return c.status }
func (c *Conflict) AutoResolved() bool             { return c.autoResolved }
func (c *Conflict) ResolvedAt() *time.Time         { return c.resolvedAt }
func (c *Conflict) SuggestedResolutions() []string { return c.suggestedResolutions }
func (c *Conflict) CreatedAt() time.Time           { return c.createdAt }
func (c *Conflict) UpdatedAt() time.Time           { return c.updatedAt }
