package conflict

import (
	"time"

	"dealdesk/internal/domain/deal"

	"github.com/google/uuid"
)

// Candidate is one detected conflict before persistence: the classified pair
// plus its overlap metadata. Target is the newer deal (display orientation);
// the natural key is canonical regardless.
type Candidate struct {
	Type                Type
	Severity            Severity
	Target              *DealProfile
	Conflicting         *DealProfile
	TargetDeliverableID *uuid.UUID
	Overlap             Overlap
}

func (c *Candidate) Key() PairKey {
	return NewPairKey(c.Type, c.Target.DealID, c.Conflicting.DealID, c.TargetDeliverableID)
}

// orientPair returns (target, conflicting) with the newer deal as target,
// falling back to id order for equal timestamps.
func orientPair(a, b *DealProfile) (*DealProfile, *DealProfile) {
	if a.CreatedAt.After(b.CreatedAt) {
		return a, b
	}
	if b.CreatedAt.After(a.CreatedAt) {
		return b, a
	}
	if a.DealID.String() > b.DealID.String() {
		return a, b
	}
	return b, a
}

// ClassifyPair runs the exclusivity decision table for one deal pair, first
// match wins:
//
//  1. either side's rule matches the other by scope (BRAND/CATEGORY/GLOBAL)
//     with intersecting windows -> EXCLUSIVITY_OVERLAP / BLOCK
//  2. same brand category with intersecting windows while at least one side
//     carries a rule that did not match -> CATEGORY_CONFLICT / WARN
//
// Scheduling collisions are classified separately per deliverable pair.
// Returns nil when the pair does not conflict.
func ClassifyPair(a, b *DealProfile) *Candidate {
	if a.DealID == b.DealID {
		return nil
	}

	// Evaluate both directions in canonical order so the outcome does not
	// depend on argument order.
	low, high := a, b
	if low.DealID.String() > high.DealID.String() {
		low, high = high, low
	}

	for _, dir := range [][2]*DealProfile{{low, high}, {high, low}} {
		ruleSide, otherSide := dir[0], dir[1]
		if ruleSide.Rule == nil {
			continue
		}
		if iv, ok := ruleOverlap(ruleSide.Rule, otherSide); ok {
			target, conflicting := orientPair(a, b)
			ruleDealID := ruleSide.DealID
			return &Candidate{
				Type:        TypeExclusivityOverlap,
				Severity:    SeverityBlock,
				Target:      target,
				Conflicting: conflicting,
				Overlap: Overlap{
					Start:           timePtr(iv.Start),
					End:             endPtr(iv),
					MatchedScope:    ruleSide.Rule.Scope.String(),
					MatchedCategory: matchedCategory(ruleSide.Rule, otherSide),
					MatchedBrandID:  uuidPtr(otherSide.BrandID),
					RuleDealID:      &ruleDealID,
				},
			}
		}
	}

	// Soft signal: same category without an explicit scope match.
	if (a.Rule != nil || b.Rule != nil) && a.BrandCategory == b.BrandCategory {
		if iv, ok := a.Window.Intersect(b.Window); ok {
			target, conflicting := orientPair(a, b)
			return &Candidate{
				Type:        TypeCategoryConflict,
				Severity:    SeverityWarn,
				Target:      target,
				Conflicting: conflicting,
				Overlap: Overlap{
					Start:           timePtr(iv.Start),
					End:             endPtr(iv),
					MatchedCategory: a.BrandCategory,
				},
			}
		}
	}

	return nil
}

func matchedCategory(rule *ExclusivityRule, other *DealProfile) string {
	if rule.Scope == deal.ScopeCategory {
		return rule.Category
	}
	return other.BrandCategory
}

// ScheduledDeliverable is the slice of deliverable state that collision
// detection needs.
type ScheduledDeliverable struct {
	ID          uuid.UUID
	DealID      uuid.UUID
	ScheduledAt time.Time
}

// classifyCollision builds the SCHEDULING_COLLISION candidate for two
// same-day deliverables from different deals. The deliverable with the
// smaller id becomes the key's target deliverable; the other is carried in
// the overlap metadata so both ids stay visible.
func classifyCollision(a, b *DealProfile, da, db ScheduledDeliverable) *Candidate {
	target, conflicting := orientPair(a, b)

	keyDeliverable, otherDeliverable := da, db
	if db.ID.String() < da.ID.String() {
		keyDeliverable, otherDeliverable = db, da
	}

	day := DayKey(keyDeliverable.ScheduledAt)
	targetDeliverableID := keyDeliverable.ID
	otherID := otherDeliverable.ID

	return &Candidate{
		Type:                TypeSchedulingCollision,
		Severity:            SeverityWarn,
		Target:              target,
		Conflicting:         conflicting,
		TargetDeliverableID: &targetDeliverableID,
		Overlap: Overlap{
			Day:                &day,
			OtherDeliverableID: &otherID,
		},
	}
}

// Detect runs the full pairwise detection for one user's portfolio and
// returns the computed conflict set keyed by natural key. Scheduling
// collisions are reported once per deal pair per calendar day; collisions
// covered by a BLOCK overlap on the same pair and day are suppressed.
func Detect(profiles []*DealProfile, deliverables []ScheduledDeliverable) map[PairKey]*Candidate {
	computed := make(map[PairKey]*Candidate)
	byDeal := make(map[uuid.UUID]*DealProfile, len(profiles))
	for _, p := range profiles {
		byDeal[p.DealID] = p
	}

	// Exclusivity and category conflicts.
	blockWindows := make(map[[2]uuid.UUID]Interval)
	for i := 0; i < len(profiles); i++ {
		for j := i + 1; j < len(profiles); j++ {
			cand := ClassifyPair(profiles[i], profiles[j])
			if cand == nil {
				continue
			}
			computed[cand.Key()] = cand
			if cand.Severity == SeverityBlock && cand.Overlap.Start != nil {
				iv := Interval{Start: *cand.Overlap.Start}
				if cand.Overlap.End != nil {
					iv.End = *cand.Overlap.End
				}
				blockWindows[dealPair(cand.Target.DealID, cand.Conflicting.DealID)] = iv
			}
		}
	}

	// Scheduling collisions across deals. Same-day deliverable pairs are
	// grouped per deal pair and calendar day; each group emits exactly one
	// candidate, represented by the pair with the smallest deliverable ids,
	// so the result does not depend on input order or id distribution.
	type pairDay struct {
		pair [2]uuid.UUID
		day  string
	}
	collisions := make(map[pairDay][2]ScheduledDeliverable)
	for i := 0; i < len(deliverables); i++ {
		for j := i + 1; j < len(deliverables); j++ {
			da, db := deliverables[i], deliverables[j]
			if da.DealID == db.DealID || !SameCalendarDay(da.ScheduledAt, db.ScheduledAt) {
				continue
			}
			if byDeal[da.DealID] == nil || byDeal[db.DealID] == nil {
				continue
			}
			if iv, ok := blockWindows[dealPair(da.DealID, db.DealID)]; ok && iv.Contains(da.ScheduledAt.UTC()) {
				// Higher-severity exclusivity conflict already covers this
				// pair on this day.
				continue
			}
			if db.ID.String() < da.ID.String() {
				da, db = db, da
			}
			key := pairDay{pair: dealPair(da.DealID, db.DealID), day: DayKey(da.ScheduledAt)}
			if cur, ok := collisions[key]; ok && !lessDeliverablePair(da, db, cur[0], cur[1]) {
				continue
			}
			collisions[key] = [2]ScheduledDeliverable{da, db}
		}
	}
	for _, pair := range collisions {
		da, db := pair[0], pair[1]
		cand := classifyCollision(byDeal[da.DealID], byDeal[db.DealID], da, db)
		computed[cand.Key()] = cand
	}

	return computed
}

// lessDeliverablePair orders id-sorted deliverable pairs lexicographically.
func lessDeliverablePair(a, b, c, d ScheduledDeliverable) bool {
	if a.ID != c.ID {
		return a.ID.String() < c.ID.String()
	}
	return b.ID.String() < d.ID.String()
}

func dealPair(a, b uuid.UUID) [2]uuid.UUID {
	low, high := orderUUIDs(a, b)
	return [2]uuid.UUID{low, high}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func endPtr(iv Interval) *time.Time {
	if iv.IsOpenEnded() {
		return nil
	}
	end := iv.End
	return &end
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
