//go:build unit

package conflict_test

import (
	"testing"
	"time"

	"dealdesk/internal/domain/conflict"
	"dealdesk/internal/domain/deal"
	"dealdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(d int, hour int) time.Time {
	return day(d).Add(time.Duration(hour) * time.Hour)
}

func scheduled(dealID uuid.UUID, when time.Time) conflict.ScheduledDeliverable {
	return conflict.ScheduledDeliverable{ID: uuid.New(), DealID: dealID, ScheduledAt: when}
}

func scheduledID(id string, dealID uuid.UUID, when time.Time) conflict.ScheduledDeliverable {
	return conflict.ScheduledDeliverable{ID: uuid.MustParse(id), DealID: dealID, ScheduledAt: when}
}

func TestDetect(t *testing.T) {
	p := newPortfolio()

	t.Run("pairwise detection over a portfolio", func(t *testing.T) {
		exclusive := p.deal(t, "Acme Fitness", "fitness", day(0), func(d *builder.DealBuilder) {
			d.WithClause(deal.ScopeCategory, "fitness", day(0), day(30))
		})
		rival := p.deal(t, "Pulse Athletics", "fitness", day(1), nil)
		unrelated := p.deal(t, "Quiet Tea Co", "beverages", day(2), nil)

		computed := conflict.Detect([]*conflict.DealProfile{exclusive, rival, unrelated}, nil)

		require.Len(t, computed, 1)
		cand, ok := computed[conflict.NewPairKey(conflict.TypeExclusivityOverlap, exclusive.DealID, rival.DealID, nil)]
		require.True(t, ok)
		assert.Equal(t, conflict.SeverityBlock, cand.Severity)
	})

	t.Run("same-day deliverables across deals collide", func(t *testing.T) {
		a := p.deal(t, "Acme Fitness", "fitness", day(0), nil)
		b := p.deal(t, "Quiet Tea Co", "beverages", day(1), nil)

		da := scheduledID("00000000-0000-0000-0000-000000000001", a.DealID, at(10, 9))
		sameDay := scheduledID("00000000-0000-0000-0000-000000000002", a.DealID, at(10, 12))
		db := scheduledID("00000000-0000-0000-0000-000000000003", b.DealID, at(10, 18))
		otherDay := scheduled(b.DealID, at(11, 9))

		computed := conflict.Detect(
			[]*conflict.DealProfile{a, b},
			[]conflict.ScheduledDeliverable{da, db, sameDay, otherDay},
		)

		// da/db and sameDay/db both collide on the same day for the same
		// deal pair, so one row surfaces; the smallest id pair represents
		// the group. otherDay is a different day.
		require.Len(t, computed, 1)
		for _, cand := range computed {
			assert.Equal(t, conflict.TypeSchedulingCollision, cand.Type)
			assert.Equal(t, conflict.SeverityWarn, cand.Severity)
			require.NotNil(t, cand.Overlap.Day)
			assert.Equal(t, "2026-03-11", *cand.Overlap.Day)
			require.NotNil(t, cand.TargetDeliverableID)
			require.NotNil(t, cand.Overlap.OtherDeliverableID)
			assert.Equal(t, da.ID, *cand.TargetDeliverableID)
			assert.Equal(t, db.ID, *cand.Overlap.OtherDeliverableID)
		}

		// Input order does not change the emitted key.
		reordered := conflict.Detect(
			[]*conflict.DealProfile{b, a},
			[]conflict.ScheduledDeliverable{otherDay, db, sameDay, da},
		)
		require.Len(t, reordered, 1)
		for key := range computed {
			_, ok := reordered[key]
			assert.True(t, ok)
		}
	})

	t.Run("block overlap suppresses the same-pair collision", func(t *testing.T) {
		exclusive := p.deal(t, "Acme Fitness", "fitness", day(0), func(d *builder.DealBuilder) {
			d.WithClause(deal.ScopeCategory, "fitness", day(0), day(30))
		})
		rival := p.deal(t, "Pulse Athletics", "fitness", day(1), nil)

		computed := conflict.Detect(
			[]*conflict.DealProfile{exclusive, rival},
			[]conflict.ScheduledDeliverable{
				scheduled(exclusive.DealID, at(10, 9)),
				scheduled(rival.DealID, at(10, 18)),
			},
		)

		require.Len(t, computed, 1)
		for _, cand := range computed {
			assert.Equal(t, conflict.TypeExclusivityOverlap, cand.Type)
		}
	})

	t.Run("collision outside the block window survives", func(t *testing.T) {
		exclusive := p.deal(t, "Acme Fitness", "fitness", day(0), func(d *builder.DealBuilder) {
			d.WithClause(deal.ScopeCategory, "fitness", day(0), day(30))
		})
		rival := p.deal(t, "Pulse Athletics", "fitness", day(1), nil)

		computed := conflict.Detect(
			[]*conflict.DealProfile{exclusive, rival},
			[]conflict.ScheduledDeliverable{
				scheduled(exclusive.DealID, at(40, 9)),
				scheduled(rival.DealID, at(40, 18)),
			},
		)

		types := make(map[conflict.Type]int)
		for _, cand := range computed {
			types[cand.Type]++
		}
		assert.Equal(t, 1, types[conflict.TypeExclusivityOverlap])
		assert.Equal(t, 1, types[conflict.TypeSchedulingCollision])
	})

	t.Run("deliverables of unknown deals are ignored", func(t *testing.T) {
		a := p.deal(t, "Acme Fitness", "fitness", day(0), nil)

		computed := conflict.Detect(
			[]*conflict.DealProfile{a},
			[]conflict.ScheduledDeliverable{
				scheduled(a.DealID, at(10, 9)),
				scheduled(uuid.New(), at(10, 18)),
			},
		)
		assert.Empty(t, computed)
	})

	t.Run("rerun over the same input yields the same keys", func(t *testing.T) {
		exclusive := p.deal(t, "Acme Fitness", "fitness", day(0), func(d *builder.DealBuilder) {
			d.WithClause(deal.ScopeGlobal, "", day(0), day(30))
		})
		rival := p.deal(t, "Pulse Athletics", "fitness", day(1), nil)
		profiles := []*conflict.DealProfile{exclusive, rival}

		first := conflict.Detect(profiles, nil)
		second := conflict.Detect(profiles, nil)

		require.Equal(t, len(first), len(second))
		for key := range first {
			_, ok := second[key]
			assert.True(t, ok)
		}
	})
}
