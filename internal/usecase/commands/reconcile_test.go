//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"dealdesk/internal/domain/brand"
	"dealdesk/internal/domain/conflict"
	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/deliverable"
	"dealdesk/internal/infra/db"
	"dealdesk/internal/pkg/clock"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/shared"
	"dealdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory portfolio standing in for the transaction the reconciler runs
// inside. Conflict rows are shared pointers, matching how the repository
// reloads rows within one pass.
type fakeTx struct {
	deals        *fakeDealRepo
	brands       *fakeBrandRepo
	deliverables *fakeDeliverableRepo
	conflicts    *fakeConflictRepo
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		deals:        &fakeDealRepo{},
		brands:       &fakeBrandRepo{},
		deliverables: &fakeDeliverableRepo{},
		conflicts:    &fakeConflictRepo{},
	}
}

func (f *fakeTx) Deals() shared.DealRepository               { return f.deals }
func (f *fakeTx) Brands() shared.BrandRepository             { return f.brands }
func (f *fakeTx) Deliverables() shared.DeliverableRepository { return f.deliverables }
func (f *fakeTx) Conflicts() shared.ConflictRepository       { return f.conflicts }
func (f *fakeTx) Users() shared.UserRepository               { return nil }
func (f *fakeTx) DB() db.DBTX                                { return nil }

type fakeDealRepo struct {
	rows []*deal.Deal
}

func (r *fakeDealRepo) Create(_ context.Context, _ db.DBTX, d *deal.Deal) (uuid.UUID, error) {
	r.rows = append(r.rows, d)
	return d.ID(), nil
}

func (r *fakeDealRepo) Update(_ context.Context, _ db.DBTX, d *deal.Deal) error {
	for i, row := range r.rows {
		if row.ID() == d.ID() {
			r.rows[i] = d
		}
	}
	return nil
}

func (r *fakeDealRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*deal.Deal, error) {
	for _, row := range r.rows {
		if row.ID() == id {
			return row, nil
		}
	}
	return nil, nil
}

func (r *fakeDealRepo) ListByUser(_ context.Context, _ db.DBTX, userID uuid.UUID) ([]*deal.Deal, error) {
	out := make([]*deal.Deal, 0, len(r.rows))
	for _, row := range r.rows {
		if row.UserID() == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeBrandRepo struct {
	rows []*brand.Brand
}

func (r *fakeBrandRepo) Create(_ context.Context, _ db.DBTX, b *brand.Brand) (uuid.UUID, error) {
	r.rows = append(r.rows, b)
	return b.ID(), nil
}

func (r *fakeBrandRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*brand.Brand, error) {
	for _, row := range r.rows {
		if row.ID() == id {
			return row, nil
		}
	}
	return nil, nil
}

func (r *fakeBrandRepo) ListByUser(_ context.Context, _ db.DBTX, userID uuid.UUID) ([]*brand.Brand, error) {
	out := make([]*brand.Brand, 0, len(r.rows))
	for _, row := range r.rows {
		if row.UserID() == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeDeliverableRepo struct {
	scheduled []conflict.ScheduledDeliverable
}

func (r *fakeDeliverableRepo) Create(_ context.Context, _ db.DBTX, _ *deliverable.Deliverable) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (r *fakeDeliverableRepo) Update(_ context.Context, _ db.DBTX, _ *deliverable.Deliverable) error {
	return nil
}

func (r *fakeDeliverableRepo) FindByID(_ context.Context, _ db.DBTX, _ uuid.UUID) (*deliverable.Deliverable, error) {
	return nil, nil
}

func (r *fakeDeliverableRepo) ListScheduledByUser(_ context.Context, _ db.DBTX, _ uuid.UUID) ([]conflict.ScheduledDeliverable, error) {
	return r.scheduled, nil
}

type fakeConflictRepo struct {
	rows      map[uuid.UUID]*conflict.Conflict
	lockCalls int
}

func (r *fakeConflictRepo) AcquirePortfolioLock(_ context.Context, _ db.DBTX, _ uuid.UUID, _ time.Duration) error {
	r.lockCalls++
	return nil
}

func (r *fakeConflictRepo) ListActiveByUser(_ context.Context, _ db.DBTX, userID uuid.UUID) ([]*conflict.Conflict, error) {
	out := make([]*conflict.Conflict, 0, len(r.rows))
	for _, c := range r.rows {
		if c.UserID() == userID && c.IsActive() {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConflictRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*conflict.Conflict, error) {
	return r.rows[id], nil
}

func (r *fakeConflictRepo) Insert(_ context.Context, _ db.DBTX, c *conflict.Conflict) (uuid.UUID, error) {
	if r.rows == nil {
		r.rows = make(map[uuid.UUID]*conflict.Conflict)
	}
	r.rows[c.ID()] = c
	return c.ID(), nil
}

func (r *fakeConflictRepo) RefreshOverlap(_ context.Context, _ db.DBTX, id uuid.UUID, overlap conflict.Overlap) error {
	return r.rows[id].RefreshOverlap(overlap)
}

func (r *fakeConflictRepo) AutoResolve(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	// Domain transition already ran on the shared pointer.
	return nil
}

func (r *fakeConflictRepo) Resolve(_ context.Context, _ db.DBTX, id uuid.UUID) (int64, error) {
	c, ok := r.rows[id]
	if !ok || !c.IsActive() {
		return 0, nil
	}
	if err := c.MarkResolved(time.Now()); err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *fakeConflictRepo) activeKeys() map[conflict.PairKey]*conflict.Conflict {
	out := make(map[conflict.PairKey]*conflict.Conflict)
	for _, c := range r.rows {
		if c.IsActive() {
			out[c.Key()] = c
		}
	}
	return out
}

// scenario wires a user with two brands and two deals into a fakeTx, the
// first deal carrying a category rule that blocks the second.
type scenario struct {
	tx         *fakeTx
	userID     uuid.UUID
	exclusive  *deal.Deal
	rival      *deal.Deal
	reconciler commands.Reconciler
	clk        *clock.MockClock
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	tx := newFakeTx()
	userID := uuid.New()

	acme := builder.NewBrandBuilder().With(func(b *builder.BrandBuilder) {
		b.UserID = userID
		b.Name = "Acme Fitness"
		b.Category = "fitness"
	}).BuildDomain()
	pulse := builder.NewBrandBuilder().With(func(b *builder.BrandBuilder) {
		b.UserID = userID
		b.Name = "Pulse Athletics"
		b.Category = "fitness"
	}).BuildDomain()
	tx.brands.rows = append(tx.brands.rows, acme, pulse)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	exclusive, err := builder.NewDealBuilder().With(func(d *builder.DealBuilder) {
		d.UserID = userID
		d.BrandID = acme.ID()
		d.CreatedAt = start
	}).WithClause(deal.ScopeCategory, "fitness", start, start.AddDate(0, 1, 0)).BuildDomain()
	require.NoError(t, err)

	rival, err := builder.NewDealBuilder().With(func(d *builder.DealBuilder) {
		d.UserID = userID
		d.BrandID = pulse.ID()
		d.Title = "Rival campaign"
		d.CreatedAt = start.AddDate(0, 0, 1)
	}).BuildDomain()
	require.NoError(t, err)

	tx.deals.rows = append(tx.deals.rows, exclusive, rival)

	clk := clock.NewMockClock(start.AddDate(0, 0, 10))
	return &scenario{
		tx:         tx,
		userID:     userID,
		exclusive:  exclusive,
		rival:      rival,
		reconciler: commands.NewReconciler(clk, 3*time.Second),
		clk:        clk,
	}
}

func TestReconciler_RecomputeForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("first pass inserts, second pass refreshes in place", func(t *testing.T) {
		s := newScenario(t)

		stats, err := s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Inserted)
		assert.Equal(t, 0, stats.Refreshed)
		assert.Equal(t, 0, stats.AutoResolved)

		active := s.tx.conflicts.activeKeys()
		require.Len(t, active, 1)
		var firstID uuid.UUID
		for _, c := range active {
			firstID = c.ID()
			assert.Equal(t, conflict.TypeExclusivityOverlap, c.Type())
		}

		stats, err = s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Inserted)
		assert.Equal(t, 1, stats.Refreshed)
		assert.Equal(t, 0, stats.AutoResolved)

		active = s.tx.conflicts.activeKeys()
		require.Len(t, active, 1)
		for _, c := range active {
			assert.Equal(t, firstID, c.ID())
		}
		assert.Equal(t, 2, s.tx.conflicts.lockCalls)
	})

	t.Run("cleared clause auto-resolves the stored conflict", func(t *testing.T) {
		s := newScenario(t)

		_, err := s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)
		require.Len(t, s.tx.conflicts.activeKeys(), 1)

		s.exclusive.ReplaceExclusivity(nil)

		stats, err := s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.AutoResolved)
		assert.Empty(t, s.tx.conflicts.activeKeys())

		for _, c := range s.tx.conflicts.rows {
			assert.Equal(t, conflict.StatusAutoResolved, c.Status())
			assert.True(t, c.AutoResolved())
			require.NotNil(t, c.ResolvedAt())
			assert.True(t, c.ResolvedAt().Equal(s.clk.Now()))
		}
	})

	t.Run("cancelled deals drop out of detection", func(t *testing.T) {
		s := newScenario(t)

		_, err := s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)

		require.NoError(t, s.exclusive.Cancel())

		stats, err := s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.AutoResolved)
		assert.Empty(t, s.tx.conflicts.activeKeys())
	})

	t.Run("manually resolved conflicts are left alone", func(t *testing.T) {
		s := newScenario(t)

		_, err := s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)

		for id := range s.tx.conflicts.rows {
			affected, err := s.tx.conflicts.Resolve(ctx, nil, id)
			require.NoError(t, err)
			require.EqualValues(t, 1, affected)
		}

		// The overlap still holds, so a fresh ACTIVE row appears; the
		// resolved one stays terminal.
		stats, err := s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Inserted)
		assert.Len(t, s.tx.conflicts.rows, 2)
		assert.Len(t, s.tx.conflicts.activeKeys(), 1)
	})
}

func TestReconciler_RecomputeForDeal(t *testing.T) {
	ctx := context.Background()

	t.Run("scoped pass only touches pairs involving the deal", func(t *testing.T) {
		s := newScenario(t)

		// Unrelated scheduling collision between two other deals.
		tea := builder.NewBrandBuilder().With(func(b *builder.BrandBuilder) {
			b.UserID = s.userID
			b.Name = "Quiet Tea Co"
			b.Category = "beverages"
		}).BuildDomain()
		coffee := builder.NewBrandBuilder().With(func(b *builder.BrandBuilder) {
			b.UserID = s.userID
			b.Name = "Morning Roast"
			b.Category = "coffee"
		}).BuildDomain()
		s.tx.brands.rows = append(s.tx.brands.rows, tea, coffee)

		teaDeal, err := builder.NewDealBuilder().With(func(d *builder.DealBuilder) {
			d.UserID = s.userID
			d.BrandID = tea.ID()
			d.Title = "Tea launch"
		}).BuildDomain()
		require.NoError(t, err)
		coffeeDeal, err := builder.NewDealBuilder().With(func(d *builder.DealBuilder) {
			d.UserID = s.userID
			d.BrandID = coffee.ID()
			d.Title = "Coffee launch"
		}).BuildDomain()
		require.NoError(t, err)
		s.tx.deals.rows = append(s.tx.deals.rows, teaDeal, coffeeDeal)

		launch := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
		s.tx.deliverables.scheduled = []conflict.ScheduledDeliverable{
			{ID: uuid.New(), DealID: teaDeal.ID(), ScheduledAt: launch},
			{ID: uuid.New(), DealID: coffeeDeal.ID(), ScheduledAt: launch.Add(4 * time.Hour)},
		}

		stats, err := s.reconciler.RecomputeForDeal(ctx, s.tx, s.userID, s.rival.ID())
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Inserted)

		// Only the exclusivity pair involving the scoped deal was written.
		active := s.tx.conflicts.activeKeys()
		require.Len(t, active, 1)
		for key := range active {
			assert.Equal(t, conflict.TypeExclusivityOverlap, key.Type)
		}

		// A full pass then picks up the collision.
		stats, err = s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Inserted)
		assert.Equal(t, 1, stats.Refreshed)
		assert.Len(t, s.tx.conflicts.activeKeys(), 2)
	})

	t.Run("scoped pass never auto-resolves unrelated conflicts", func(t *testing.T) {
		s := newScenario(t)

		_, err := s.reconciler.RecomputeForUser(ctx, s.tx, s.userID)
		require.NoError(t, err)
		require.Len(t, s.tx.conflicts.activeKeys(), 1)

		// Third deal with no conflicts; clearing the clause on a pass scoped
		// to it must not flip the exclusive/rival pair.
		tea := builder.NewBrandBuilder().With(func(b *builder.BrandBuilder) {
			b.UserID = s.userID
			b.Name = "Quiet Tea Co"
			b.Category = "beverages"
		}).BuildDomain()
		s.tx.brands.rows = append(s.tx.brands.rows, tea)
		teaDeal, err := builder.NewDealBuilder().With(func(d *builder.DealBuilder) {
			d.UserID = s.userID
			d.BrandID = tea.ID()
			d.Title = "Tea launch"
		}).BuildDomain()
		require.NoError(t, err)
		s.tx.deals.rows = append(s.tx.deals.rows, teaDeal)

		s.exclusive.ReplaceExclusivity(nil)

		stats, err := s.reconciler.RecomputeForDeal(ctx, s.tx, s.userID, teaDeal.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Inserted)
		assert.Equal(t, 0, stats.AutoResolved)
		// Stale but out of scope: the full pass is responsible for it.
		assert.Len(t, s.tx.conflicts.activeKeys(), 1)
	})
}
