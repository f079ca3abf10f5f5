package commands

import (
	"context"
	"log/slog"
	"time"

	"dealdesk/internal/domain/brand"
	"dealdesk/internal/domain/conflict"
	"dealdesk/internal/pkg/clock"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReconcileStats reports what a recompute pass changed.
type ReconcileStats struct {
	Inserted     int
	Refreshed    int
	AutoResolved int
}

// Reconciler recomputes the stored conflict set from the current portfolio
// state. It must run inside the caller's transaction, after any mutation has
// been persisted, so detection sees the post-mutation rows.
type Reconciler interface {
	RecomputeForUser(ctx context.Context, tx shared.Tx, userID uuid.UUID) (*ReconcileStats, error)
	RecomputeForDeal(ctx context.Context, tx shared.Tx, userID, dealID uuid.UUID) (*ReconcileStats, error)
}

type reconcilerImpl struct {
	clock       clock.Clock
	lockTimeout time.Duration
}

func NewReconciler(clk clock.Clock, lockTimeout time.Duration) Reconciler {
	return &reconcilerImpl{clock: clk, lockTimeout: lockTimeout}
}

func (r *reconcilerImpl) RecomputeForUser(ctx context.Context, tx shared.Tx, userID uuid.UUID) (*ReconcileStats, error) {
	return r.recompute(ctx, tx, userID, nil)
}

func (r *reconcilerImpl) RecomputeForDeal(ctx context.Context, tx shared.Tx, userID, dealID uuid.UUID) (*ReconcileStats, error) {
	return r.recompute(ctx, tx, userID, &dealID)
}

// recompute diffs the freshly detected conflict set against the stored ACTIVE
// set, keyed by each conflict's natural pair key:
//   - present in both: refresh overlap metadata in place, id is stable
//   - detected but not stored: insert as a new ACTIVE conflict
//   - stored but no longer detected: transition to AUTO_RESOLVED
//
// When scope is non-nil only pairs involving that deal are touched, so an
// unrelated conflict can never flip state from an incremental pass.
func (r *reconcilerImpl) recompute(ctx context.Context, tx shared.Tx, userID uuid.UUID, scope *uuid.UUID) (*ReconcileStats, error) {
	if err := tx.Conflicts().AcquirePortfolioLock(ctx, tx.DB(), userID, r.lockTimeout); err != nil {
		return nil, err
	}

	profiles, keep, err := r.loadProfiles(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	deliverables, err := tx.Deliverables().ListScheduledByUser(ctx, tx.DB(), userID)
	if err != nil {
		return nil, err
	}
	scheduled := make([]conflict.ScheduledDeliverable, 0, len(deliverables))
	for _, d := range deliverables {
		if keep[d.DealID] {
			scheduled = append(scheduled, d)
		}
	}

	computed := conflict.Detect(profiles, scheduled)

	stored, err := tx.Conflicts().ListActiveByUser(ctx, tx.DB(), userID)
	if err != nil {
		return nil, err
	}

	stats := &ReconcileStats{}
	now := r.clock.Now()

	storedByKey := make(map[conflict.PairKey]*conflict.Conflict, len(stored))
	for _, c := range stored {
		storedByKey[c.Key()] = c
	}

	for key, cand := range computed {
		if scope != nil && !keyInvolves(key, *scope) {
			continue
		}
		if existing, ok := storedByKey[key]; ok {
			if err := tx.Conflicts().RefreshOverlap(ctx, tx.DB(), existing.ID(), cand.Overlap); err != nil {
				return nil, err
			}
			stats.Refreshed++
			continue
		}
		if _, err := tx.Conflicts().Insert(ctx, tx.DB(), conflict.NewConflict(userID, cand)); err != nil {
			return nil, err
		}
		stats.Inserted++
	}

	for key, existing := range storedByKey {
		if scope != nil && !keyInvolves(key, *scope) {
			continue
		}
		if _, ok := computed[key]; ok {
			continue
		}
		if err := existing.AutoResolve(now); err != nil {
			return nil, err
		}
		if err := tx.Conflicts().AutoResolve(ctx, tx.DB(), existing.ID()); err != nil {
			return nil, err
		}
		stats.AutoResolved++
	}

	return stats, nil
}

// loadProfiles assembles detection input for every non-cancelled deal. A deal
// whose clause no longer validates against its brand is skipped with a
// warning rather than failing the whole pass.
func (r *reconcilerImpl) loadProfiles(ctx context.Context, tx shared.Tx, userID uuid.UUID) ([]*conflict.DealProfile, map[uuid.UUID]bool, error) {
	deals, err := tx.Deals().ListByUser(ctx, tx.DB(), userID)
	if err != nil {
		return nil, nil, err
	}
	brands, err := tx.Brands().ListByUser(ctx, tx.DB(), userID)
	if err != nil {
		return nil, nil, err
	}
	brandByID := make(map[uuid.UUID]*brand.Brand, len(brands))
	for _, b := range brands {
		brandByID[b.ID()] = b
	}

	profiles := make([]*conflict.DealProfile, 0, len(deals))
	keep := make(map[uuid.UUID]bool, len(deals))
	for _, d := range deals {
		if d.IsCancelled() {
			continue
		}
		b, ok := brandByID[d.BrandID()]
		if !ok {
			slog.Warn("deal references unknown brand, skipping", "deal_id", d.ID(), "brand_id", d.BrandID())
			continue
		}
		p, perr := conflict.NewDealProfile(d, b)
		if perr != nil {
			slog.Warn("deal excluded from conflict detection", "deal_id", d.ID(), "error", perr.Error())
			continue
		}
		profiles = append(profiles, p)
		keep[d.ID()] = true
	}
	return profiles, keep, nil
}

func keyInvolves(key conflict.PairKey, dealID uuid.UUID) bool {
	return key.DealLow == dealID || key.DealHigh == dealID
}
