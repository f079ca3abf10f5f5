package commands

import (
	"context"

	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/clock"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrConflictNotFound        = errs.New("conflict not found")
	ErrConflictAlreadyResolved = errs.New("conflict already resolved")
)

type ConflictCommands interface {
	// ResolveConflict marks an ACTIVE conflict as manually resolved. A
	// resolved conflict stays resolved even if a later recompute detects the
	// same pair again; reconciliation then creates a fresh ACTIVE row.
	ResolveConflict(ctx context.Context, conflictID uuid.UUID, userID uuid.UUID) error

	// Recompute runs a full reconciliation pass over one user's portfolio.
	// Admin-only backfill; the per-deal passes on the write paths keep the
	// hot path incremental.
	Recompute(ctx context.Context, targetUserID uuid.UUID) (*ReconcileStats, error)
}

type conflictCommandsImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	reconciler Reconciler
}

func NewConflictCommands(uow shared.UnitOfWork, clk clock.Clock, reconciler Reconciler) ConflictCommands {
	return &conflictCommandsImpl{uow: uow, clock: clk, reconciler: reconciler}
}

func (uc *conflictCommandsImpl) ResolveConflict(ctx context.Context, conflictID uuid.UUID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Conflicts().FindByID(ctx, tx.DB(), conflictID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrConflictNotFound
			}
			return derr
		}
		if c.UserID() != userID {
			return ErrConflictNotFound
		}
		if derr = c.MarkResolved(uc.clock.Now()); derr != nil {
			return ErrConflictAlreadyResolved
		}

		affected, derr := tx.Conflicts().Resolve(ctx, tx.DB(), conflictID)
		if derr != nil {
			return derr
		}
		// Zero rows means a concurrent pass already transitioned it.
		if affected == 0 {
			return ErrConflictAlreadyResolved
		}
		return nil
	})
}

func (uc *conflictCommandsImpl) Recompute(ctx context.Context, targetUserID uuid.UUID) (*ReconcileStats, error) {
	var stats *ReconcileStats
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		stats, derr = uc.reconciler.RecomputeForUser(ctx, tx, targetUserID)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
