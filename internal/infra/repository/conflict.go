package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dealdesk/internal/domain/conflict"
	"dealdesk/internal/infra"
	"dealdesk/internal/infra/db"

	"github.com/google/uuid"
)

const conflictColumns = `id, user_id, type, severity, target_deal_id, conflicting_deal_id,
	target_deliverable_id, overlap, status, auto_resolved, resolved_at,
	suggested_resolutions, created_at, updated_at`

type ConflictRepository struct{}

func NewConflictRepository() *ConflictRepository {
	return &ConflictRepository{}
}

// AcquirePortfolioLock serializes reconciliation per creator. The advisory
// lock is transaction-scoped, so release is implicit at commit or rollback.
func (r *ConflictRepository) AcquirePortfolioLock(ctx context.Context, tx db.DBTX, userID uuid.UUID, timeout time.Duration) error {
	// SET LOCAL does not accept bind parameters.
	setTimeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeout.Milliseconds())
	if _, err := tx.Exec(ctx, setTimeout); err != nil {
		return infra.WrapRepoErr("failed to set lock timeout", err)
	}
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, userID.String()); err != nil {
		return infra.WrapRepoErr("failed to acquire portfolio lock", err)
	}
	return nil
}

func (r *ConflictRepository) Insert(ctx context.Context, tx db.DBTX, c *conflict.Conflict) (uuid.UUID, error) {
	const query = `
		INSERT INTO conflicts (
			id, user_id, type, severity, target_deal_id, conflicting_deal_id,
			target_deliverable_id, overlap, status, auto_resolved, resolved_at,
			suggested_resolutions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	overlap, err := json.Marshal(c.Overlap())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to marshal overlap", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, query,
		c.ID(), c.UserID(), c.Type().String(), c.Severity().String(),
		c.TargetDealID(), c.ConflictingDealID(), c.TargetDeliverableID(),
		overlap, c.Status().String(), c.AutoResolved(), c.ResolvedAt(),
		c.SuggestedResolutions(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert conflict", err)
	}
	return id, nil
}

func (r *ConflictRepository) RefreshOverlap(ctx context.Context, tx db.DBTX, id uuid.UUID, overlap conflict.Overlap) error {
	const query = `
		UPDATE conflicts
		SET overlap = $2, updated_at = now()
		WHERE id = $1 AND status = 'ACTIVE'`

	payload, err := json.Marshal(overlap)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal overlap", err)
	}
	if _, err := tx.Exec(ctx, query, id, payload); err != nil {
		return infra.WrapRepoErr("failed to refresh conflict overlap", err)
	}
	return nil
}

func (r *ConflictRepository) AutoResolve(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE conflicts
		SET status = 'AUTO_RESOLVED', auto_resolved = TRUE, resolved_at = now(), updated_at = now()
		WHERE id = $1 AND status = 'ACTIVE'`

	if _, err := tx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to auto-resolve conflict", err)
	}
	return nil
}

func (r *ConflictRepository) Resolve(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	const query = `
		UPDATE conflicts
		SET status = 'RESOLVED', resolved_at = now(), updated_at = now()
		WHERE id = $1 AND status = 'ACTIVE'`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to resolve conflict", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ConflictRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*conflict.Conflict, error) {
	query := `SELECT ` + conflictColumns + ` FROM conflicts WHERE id = $1`

	c, err := scanConflict(tx.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("conflict not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find conflict by id", err)
	}
	return c, nil
}

func (r *ConflictRepository) ListActiveByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]*conflict.Conflict, error) {
	query := `SELECT ` + conflictColumns + ` FROM conflicts WHERE user_id = $1 AND status = 'ACTIVE'`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active conflicts", err)
	}
	defer rows.Close()

	var conflicts []*conflict.Conflict
	for rows.Next() {
		c, serr := scanConflict(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan conflict row", serr)
		}
		conflicts = append(conflicts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate conflict rows", err)
	}
	return conflicts, nil
}

func scanConflict(row rowScanner) (*conflict.Conflict, error) {
	var (
		id, userID                     uuid.UUID
		typ, severity                  string
		targetDealID, conflictingDealID uuid.UUID
		targetDeliverableID            *uuid.UUID
		overlapRaw                     []byte
		status                         string
		autoResolved                   bool
		resolvedAt                     *time.Time
		suggestions                    []string
		createdAt, updatedAt           time.Time
	)
	if err := row.Scan(
		&id, &userID, &typ, &severity, &targetDealID, &conflictingDealID,
		&targetDeliverableID, &overlapRaw, &status, &autoResolved, &resolvedAt,
		&suggestions, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var overlap conflict.Overlap
	if len(overlapRaw) > 0 {
		if err := json.Unmarshal(overlapRaw, &overlap); err != nil {
			return nil, err
		}
	}
	return conflict.ReconstructConflict(
		id, userID, conflict.Type(typ), conflict.Severity(severity),
		targetDealID, conflictingDealID, targetDeliverableID,
		overlap, conflict.Status(status), autoResolved, resolvedAt,
		suggestions, createdAt, updatedAt,
	), nil
}
