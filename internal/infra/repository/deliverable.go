package repository

import (
	"context"
	"time"

	"dealdesk/internal/domain/conflict"
	"dealdesk/internal/domain/deliverable"
	"dealdesk/internal/infra"
	"dealdesk/internal/infra/db"

	"github.com/google/uuid"
)

type DeliverableRepository struct{}

func NewDeliverableRepository() *DeliverableRepository {
	return &DeliverableRepository{}
}

func (r *DeliverableRepository) Create(ctx context.Context, tx db.DBTX, d *deliverable.Deliverable) (uuid.UUID, error) {
	const query = `
		INSERT INTO deliverables (id, deal_id, title, scheduled_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		d.ID(), d.DealID(), d.Title(), d.ScheduledAt(), d.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create deliverable", err)
	}
	return id, nil
}

func (r *DeliverableRepository) Update(ctx context.Context, tx db.DBTX, d *deliverable.Deliverable) error {
	const query = `
		UPDATE deliverables
		SET title = $2, scheduled_at = $3, status = $4, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, d.ID(), d.Title(), d.ScheduledAt(), d.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update deliverable", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("deliverable not found for update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DeliverableRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*deliverable.Deliverable, error) {
	const query = `
		SELECT id, deal_id, title, scheduled_at, status, created_at, updated_at
		FROM deliverables WHERE id = $1`

	var (
		dlvID, dealID        uuid.UUID
		title, status        string
		scheduledAt          *time.Time
		createdAt, updatedAt time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(&dlvID, &dealID, &title, &scheduledAt, &status, &createdAt, &updatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deliverable not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deliverable by id", err)
	}
	return deliverable.ReconstructDeliverable(dlvID, dealID, title, scheduledAt, deliverable.Status(status), createdAt, updatedAt), nil
}

func (r *DeliverableRepository) ListScheduledByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]conflict.ScheduledDeliverable, error) {
	const query = `
		SELECT dv.id, dv.deal_id, dv.scheduled_at
		FROM deliverables dv
		JOIN deals d ON d.id = dv.deal_id
		WHERE d.user_id = $1 AND dv.scheduled_at IS NOT NULL
		ORDER BY dv.scheduled_at, dv.id`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled deliverables", err)
	}
	defer rows.Close()

	var scheduled []conflict.ScheduledDeliverable
	for rows.Next() {
		var sd conflict.ScheduledDeliverable
		if serr := rows.Scan(&sd.ID, &sd.DealID, &sd.ScheduledAt); serr != nil {
			return nil, infra.WrapRepoErr("failed to scan deliverable row", serr)
		}
		scheduled = append(scheduled, sd)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate deliverable rows", err)
	}
	return scheduled, nil
}
