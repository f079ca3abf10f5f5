package commands

import (
	"context"

	"dealdesk/internal/domain/deliverable"
	reqdto "dealdesk/internal/handler/dto/request"
	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDeliverableNotFound = errs.New("deliverable not found")

type CreateDeliverableResult struct {
	DeliverableID uuid.UUID
	Reconcile     ReconcileStats
}

type DeliverableCommands interface {
	CreateDeliverable(ctx context.Context, dealID uuid.UUID, req reqdto.CreateDeliverableRequest, userID uuid.UUID) (*CreateDeliverableResult, error)
	UpdateDeliverable(ctx context.Context, deliverableID uuid.UUID, req reqdto.UpdateDeliverableRequest, userID uuid.UUID) (*ReconcileStats, error)
}

type deliverableCommandsImpl struct {
	uow        shared.UnitOfWork
	reconciler Reconciler
}

func NewDeliverableCommands(uow shared.UnitOfWork, reconciler Reconciler) DeliverableCommands {
	return &deliverableCommandsImpl{uow: uow, reconciler: reconciler}
}

func (uc *deliverableCommandsImpl) CreateDeliverable(ctx context.Context, dealID uuid.UUID, req reqdto.CreateDeliverableRequest, userID uuid.UUID) (*CreateDeliverableResult, error) {
	result := &CreateDeliverableResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, derr := tx.Deals().FindByID(ctx, tx.DB(), dealID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrDealNotFound
			}
			return derr
		}
		if d.UserID() != userID {
			return ErrDealNotFound
		}

		dv, derr := deliverable.NewDeliverable(dealID, req.Title, req.ScheduledAt)
		if derr != nil {
			return derr
		}
		id, derr := tx.Deliverables().Create(ctx, tx.DB(), dv)
		if derr != nil {
			return derr
		}
		result.DeliverableID = id

		stats, derr := uc.reconciler.RecomputeForDeal(ctx, tx, userID, dealID)
		if derr != nil {
			return derr
		}
		result.Reconcile = *stats
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *deliverableCommandsImpl) UpdateDeliverable(ctx context.Context, deliverableID uuid.UUID, req reqdto.UpdateDeliverableRequest, userID uuid.UUID) (*ReconcileStats, error) {
	if req.Status == nil && req.ScheduledAt == nil && !req.ClearSchedule {
		return nil, ErrNoFieldsProvided
	}

	var stats *ReconcileStats
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dv, derr := tx.Deliverables().FindByID(ctx, tx.DB(), deliverableID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrDeliverableNotFound
			}
			return derr
		}
		d, derr := tx.Deals().FindByID(ctx, tx.DB(), dv.DealID())
		if derr != nil {
			return derr
		}
		if d.UserID() != userID {
			return ErrDeliverableNotFound
		}

		if req.Status != nil {
			status, serr := deliverable.NewStatus(*req.Status)
			if serr != nil {
				return serr
			}
			if serr := dv.SetStatus(status); serr != nil {
				return serr
			}
		}
		if req.ClearSchedule {
			dv.Reschedule(nil)
		} else if req.ScheduledAt != nil {
			dv.Reschedule(req.ScheduledAt)
		}

		if derr = tx.Deliverables().Update(ctx, tx.DB(), dv); derr != nil {
			return derr
		}

		stats, derr = uc.reconciler.RecomputeForDeal(ctx, tx, userID, dv.DealID())
		return derr
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
