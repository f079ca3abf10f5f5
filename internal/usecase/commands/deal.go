package commands

import (
	"context"

	domdeal "dealdesk/internal/domain/deal"
	reqdto "dealdesk/internal/handler/dto/request"
	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/pkg/patch"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDealNotFound     = errs.New("deal not found")
	ErrBrandNotFound    = errs.New("brand not found")
	ErrDealNotOwned     = errs.New("deal not owned by user")
	ErrDealWriteFailed  = errs.New("deal write failed")
	ErrNoFieldsProvided = errs.New("no fields provided for update")
)

// CreateDealResult carries the new deal id plus what reconciliation changed,
// so the API can surface newly created conflicts immediately.
type CreateDealResult struct {
	DealID    uuid.UUID
	Reconcile ReconcileStats
}

type DealCommands interface {
	CreateDeal(ctx context.Context, req reqdto.CreateDealRequest, userID uuid.UUID) (*CreateDealResult, error)
	UpdateDeal(ctx context.Context, dealID uuid.UUID, req reqdto.UpdateDealRequest, userID uuid.UUID) (*ReconcileStats, error)
	CancelDeal(ctx context.Context, dealID uuid.UUID, userID uuid.UUID) (*ReconcileStats, error)
}

type dealCommandsImpl struct {
	uow        shared.UnitOfWork
	reconciler Reconciler
}

func NewDealCommands(uow shared.UnitOfWork, reconciler Reconciler) DealCommands {
	return &dealCommandsImpl{uow: uow, reconciler: reconciler}
}

func (uc *dealCommandsImpl) CreateDeal(ctx context.Context, req reqdto.CreateDealRequest, userID uuid.UUID) (*CreateDealResult, error) {
	money, err := domdeal.NewMoney(req.AmountCents, req.Currency)
	if err != nil {
		return nil, err
	}
	clause, err := toClause(req.Exclusivity)
	if err != nil {
		return nil, err
	}

	result := &CreateDealResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Brands().FindByID(ctx, tx.DB(), req.BrandID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBrandNotFound
			}
			return derr
		}
		if b.UserID() != userID {
			return ErrBrandNotFound
		}

		d, derr := domdeal.NewDeal(userID, req.BrandID, req.Title, money, clause)
		if derr != nil {
			return derr
		}
		id, derr := tx.Deals().Create(ctx, tx.DB(), d)
		if derr != nil {
			return errs.Mark(derr, ErrDealWriteFailed)
		}
		result.DealID = id

		stats, derr := uc.reconciler.RecomputeForDeal(ctx, tx, userID, id)
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

func (uc *dealCommandsImpl) UpdateDeal(ctx context.Context, dealID uuid.UUID, req reqdto.UpdateDealRequest, userID uuid.UUID) (*ReconcileStats, error) {
	if req.Title == nil && req.Status == nil && req.Exclusivity == nil && !req.ClearExclusivity {
		return nil, ErrNoFieldsProvided
	}

	var stats *ReconcileStats
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, derr := uc.findOwned(ctx, tx, dealID, userID)
		if derr != nil {
			return derr
		}

		if req.Status != nil {
			next, serr := domdeal.NewStatus(*req.Status)
			if serr != nil {
				return serr
			}
			if serr := d.TransitionTo(next); serr != nil {
				return serr
			}
		}
		if req.ClearExclusivity {
			d.ReplaceExclusivity(nil)
		} else if req.Exclusivity != nil {
			clause, cerr := toClause(req.Exclusivity)
			if cerr != nil {
				return cerr
			}
			d.ReplaceExclusivity(clause)
		}
		if req.Title != nil {
			if terr := d.Rename(patch.Coalesce(req.Title, d.Title())); terr != nil {
				return terr
			}
		}

		if derr = tx.Deals().Update(ctx, tx.DB(), d); derr != nil {
			return errs.Mark(derr, ErrDealWriteFailed)
		}

		stats, derr = uc.reconciler.RecomputeForDeal(ctx, tx, userID, dealID)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (uc *dealCommandsImpl) CancelDeal(ctx context.Context, dealID uuid.UUID, userID uuid.UUID) (*ReconcileStats, error) {
	var stats *ReconcileStats
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, derr := uc.findOwned(ctx, tx, dealID, userID)
		if derr != nil {
			return derr
		}
		if derr = d.Cancel(); derr != nil {
			return derr
		}
		if derr = tx.Deals().Update(ctx, tx.DB(), d); derr != nil {
			return errs.Mark(derr, ErrDealWriteFailed)
		}
		stats, derr = uc.reconciler.RecomputeForDeal(ctx, tx, userID, dealID)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (uc *dealCommandsImpl) findOwned(ctx context.Context, tx shared.Tx, dealID, userID uuid.UUID) (*domdeal.Deal, error) {
	d, err := tx.Deals().FindByID(ctx, tx.DB(), dealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	if d.UserID() != userID {
		return nil, ErrDealNotFound
	}
	return d, nil
}

func toClause(in *reqdto.ExclusivityClauseRequest) (*domdeal.ExclusivityClause, error) {
	if in == nil {
		return nil, nil
	}
	scope, err := domdeal.NewScope(in.Scope)
	if err != nil {
		return nil, err
	}
	return domdeal.NewExclusivityClause(in.Category, in.CompetitorBrandIDs, in.StartDate, in.EndDate, scope)
}
