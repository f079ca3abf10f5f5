package commands

import (
	"context"

	"dealdesk/internal/domain/brand"
	reqdto "dealdesk/internal/handler/dto/request"
	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateBrand = errs.New("brand already exists for user")

type BrandCommands interface {
	CreateBrand(ctx context.Context, req reqdto.CreateBrandRequest, userID uuid.UUID) (uuid.UUID, error)
}

type brandCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBrandCommands(uow shared.UnitOfWork) BrandCommands {
	return &brandCommandsImpl{uow: uow}
}

func (uc *brandCommandsImpl) CreateBrand(ctx context.Context, req reqdto.CreateBrandRequest, userID uuid.UUID) (uuid.UUID, error) {
	b, err := brand.NewBrand(userID, req.Name, req.Category)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Brands().Create(ctx, tx.DB(), b)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateBrand
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}
