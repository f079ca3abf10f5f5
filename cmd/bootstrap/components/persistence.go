package components

import (
	"dealdesk/internal/infra/db"
	"dealdesk/internal/infra/readstore"
	"dealdesk/internal/infra/uow"
	"dealdesk/internal/pkg/config"
	"dealdesk/internal/usecase/queries"
	"dealdesk/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewDealReadStore,
			fx.As(new(queries.DealReadStore)),
		),
		fx.Annotate(
			readstore.NewBrandReadStore,
			fx.As(new(queries.BrandReadStore)),
		),
		fx.Annotate(
			readstore.NewConflictReadStore,
			fx.As(new(queries.ConflictReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		func(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
			return uow.NewPostgresUoW(pool, cfg.Reconcile.MaxRetries)
		},
	),
)
