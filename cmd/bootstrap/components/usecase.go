package components

import (
	"dealdesk/internal/pkg/clock"
	"dealdesk/internal/pkg/config"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) commands.Reconciler {
		return commands.NewReconciler(clk, cfg.Reconcile.LockTimeout)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		func(cmds commands.AuthCommands) commands.TokenValidator { return cmds },
		commands.NewDealCommands,
		commands.NewDeliverableCommands,
		commands.NewBrandCommands,
		commands.NewConflictCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewDealQueries,
		queries.NewBrandQueries,
		queries.NewConflictQueries,
	),
)
