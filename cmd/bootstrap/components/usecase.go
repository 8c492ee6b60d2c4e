package components

import (
	"sdi-showcase/internal/handler/api"
	"sdi-showcase/internal/infra/blobstore"
	"sdi-showcase/internal/pkg/clock"
	"sdi-showcase/internal/pkg/config"
	"sdi-showcase/internal/usecase/commands"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/queries"
	"sdi-showcase/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseFormsModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config) *blobstore.MemoryStore {
			return blobstore.NewMemoryStore(cfg.Upload)
		},
		fx.As(new(shared.ImageStore)),
		fx.As(new(api.BlobReader)),
	),
)

var usecaseFormsModule = fx.Module("usecase/forms",
	fx.Provide(
		forms.NewListingForm,
		forms.NewAffiliateForm,
		forms.NewClientForm,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewListingCommands,
		commands.NewAffiliateCommands,
		commands.NewClientCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewAffiliateQueries,
		queries.NewClientQueries,
	),
)
