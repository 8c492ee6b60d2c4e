package bootstrap

import (
	"sdi-showcase/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
