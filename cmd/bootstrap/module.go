package bootstrap

import (
	"srs-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	MigrateModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
