package bootstrap

import (
	"tourbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	VaultModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
