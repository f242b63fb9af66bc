package components

import (
	"tourbook/internal/domain/cart"
	"tourbook/internal/infra/cartstore"
	repo_impl "tourbook/internal/infra/repository"
	"tourbook/internal/pkg/config"
	"tourbook/internal/usecase"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		// The tour repository serves both sides: the write port and the
		// read-side snapshot queries.
		fx.Annotate(
			repo_impl.NewTourRepository,
			fx.As(new(commands.TourRepository)),
		),
		fx.Annotate(
			repo_impl.NewTourRepository,
			fx.As(new(queries.TourReadRepo)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(queries.BookingReadRepo)),
		),
		fx.Annotate(
			repo_impl.NewCredentialRepository,
			fx.As(new(queries.CredentialReadRepo)),
		),
		fx.Annotate(
			NewCartStore,
			fx.As(new(cart.Store)),
		),
	),
)

func NewCartStore(client *redis.Client, cfg config.Config) *cartstore.RedisStore {
	return cartstore.NewRedisStore(client, cfg.Cart.TTL)
}
