package components

import (
	"tourbook/internal/handler"
	"tourbook/internal/handler/api"
	"tourbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTourHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewCartHandler,
		api.NewCredentialHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	tour *api.TourHandler,
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	cart *api.CartHandler,
	credential *api.CredentialHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Tour:         tour,
		Availability: availability,
		Booking:      booking,
		Cart:         cart,
		Credential:   credential,
	}
}
