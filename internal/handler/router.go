package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourbook/internal/domain/user"
	"tourbook/internal/handler/api"
	"tourbook/internal/handler/middleware"
	"tourbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Tour         *api.TourHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Cart         *api.CartHandler
	Credential   *api.CredentialHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		tours := apiGroup.Group("/tours")
		{
			addRoutes(tours, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Tour.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Tour.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Availability.GetCalendar},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(middleware.CartKey())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Submit},
				{Method: http.MethodGet, Path: "/:reference", Handler: h.Booking.GetByReference},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(middleware.CartKey())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodDelete, Path: "/items/:reference", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPatch, Path: "/items/:reference/participants", Handler: h.Cart.UpdateParticipants},
				{Method: http.MethodPost, Path: "/promo", Handler: h.Cart.PreviewPromo},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleOperator))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/tours", Handler: h.Tour.Create},
				{Method: http.MethodPatch, Path: "/tours/:id", Handler: h.Tour.Update},
				{Method: http.MethodPost, Path: "/tours/:id/departures", Handler: h.Tour.AddDeparture},
				{Method: http.MethodDelete, Path: "/tours/:id/departures/:departureId", Handler: h.Tour.RemoveDeparture},
				{Method: http.MethodGet, Path: "/tours/:id/bookings", Handler: h.Booking.ListByTour},
				{Method: http.MethodPut, Path: "/bookings/:reference/status", Handler: h.Booking.UpdateStatus},
				{Method: http.MethodPut, Path: "/bookings/:reference/payment-status", Handler: h.Booking.UpdatePaymentStatus},
				{
					Method: http.MethodGet, Path: "/users/:id/credentials/:kind", Handler: h.Credential.Get,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
