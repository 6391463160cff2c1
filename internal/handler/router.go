package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hall-booking/internal/handler/api"
	"hall-booking/internal/handler/middleware"
	"hall-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Room     *api.RoomHandler
	Booking  *api.BookingHandler
	Customer *api.CustomerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, roomHandler *api.RoomHandler, bookingHandler *api.BookingHandler, customerHandler *api.CustomerHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, Handlers{Room: roomHandler, Booking: bookingHandler, Customer: customerHandler})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{middleware.RequireJSON()}},
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{middleware.RequireJSON()}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
		})

		addRoutes(apiGroup.Group("/customers"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
			{Method: http.MethodGet, Path: "/:customerName/bookings", Handler: h.Customer.Summary},
			{Method: http.MethodGet, Path: "/:customerName/report", Handler: h.Customer.Report},
		})
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
