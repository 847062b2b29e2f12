package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campo-agenda/internal/handler/api"
	"campo-agenda/internal/handler/middleware"
	"campo-agenda/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	fieldHandler *api.FieldHandler,
	bookingHandler *api.BookingHandler,
	scheduleHandler *api.ScheduleHandler,
	paymentHandler *api.PaymentHandler,
	studentHandler *api.StudentHandler,
	configHandler *api.ConfigHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, fieldHandler, bookingHandler, scheduleHandler, paymentHandler, studentHandler, configHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(
	engine *gin.Engine,
	fieldHandler *api.FieldHandler,
	bookingHandler *api.BookingHandler,
	scheduleHandler *api.ScheduleHandler,
	paymentHandler *api.PaymentHandler,
	studentHandler *api.StudentHandler,
	configHandler *api.ConfigHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		fields := apiGroup.Group("/fields")
		{
			addRoutes(fields, []route{
				{Method: http.MethodPost, Path: "", Handler: fieldHandler.CreateField},
				{Method: http.MethodGet, Path: "", Handler: fieldHandler.ListFields},
				{Method: http.MethodGet, Path: "/:id", Handler: fieldHandler.GetField},
				{Method: http.MethodPut, Path: "/:id", Handler: fieldHandler.UpdateField},
				{Method: http.MethodDelete, Path: "/:id", Handler: fieldHandler.DeleteField},
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: scheduleHandler.DaySchedule},
				{Method: http.MethodGet, Path: "/:id/free-slots", Handler: scheduleHandler.FreeSlots},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.UpdateBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.DeleteBooking},
				{Method: http.MethodGet, Path: "/:id/billing", Handler: paymentHandler.BillingStatus},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: paymentHandler.RegisterPayment},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: paymentHandler.ListPayments},
				{Method: http.MethodPost, Path: "/:id/students", Handler: studentHandler.EnrollStudent},
				{Method: http.MethodGet, Path: "/:id/students", Handler: studentHandler.ListStudents},
			})
		}

		students := apiGroup.Group("/students")
		{
			addRoutes(students, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: studentHandler.GetStudent},
				{Method: http.MethodPatch, Path: "/:id", Handler: studentHandler.UpdateStudent},
				{Method: http.MethodDelete, Path: "/:id", Handler: studentHandler.DeleteStudent},
				{Method: http.MethodGet, Path: "/:id/billing", Handler: studentHandler.StudentBilling},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: studentHandler.RegisterStudentPayment},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: studentHandler.ListStudentPayments},
			})
		}

		configGroup := apiGroup.Group("/config")
		{
			addRoutes(configGroup, []route{
				{Method: http.MethodGet, Path: "/operating-hours", Handler: configHandler.GetOperatingHours},
				{Method: http.MethodPut, Path: "/operating-hours", Handler: configHandler.SetOperatingHours},
				{Method: http.MethodGet, Path: "/prices", Handler: configHandler.GetPrices},
				{Method: http.MethodPut, Path: "/prices", Handler: configHandler.SetPrice},
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
