package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/corebeautylab/salon-scheduler/internal/audit"
	"github.com/corebeautylab/salon-scheduler/internal/cache"
	"github.com/corebeautylab/salon-scheduler/internal/config"
	"github.com/corebeautylab/salon-scheduler/internal/handlers"
	infraRepo "github.com/corebeautylab/salon-scheduler/internal/infra/repository"
	"github.com/corebeautylab/salon-scheduler/internal/middleware"
	ucAppointment "github.com/corebeautylab/salon-scheduler/internal/usecase/appointment"
	ucStats "github.com/corebeautylab/salon-scheduler/internal/usecase/stats"
)

// RegisterRoutes wires repositories, use cases and handlers onto
// the engine. redisCache may be nil; auth and stats degrade to
// uncached behavior.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	redisCache *cache.Cache,
	log zerolog.Logger,
) {

	// ------------------------------
	// Infra singletons
	// ------------------------------
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var statsCache ucStats.Cache
	var blacklist middleware.TokenBlacklist
	var revoker handlers.Revoker
	if redisCache != nil {
		statsCache = redisCache
		blacklist = redisCache
		revoker = redisCache
	}

	// ------------------------------
	// Use cases
	// ------------------------------
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	statsAggregator := ucStats.NewAggregator(db, statsCache)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg, log, revoker)
	clientHandler := handlers.NewClientHandler(db, auditDispatcher, log)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher, log)
	noteHandler := handlers.NewNoteHandler(db, cfg, auditDispatcher, log)
	settingHandler := handlers.NewSettingHandler(db, log)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		log,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(db, cfg, log, listAppointmentsUC)
	statsHandler := handlers.NewStatsHandler(db, cfg, log, statsAggregator)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)

	// ------------------------------
	// API (JSON)
	// ------------------------------
	api := r.Group("/api")
	{
		api.POST("/auth/pin", authHandler.SetupPin)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, blacklist))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/notes", noteHandler.List)
			secured.POST("/notes", noteHandler.Create)
			secured.PATCH("/notes/:id", noteHandler.Update)
			secured.DELETE("/notes/:id", noteHandler.Delete)

			secured.GET("/settings", settingHandler.List)
			secured.GET("/settings/:key", settingHandler.Get)
			secured.PUT("/settings/:key", settingHandler.Put)

			secured.GET("/schedule/day", scheduleHandler.Day)
			secured.GET("/schedule/week", scheduleHandler.Week)
			secured.GET("/schedule/slot", scheduleHandler.Slot)

			secured.GET("/stats", statsHandler.Get)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
