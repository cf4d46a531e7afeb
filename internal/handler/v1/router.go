package v1

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clinova/clinova/internal/config"
	"github.com/clinova/clinova/pkg/metrics"
)

type Handlers struct {
	Patients     *PatientHandler
	Specialties  *SpecialtyHandler
	Doctors      *DoctorHandler
	History      *HistoryHandler
	Appointments *AppointmentHandler
	Availability *AvailabilityHandler
}

func NewRouter(cfg *config.Config, db *gorm.DB, m *metrics.Collector, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog(log))
	r.Use(Metrics(m))
	r.Use(Trace(cfg.App.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:       cfg.CORS.MaxAge,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.App.Name,
			"version": cfg.App.Version,
			"endpoints": gin.H{
				"patients":     "/patients",
				"specialties":  "/specialties",
				"doctors":      "/doctors",
				"history":      "/history",
				"appointments": "/appointments",
				"availability": "/availability",
			},
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		m.DBConnections.Set(float64(sqlDB.Stats().OpenConnections))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	patients := r.Group("/patients")
	{
		patients.POST("", h.Patients.Create)
		patients.GET("", h.Patients.List)
		patients.GET("/:id", h.Patients.Get)
		patients.PUT("/:id", h.Patients.Update)
		patients.DELETE("/:id", h.Patients.Delete)
	}

	specialties := r.Group("/specialties")
	{
		specialties.POST("", h.Specialties.Create)
		specialties.GET("", h.Specialties.List)
		specialties.GET("/:id", h.Specialties.Get)
		specialties.PUT("/:id", h.Specialties.Update)
		specialties.DELETE("/:id", h.Specialties.Delete)
	}

	doctors := r.Group("/doctors")
	{
		doctors.POST("", h.Doctors.Create)
		doctors.GET("", h.Doctors.List)
		doctors.GET("/specialty/:id", h.Doctors.ListBySpecialty)
		doctors.GET("/:id", h.Doctors.Get)
		doctors.PUT("/:id", h.Doctors.Update)
		doctors.DELETE("/:id", h.Doctors.Delete)
	}

	historyGroup := r.Group("/history")
	{
		historyGroup.POST("", h.History.Create)
		historyGroup.GET("", h.History.List)
		historyGroup.GET("/patient/:id", h.History.ListByPatient)
		historyGroup.GET("/:id", h.History.Get)
		historyGroup.PUT("/:id", h.History.Update)
		historyGroup.DELETE("/:id", h.History.Delete)
	}

	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.Appointments.Create)
		appointments.GET("", h.Appointments.List)
		appointments.GET("/patient/:id", h.Appointments.ListByPatient)
		appointments.GET("/doctor/:id", h.Appointments.ListByDoctor)
		appointments.GET("/:id", h.Appointments.Get)
		appointments.PUT("/:id", h.Appointments.Update)
		appointments.DELETE("/:id", h.Appointments.Delete)
	}

	availability := r.Group("/availability")
	{
		availability.GET("", h.Availability.DaySchedule)
		availability.GET("/check", h.Availability.CheckSlot)
	}

	return r
}
