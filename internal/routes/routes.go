package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/config"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/handlers"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/middleware"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db, cfg)
	psychologistHandler := handlers.NewPsychologistHandler(db, cfg)
	clinicHandler := handlers.NewClinicHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes. The actor (profile + role extension) is resolved
	// once here and passed down through the request context.
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg), middleware.ResolveActor(db))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.GET("/me", authHandler.Me)
			authRoutesPrivate.POST("/logout", authHandler.Logout)
		}

		// Profile completion is the only feature open to incomplete actors.
		profileRoutes := private.Group("/profile")
		{
			profileRoutes.GET("", profileHandler.GetMyProfile)
			profileRoutes.POST("/complete", profileHandler.CompleteProfile)
			profileRoutes.PUT("",
				middleware.RequireRole(middleware.ActorPatient, middleware.ActorPsychologist),
				profileHandler.UpdateProfile)
		}

		// Directory used by patients when booking.
		private.GET("/psychologists", psychologistHandler.ListPsychologists)

		appointmentRoutes := private.Group("/appointments")
		appointmentRoutes.Use(middleware.RequireRole(middleware.ActorPatient, middleware.ActorPsychologist))
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)

			// Patient actions on their own appointments.
			appointmentRoutes.POST("/:id/confirm-attendance",
				middleware.RequireRole(middleware.ActorPatient),
				appointmentHandler.ConfirmAttendance)
			appointmentRoutes.POST("/:id/request-reschedule",
				middleware.RequireRole(middleware.ActorPatient),
				appointmentHandler.RequestReschedule)

			// Psychologist actions on their own appointments.
			appointmentRoutes.PATCH("/:id/status",
				middleware.RequireRole(middleware.ActorPsychologist),
				psychologistHandler.UpdateAppointmentStatus)
			appointmentRoutes.POST("/:id/diagnoses",
				middleware.RequireRole(middleware.ActorPsychologist),
				psychologistHandler.CreateDiagnosis)
		}

		patientRoutes := private.Group("/patient")
		patientRoutes.Use(middleware.RequireRole(middleware.ActorPatient))
		{
			patientRoutes.GET("/dashboard", appointmentHandler.PatientDashboard)
			patientRoutes.GET("/appointments", appointmentHandler.PatientAppointments)
		}

		psychologistRoutes := private.Group("/psychologist")
		psychologistRoutes.Use(middleware.RequireRole(middleware.ActorPsychologist))
		{
			psychologistRoutes.GET("/dashboard", psychologistHandler.Dashboard)
			psychologistRoutes.GET("/agenda", psychologistHandler.Agenda)
			psychologistRoutes.GET("/patients", psychologistHandler.Patients)
			psychologistRoutes.GET("/patients/:patientId/history", psychologistHandler.PatientHistory)
			psychologistRoutes.GET("/diagnoses/pending", psychologistHandler.PendingDiagnoses)
		}

		clinicRoutes := private.Group("/clinics")
		{
			clinicRoutes.GET("", clinicHandler.ListClinics)
			clinicRoutes.POST("",
				middleware.RequireRole(middleware.ActorPsychologist),
				clinicHandler.CreateClinic)
			clinicRoutes.POST("/:id/psychologists",
				middleware.RequireRole(middleware.ActorPsychologist),
				clinicHandler.Affiliate)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
