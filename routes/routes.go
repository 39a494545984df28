package routes

import (
	"time"

	"visaflow/handlers"
	"visaflow/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in/sign-out endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.AuthRequired(hb.AccountRepo))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterWizardRoutes registers the step-by-step form endpoints. Every
// route requires authentication; routes keyed by profile additionally
// require ownership (or a staff role).
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.Use(middleware.AuthRequired(hb.AccountRepo))

		// List-editor operations are stateless and carry no profile data.
		api.POST("/lists/:step/:field/add", hb.ListAddHandler)
		api.POST("/lists/:step/:field/remove", hb.ListRemoveHandler)

		profiled := api.Group("")
		profiled.Use(middleware.ProfileAccessRequired(hb.ProfileRepo))
		profiled.GET("/:profileId", hb.GetWizardHandler)
		profiled.POST("/:profileId/:step/submit", hb.SubmitStepHandler)
		profiled.POST("/:profileId/:step/save", hb.SaveStepHandler)
	}
}

// RegisterStaffRoutes registers endpoints reserved for collaborators and
// admins: client management, profile lifecycle, and notifications.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	clients := r.Group("/api/clients")
	{
		clients.Use(middleware.AuthRequired(hb.AccountRepo), middleware.CollaboratorRequired())
		clients.POST("", hb.CreateClientHandler)
		clients.GET("", hb.GetClientsHandler)
		clients.GET("/:id", hb.GetAccountHandler)
		clients.PUT("/:id", hb.UpdateAccountHandler)
		clients.PUT("/:id/password", hb.ResetPasswordHandler)
		clients.GET("/:id/annotations", hb.GetAccountAnnotationsHandler)
	}

	profiles := r.Group("/api/profiles")
	{
		profiles.Use(middleware.AuthRequired(hb.AccountRepo), middleware.CollaboratorRequired())
		profiles.POST("", hb.CreateProfileHandler)
		profiles.GET("/:id", hb.GetProfileHandler)
		profiles.PUT("/:id", hb.UpdateProfileHandler)
		profiles.DELETE("/:id", hb.DeleteProfileHandler)
		profiles.GET("/account/:accountId", hb.GetAccountProfilesHandler)
		profiles.GET("/:id/annotations", hb.GetProfileAnnotationsHandler)
	}

	notifications := r.Group("/api/notifications")
	{
		notifications.Use(middleware.AuthRequired(hb.AccountRepo), middleware.CollaboratorRequired())
		notifications.GET("", hb.GetNotificationsHandler)
		notifications.PUT("/:id/viewed", hb.MarkNotificationViewedHandler)
	}
}

// RegisterAdminRoutes registers endpoints reserved for admins:
// collaborator management, annotation writes, and banner content.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	collaborators := r.Group("/api/collaborators")
	{
		collaborators.Use(middleware.AuthRequired(hb.AccountRepo), middleware.AdminRequired())
		collaborators.POST("", hb.CreateCollaboratorHandler)
		collaborators.GET("", hb.GetCollaboratorsHandler)
		collaborators.DELETE("/:id", hb.DeleteCollaboratorHandler)
	}

	annotations := r.Group("/api/annotations")
	{
		annotations.Use(middleware.AuthRequired(hb.AccountRepo), middleware.AdminRequired())
		annotations.POST("", hb.CreateAnnotationHandler)
		annotations.PUT("/:id", hb.UpdateAnnotationHandler)
		annotations.DELETE("/:id", hb.DeleteAnnotationHandler)
	}

	banners := r.Group("/api/banners")
	{
		// Reading banners only needs a session; writing them is admin-only.
		banners.Use(middleware.AuthRequired(hb.AccountRepo))
		banners.GET("", hb.GetBannersHandler)

		adminOnly := banners.Group("")
		adminOnly.Use(middleware.AdminRequired())
		adminOnly.POST("", hb.CreateBannerHandler)
		adminOnly.PUT("/:id", hb.UpdateBannerHandler)
		adminOnly.DELETE("/:id", hb.DeleteBannerHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler())
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
