package handlers

import (
	accountRepoPkg "visaflow/database/repository/account"
	profileRepoPkg "visaflow/database/repository/profile"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, plus the
// repositories the middleware chain needs.
type HandlerBundle struct {
	AccountRepo accountRepoPkg.AccountRepository
	ProfileRepo profileRepoPkg.ProfileRepository

	// Auth endpoints
	LoginHandler  gin.HandlerFunc
	LogoutHandler gin.HandlerFunc

	// Wizard endpoints
	SubmitStepHandler gin.HandlerFunc
	SaveStepHandler   gin.HandlerFunc
	GetWizardHandler  gin.HandlerFunc
	ListAddHandler    gin.HandlerFunc
	ListRemoveHandler gin.HandlerFunc

	// Client account endpoints
	CreateClientHandler  gin.HandlerFunc
	GetClientsHandler    gin.HandlerFunc
	GetAccountHandler    gin.HandlerFunc
	UpdateAccountHandler gin.HandlerFunc
	ResetPasswordHandler gin.HandlerFunc

	// Collaborator endpoints
	CreateCollaboratorHandler gin.HandlerFunc
	GetCollaboratorsHandler   gin.HandlerFunc
	DeleteCollaboratorHandler gin.HandlerFunc

	// Profile endpoints
	CreateProfileHandler      gin.HandlerFunc
	GetProfileHandler         gin.HandlerFunc
	GetAccountProfilesHandler gin.HandlerFunc
	UpdateProfileHandler      gin.HandlerFunc
	DeleteProfileHandler      gin.HandlerFunc

	// Annotation endpoints
	CreateAnnotationHandler      gin.HandlerFunc
	UpdateAnnotationHandler      gin.HandlerFunc
	DeleteAnnotationHandler      gin.HandlerFunc
	GetProfileAnnotationsHandler gin.HandlerFunc
	GetAccountAnnotationsHandler gin.HandlerFunc

	// Notification endpoints
	GetNotificationsHandler       gin.HandlerFunc
	MarkNotificationViewedHandler gin.HandlerFunc

	// Banner endpoints
	GetBannersHandler   gin.HandlerFunc
	CreateBannerHandler gin.HandlerFunc
	UpdateBannerHandler gin.HandlerFunc
	DeleteBannerHandler gin.HandlerFunc
}
