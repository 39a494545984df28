package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visaflow/config"
	"visaflow/database"
	accountRepoPkg "visaflow/database/repository/account"
	annotationRepoPkg "visaflow/database/repository/annotation"
	bannerRepoPkg "visaflow/database/repository/banner"
	formRepoPkg "visaflow/database/repository/form"
	notificationRepoPkg "visaflow/database/repository/notification"
	profileRepoPkg "visaflow/database/repository/profile"
	"visaflow/handlers"
	"visaflow/middleware"
	"visaflow/routes"
	"visaflow/services/account"
	"visaflow/services/annotation"
	"visaflow/services/banner"
	"visaflow/services/notification"
	"visaflow/services/profile"
	"visaflow/services/wizard"
	"visaflow/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	formRepo := formRepoPkg.NewMongoFormRepo()
	annotationRepo := annotationRepoPkg.NewMongoAnnotationRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	bannerRepo := bannerRepoPkg.NewMongoBannerRepo()

	// services.
	accountService := &account.DefaultAccountService{Repo: accountRepo}
	notificationService := &notification.DefaultNotificationService{Repo: notificationRepo}
	profileService := &profile.DefaultProfileService{
		Profiles: profileRepo,
		Forms:    formRepo,
		Notifier: notificationService,
	}
	wizardService := &wizard.DefaultWizardService{
		Profiles: profileRepo,
		Forms:    formRepo,
		Notifier: notificationService,
	}
	annotationService := &annotation.DefaultAnnotationService{Repo: annotationRepo}
	bannerService := &banner.DefaultBannerService{
		Repo:    bannerRepo,
		Storage: banner.NewCloudinaryStorage(cld),
	}

	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: accountRepo,
		ProfileRepo: profileRepo,

		LoginHandler:  handlers.LoginHandler(accountService),
		LogoutHandler: handlers.LogoutHandler(accountService),

		SubmitStepHandler: handlers.SubmitStepHandler(wizardService),
		SaveStepHandler:   handlers.SaveStepHandler(wizardService),
		GetWizardHandler:  handlers.GetWizardHandler(wizardService),
		ListAddHandler:    handlers.ListAddHandler(),
		ListRemoveHandler: handlers.ListRemoveHandler(),

		CreateClientHandler:  handlers.CreateClientHandler(accountService),
		GetClientsHandler:    handlers.GetClientsHandler(accountService),
		GetAccountHandler:    handlers.GetAccountHandler(accountService),
		UpdateAccountHandler: handlers.UpdateAccountHandler(accountService),
		ResetPasswordHandler: handlers.ResetPasswordHandler(accountService),

		CreateCollaboratorHandler: handlers.CreateCollaboratorHandler(accountService),
		GetCollaboratorsHandler:   handlers.GetCollaboratorsHandler(accountService),
		DeleteCollaboratorHandler: handlers.DeleteCollaboratorHandler(accountService),

		CreateProfileHandler:      handlers.CreateProfileHandler(profileService),
		GetProfileHandler:         handlers.GetProfileHandler(profileService),
		GetAccountProfilesHandler: handlers.GetAccountProfilesHandler(profileService),
		UpdateProfileHandler:      handlers.UpdateProfileHandler(profileService),
		DeleteProfileHandler:      handlers.DeleteProfileHandler(profileService),

		CreateAnnotationHandler:      handlers.CreateAnnotationHandler(annotationService),
		UpdateAnnotationHandler:      handlers.UpdateAnnotationHandler(annotationService),
		DeleteAnnotationHandler:      handlers.DeleteAnnotationHandler(annotationService),
		GetProfileAnnotationsHandler: handlers.GetProfileAnnotationsHandler(annotationService),
		GetAccountAnnotationsHandler: handlers.GetAccountAnnotationsHandler(annotationService),

		GetNotificationsHandler:       handlers.GetNotificationsHandler(notificationService),
		MarkNotificationViewedHandler: handlers.MarkNotificationViewedHandler(notificationService),

		GetBannersHandler:   handlers.GetBannersHandler(bannerService),
		CreateBannerHandler: handlers.CreateBannerHandler(bannerService),
		UpdateBannerHandler: handlers.UpdateBannerHandler(bannerService),
		DeleteBannerHandler: handlers.DeleteBannerHandler(bannerService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
