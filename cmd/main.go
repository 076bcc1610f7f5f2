package main

import (
	"context"
	"net/http"
	"time"

	"careerworld/config"
	"careerworld/database"
	_ "careerworld/docs" // Swagger docs
	admctrl "careerworld/internal/controller/admin"
	asmtctrl "careerworld/internal/controller/assessment"
	authctrl "careerworld/internal/controller/auth"
	"careerworld/internal/controller/middleware"
	userctrl "careerworld/internal/controller/user"
	"careerworld/internal/extract"
	"careerworld/internal/logger"
	"careerworld/internal/model"
	"careerworld/internal/repository"
	"careerworld/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Career World API
// @version 1.0
// @description Passwordless login and scored career readiness assessments with AI feedback.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			extract.NewRegistry,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewMagicTokenRepository,
			repository.NewQuestionRepository,
			repository.NewAssessmentRepository,
		),

		// Services layer
		fx.Provide(
			func(cfg *config.Config) service.TokenHasher {
				return service.NewTokenHasher(cfg.Auth.Secret)
			},
			service.NewSessionService,
			service.NewEmailService,
			service.NewStorageService,
			service.NewGeminiService,
			service.NewMagicLinkService,
			service.NewScoringService,
			service.NewAssessmentService,
			service.NewQuestionService,
			service.NewAdminQuestionService,
			service.NewUserService,
		),

		// API controllers layer
		fx.Provide(
			authctrl.NewAuthController,
			userctrl.NewUserController,
			asmtctrl.NewAssessmentController,
			admctrl.NewAdminQuestionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessions service.SessionService,
	users repository.UserRepository,
	authCtrl *authctrl.AuthController,
	userCtrl *userctrl.UserController,
	assessmentCtrl *asmtctrl.AssessmentController,
	adminCtrl *admctrl.AdminQuestionController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/magic-link/request", authCtrl.RequestMagicLink)
		authGroup.POST("/magic-link/login", authCtrl.Login)

		api.GET("/assessment/questions", assessmentCtrl.GetQuestions)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(sessions, users))
		{
			authed.GET("/users/me", userCtrl.Me)
			authed.POST("/users/me/resume", userCtrl.UploadResume)
			authed.POST("/assessment/submit", assessmentCtrl.Submit)
			authed.GET("/assessment/history", assessmentCtrl.History)
		}

		adminGroup := api.Group("/admin")
		adminGroup.POST("/questions", adminCtrl.CreateQuestion)
		adminGroup.POST("/questions/import", adminCtrl.Import)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Career World API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.MagicToken{},
		&model.Question{},
		&model.Option{},
		&model.Assessment{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
