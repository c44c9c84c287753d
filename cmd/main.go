package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/Meerkats/config"
	"github.com/lshigami/Meerkats/database"
	_ "github.com/lshigami/Meerkats/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Meerkats/internal/cache"
	authorctrl "github.com/lshigami/Meerkats/internal/controller/author"
	userctrl "github.com/lshigami/Meerkats/internal/controller/user"
	"github.com/lshigami/Meerkats/internal/logger"
	"github.com/lshigami/Meerkats/internal/middleware"
	"github.com/lshigami/Meerkats/internal/model"
	"github.com/lshigami/Meerkats/internal/repository"
	"github.com/lshigami/Meerkats/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Survey Flow API
// @version 1.0
// @description Survey authoring, sequential survey-taking and author statistics.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			cache.NewRedisClient, // Provides *redis.Client
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewSurveyRepository,
			repository.NewQuestionRepository,
			repository.NewResponseRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			cache.NewStatsCache,
			service.NewAuthService,
			service.NewAuthorSurveyService,
			service.NewUserSurveyService,
			service.NewProgressionService,
			service.NewAnswerService,
			service.NewStatisticsService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewSurveyController,
			authorctrl.NewAuthorSurveyController,
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
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Tag every request with an id so its log lines correlate.
	r.Use(func(ctx *gin.Context) {
		requestID := ctx.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set("request_id", requestID)
		ctx.Header("X-Request-ID", requestID)
		ctx.Next()
	})

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
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *userctrl.AuthController,
	surveyCtrl *userctrl.SurveyController,
	authorSurveyCtrl *authorctrl.AuthorSurveyController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	// Everything below requires an authenticated user: respondent identity
	// drives response ownership and author identity gates statistics.
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(cfg.JWT.Secret))
	{
		surveysGroup := authed.Group("/surveys")
		surveysGroup.GET("", surveyCtrl.ListSurveys)
		surveysGroup.GET("/:survey_id", surveyCtrl.GetSurveyDetails)
		surveysGroup.GET("/:survey_id/next-question", surveyCtrl.GetNextQuestion)
		surveysGroup.POST("/:survey_id/answers", surveyCtrl.SubmitAnswer)

		authorGroup := authed.Group("/author/surveys")
		authorGroup.POST("", authorSurveyCtrl.CreateSurvey)
		authorGroup.GET("", authorSurveyCtrl.ListMySurveys)
		authorGroup.PUT("/:survey_id", authorSurveyCtrl.UpdateSurvey)
		authorGroup.DELETE("/:survey_id", authorSurveyCtrl.DeleteSurvey)
		authorGroup.GET("/:survey_id/statistics", authorSurveyCtrl.GetStatistics)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Survey Flow API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Survey{},
		&model.Question{},
		&model.AnswerOption{},
		&model.SurveyResponse{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
