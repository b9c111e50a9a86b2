package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/SohanMitra1729/CodeFest/config"
	"github.com/SohanMitra1729/CodeFest/database"
	adminctrl "github.com/SohanMitra1729/CodeFest/internal/controller/admin"
	contestctrl "github.com/SohanMitra1729/CodeFest/internal/controller/contest"
	"github.com/SohanMitra1729/CodeFest/internal/logger"
	"github.com/SohanMitra1729/CodeFest/internal/outbox"
	"github.com/SohanMitra1729/CodeFest/internal/service"
	"github.com/SohanMitra1729/CodeFest/internal/storage"
)

// @title CodeFest Contest API
// @version 1.0
// @description Coordination API for a multi-round coding contest: round lifecycle, Round 1 content authoring, submission intake and automated scoring.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewOutbox,
		),

		// Persistence boundary
		fx.Provide(
			storage.NewRoundStore,
			storage.NewSubmissionStore,
			storage.NewCertificateStore,
		),

		// Services layer
		fx.Provide(
			service.NewRoundService,
			service.NewContentService,
			service.NewSubmissionService,
			service.NewScoringService,
			service.NewCertificateService,
			service.NewTeamService,
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewContestAdminController,
			contestctrl.NewContestController,
		),

		fx.Invoke(MigrateDB),
		fx.Invoke(RunOutbox),
		fx.Invoke(LoadRounds),
		fx.Invoke(RegisterRoutesAndStartServer),
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

func NewOutbox() *outbox.Outbox {
	return outbox.New(256)
}

// RunOutbox ties the write-through worker to the application lifecycle.
func RunOutbox(lc fx.Lifecycle, box *outbox.Outbox) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			box.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			box.Stop()
			return nil
		},
	})
}

// LoadRounds pulls persisted rounds at startup. Failure keeps the built-in
// seed; the contest runs from memory either way.
func LoadRounds(lc fx.Lifecycle, rounds service.RoundService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			rounds.LoadPersisted(ctx)
			return nil
		},
	})
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminCtrl *adminctrl.ContestAdminController,
	contestCtrl *contestctrl.ContestController,
) {
	// Admin routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		roundsGroup := adminAPIGroup.Group("/rounds")
		roundsGroup.POST("/:round_id/start", adminCtrl.StartRound)
		roundsGroup.POST("/:round_id/end", adminCtrl.EndRound)
		roundsGroup.PUT("/:round_id/duration", adminCtrl.SetRoundDuration)

		adminAPIGroup.POST("/mcqs", adminCtrl.CreateMCQ)
		adminAPIGroup.GET("/mcqs", adminCtrl.ListMCQs)
		adminAPIGroup.POST("/coding-problems", adminCtrl.CreateCodingProblem)
		adminAPIGroup.GET("/coding-problems", adminCtrl.ListCodingProblems)

		adminAPIGroup.GET("/submissions", adminCtrl.ListSubmissions)
		adminAPIGroup.POST("/submissions/:team_id/score", adminCtrl.CalculateScore)
		adminAPIGroup.POST("/certificates", adminCtrl.AwardCertificate)
		adminAPIGroup.GET("/certificates", adminCtrl.ListCertificates)
	}

	// Contestant routes (prefixed with /api/v1)
	contestAPIGroup := router.Group("/api/v1")
	{
		contestAPIGroup.GET("/rounds", contestCtrl.ListRounds)
		contestAPIGroup.GET("/rounds/:round_id", contestCtrl.GetRound)
		contestAPIGroup.POST("/teams", contestCtrl.RegisterTeam)
		contestAPIGroup.POST("/round1/submissions", contestCtrl.SubmitRound1)
		contestAPIGroup.GET("/round1/submissions/:team_id", contestCtrl.GetTeamSubmission)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CodeFest contest API starting on port %s", cfg.Server.Port)
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

func MigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := storage.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}
