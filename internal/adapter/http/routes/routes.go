package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "delta33_backoffice/docs" // swagger docs, generated by swag
	"delta33_backoffice/internal/adapter/http/handlers"
	"delta33_backoffice/internal/adapter/http/middleware"
	"delta33_backoffice/internal/adapter/persistence/repository"
	"delta33_backoffice/internal/adapter/persistence/session"
	"delta33_backoffice/internal/config"
	"delta33_backoffice/internal/infrastructure/ai"
	"delta33_backoffice/internal/infrastructure/database"
	"delta33_backoffice/internal/usecase"
	"delta33_backoffice/internal/usecase/interfaces"
	"delta33_backoffice/pkg/heartbeat"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the whole service and blocks serving HTTP until the server
// stops. All dependencies flow down from here; nothing is global.
func Run(cfg *config.Config, log *zap.Logger) error {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Archive.Path)
	if err != nil {
		return fmt.Errorf("opening archive store: %w", err)
	}
	defer db.Close()

	appointmentRepo := repository.NewAppointmentBoltRepository(db, log)
	budgetRepo := repository.NewBudgetBoltRepository(db, log)
	traceRepo := repository.NewTraceBoltRepository(db, log)
	surveyRepo := repository.NewSurveyBoltRepository(db, log)
	flagRepo := repository.NewFlagBoltRepository(db)

	var analyzer interfaces.IAgreementAnalyzer
	gemini, err := ai.NewGeminiAnalyzer(context.Background(), ai.Config{
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		MockMode: cfg.AI.MockMode,
	}, log)
	if err != nil {
		// The service still works without the collaborator; the use cases
		// degrade to their fallbacks.
		log.Warn("AI collaborator not configured", zap.Error(err))
	} else {
		analyzer = gemini
	}

	sessions := session.NewMemoryStore(cfg.Auth.SessionTTL)

	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, appointmentRepo)
	traceUseCase := usecase.NewTraceUseCase(traceRepo, analyzer, log)
	surveyUseCase := usecase.NewSurveyUseCase(surveyRepo, appointmentRepo)
	statsUseCase := usecase.NewStatsUseCase(appointmentRepo, budgetRepo, surveyRepo)
	archiveUseCase := usecase.NewArchiveUseCase(appointmentRepo, budgetRepo, traceRepo, surveyRepo)
	dailyUseCase := usecase.NewDailyUseCase(analyzer, log)
	settingsUseCase := usecase.NewSettingsUseCase(flagRepo)
	authUseCase := usecase.NewAuthUseCase(cfg.Auth.AdminUser, cfg.Auth.AdminPass, sessions)

	h := backofficeHandlers{
		appointment: handlers.NewAppointmentHandler(appointmentUseCase),
		budget:      handlers.NewBudgetHandler(budgetUseCase),
		trace:       handlers.NewTraceHandler(traceUseCase),
		survey:      handlers.NewSurveyHandler(surveyUseCase),
		stats:       handlers.NewStatsHandler(statsUseCase),
		daily:       handlers.NewDailyHandler(dailyUseCase),
		settings:    handlers.NewSettingsHandler(archiveUseCase, settingsUseCase),
		auth:        handlers.NewAuthHandler(authUseCase),
	}

	router := gin.New()
	router.Use(ginzap(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/v1")
	addPublicRoutes(v1, h)

	protected := v1.Group("")
	protected.Use(middleware.RequireSession(authUseCase))
	addBackofficeRoutes(protected, h)

	hb := heartbeat.Start(time.Minute, func(now time.Time) {
		d := usecase.Doomsday(now)
		log.Debug("countdown tick",
			zap.Int("hours", d.Hours),
			zap.Int("mins", d.Mins),
			zap.Int("secs", d.Secs),
		)
	})
	defer hb.Stop()

	log.Info("starting server",
		zap.String("app", cfg.AppName),
		zap.String("env", cfg.Environment),
		zap.String("port", cfg.HTTP.Port),
	)
	return router.Run(":" + cfg.HTTP.Port)
}

// ginzap logs each request through zap instead of gin's default writer.
func ginzap(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
