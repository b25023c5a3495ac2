// Seminar hall booking API server.
//
// @title Seminar Hall Booking API
// @version 1.0
// @description Hall booking, availability, and conflict detection for campus seminar halls.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	_ "github.com/dtaoOfficial/seminar-hall-backend/docs"

	"github.com/dtaoOfficial/seminar-hall-backend/config"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/adapters/auth"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/adapters/email"
	delivery "github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/controllers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/middleware"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/ratelimit"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/repository/postgres"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/services"
)

const serviceTimeout = 5 * time.Second

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()
	} else {
		logger.Warn("REDIS_ADDR not set, auth rate limiting disabled")
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	seminarRepo := postgres.NewSeminarRepository(db)
	hallRepo := postgres.NewHallRepository(db)
	departmentRepo := postgres.NewDepartmentRepository(db)
	userRepo := postgres.NewUserRepository(db)
	otpRepo := postgres.NewOtpRepository(db)
	operatorRepo := postgres.NewHallOperatorRepository(db)
	logRepo := postgres.NewLogRepository(db)

	hasher := auth.NewBcryptHasher(0)
	tokens := auth.NewJWTCodec(cfg.JWTSecret)

	logService := services.NewLogService(logRepo, logger, serviceTimeout)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	authService := services.NewAuthService(userRepo, otpRepo, hasher, tokens, tokens, emailService, logService, logger, cfg.TokenExpiry, serviceTimeout)
	userService := services.NewUserService(userRepo, hasher, logService, serviceTimeout)
	hallService := services.NewHallService(hallRepo, logService, serviceTimeout)
	operatorService := services.NewHallOperatorService(operatorRepo, hallRepo, emailService, logService, logger, serviceTimeout)
	departmentService := services.NewDepartmentService(departmentRepo, serviceTimeout)
	seminarService := services.NewSeminarService(seminarRepo, hallRepo, emailService, logService, logger, serviceTimeout)

	limiter := ratelimit.New(rdb, cfg.AuthRateLimit, cfg.AuthRateWindow, "auth", logger)

	mux := delivery.NewRouter(delivery.RouterDeps{
		Logger:     logger,
		Verifier:   tokens,
		Limiter:    limiter,
		Auth:       controllers.NewAuthController(logger, authService),
		Seminars:   controllers.NewSeminarController(logger, seminarService),
		Halls:      controllers.NewHallController(logger, hallService),
		Department: controllers.NewDepartmentController(logger, departmentService),
		Operators:  controllers.NewOperatorController(logger, operatorService),
		Users:      controllers.NewUserController(logger, userService),
		Logs:       controllers.NewLogController(logger, logService),
		Health:     controllers.NewHealthController(db),
	})

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
