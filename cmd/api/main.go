package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"careerassign/internal/app"
	"careerassign/internal/config"
	"careerassign/internal/database"
	apphttp "careerassign/internal/http"
	"careerassign/internal/http/handlers"
	"careerassign/internal/http/metrics"
	httpmw "careerassign/internal/http/middleware"
	"careerassign/internal/http/response"
	"careerassign/internal/observability"
	"careerassign/internal/repository/postgres"
	"careerassign/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	candidateRepo := postgres.NewCandidateProfileRepository(db)
	companyRepo := postgres.NewCompanyProfileRepository(db)
	institutionRepo := postgres.NewInstitutionRepository(db)
	facultyRepo := postgres.NewFacultyRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	jobApplicationRepo := postgres.NewJobApplicationRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	authService := app.NewAuthService(userRepo, jwtProvider, logger, cfg.AccessTokenTTL)
	profileService := app.NewProfileService(candidateRepo, companyRepo)
	catalogService := app.NewCatalogService(institutionRepo, facultyRepo, courseRepo, applicationRepo)
	admissionService := app.NewAdmissionService(applicationRepo, courseRepo, institutionRepo, candidateRepo, notificationRepo, logger)
	jobService := app.NewJobService(jobRepo, jobApplicationRepo, candidateRepo, companyRepo, notificationRepo, logger)
	notificationService := app.NewNotificationService(notificationRepo)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if redisLimiter := httpmw.NewRedisLimiter(client); redisLimiter != nil {
			limiter = redisLimiter
		}
	}

	authHandler := handlers.NewAuthHandler(authService, limiter)
	profileHandler := handlers.NewProfileHandler(profileService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	admissionHandler := handlers.NewAdmissionHandler(admissionService, catalogService, limiter)
	jobHandler := handlers.NewJobHandler(jobService, limiter)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	authMiddleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:         authHandler,
		ProfileHandler:      profileHandler,
		CatalogHandler:      catalogHandler,
		AdmissionHandler:    admissionHandler,
		JobHandler:          jobHandler,
		NotificationHandler: notificationHandler,
		MetricsHandler:      handlers.NewMetricsHandler(collector),
		AuthMiddleware:      authMiddleware,
		Metrics:             collector,
		RequestTimeout:      cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
