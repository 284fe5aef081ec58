package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gkulo22/WorkoutApp-API/internal/api"
	"github.com/gkulo22/WorkoutApp-API/internal/config"
	"github.com/gkulo22/WorkoutApp-API/internal/core"
	"github.com/gkulo22/WorkoutApp-API/internal/logger"
	"github.com/gkulo22/WorkoutApp-API/internal/metrics"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/gkulo22/WorkoutApp-API/internal/repository/memory"
	"github.com/gkulo22/WorkoutApp-API/internal/repository/mongo"
	"github.com/gkulo22/WorkoutApp-API/internal/repository/postgres"
	"github.com/gkulo22/WorkoutApp-API/internal/seed"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
	"github.com/gkulo22/WorkoutApp-API/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

// @title Workout Plan API
// @version 1.0
// @description Exercise catalog, workout plans and progress tracking.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		logrus.Fatalf("could not build logger: %v", err)
	}
	log.WithField("driver", cfg.Database.Driver).Info("starting workout plan server")

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped with error")
	}
	log.Info("server exiting")
}

func run(cfg config.Config, log *logrus.Logger) error {
	ctx := context.Background()

	// --- Storage backend ---
	repos, closeRepos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepos()

	// --- Services ---
	users := service.NewUserService(repos.Users)
	authService := service.NewAuthService(users, cfg.JWT.Secret, cfg.JWT.Expiration)
	exerciseService := service.NewExerciseService(repos.Exercises)
	services := core.Services{
		Auth:      authService,
		Users:     users,
		Exercises: exerciseService,
		Plans:     service.NewPlanService(repos.Plans),
		Tracking:  service.NewTrackingService(repos.Weights, repos.Goals),
	}

	if cfg.S3.Enabled() {
		fileStorage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			return fmt.Errorf("initialize S3 storage: %w", err)
		}
		services.Media = service.NewMediaService(repos.Exercises, fileStorage, cfg.S3.URLExpiry, log)
	} else {
		log.Info("s3.bucket_name not set, exercise media disabled")
	}

	if cfg.Seed.Enabled {
		seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		_, err := seed.Exercises(seedCtx, exerciseService, log)
		cancel()
		if err != nil {
			return fmt.Errorf("seed exercise catalog: %w", err)
		}
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	// --- HTTP ---
	var limiter *api.RateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = api.NewRateLimiter(api.RateLimiterConfigFrom(cfg.RateLimit), log)
		defer limiter.Stop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.Dependencies{
		Facade:      core.NewFacade(services, service.NewUsageDispatcher(), recorder),
		AuthService: authService,
		Logger:      log,
		Metrics:     recorder,
		Gatherer:    registry,
		RateLimiter: limiter,
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// --- Graceful Shutdown ---
	serverErr := make(chan error, 1)
	go func() {
		log.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down server")
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// openRepositories connects the configured backend and prepares its schema.
// The returned func releases the connection.
func openRepositories(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (repository.Repositories, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		client, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return repository.Repositories{}, nil, fmt.Errorf("connect to MongoDB: %w", err)
		}
		db := client.Database(cfg.Database.Name)

		indexCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(indexCtx, db); err != nil {
			_ = mongo.DisconnectDB(client)
			return repository.Repositories{}, nil, fmt.Errorf("ensure indexes: %w", err)
		}
		log.WithField("database", cfg.Database.Name).Info("connected to MongoDB")

		return mongo.NewRepositories(db), func() {
			if err := mongo.DisconnectDB(client); err != nil {
				log.WithError(err).Error("failed to disconnect MongoDB")
			}
		}, nil

	case config.DriverPostgres:
		if err := postgres.RunMigrations(cfg.Database.URL); err != nil {
			return repository.Repositories{}, nil, err
		}
		db, err := postgres.Open(cfg.Database.URL)
		if err != nil {
			return repository.Repositories{}, nil, fmt.Errorf("connect to PostgreSQL: %w", err)
		}
		log.Info("connected to PostgreSQL")

		return postgres.NewRepositories(db), func() {
			if err := db.Close(); err != nil {
				log.WithError(err).Error("failed to close PostgreSQL connection")
			}
		}, nil

	default:
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.NewRepositories(), func() {}, nil
	}
}
