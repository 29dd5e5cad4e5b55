package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/civic-complaint-service/internal/api/http"
	"github.com/spec-kit/civic-complaint-service/internal/api/http/handlers"
	"github.com/spec-kit/civic-complaint-service/internal/auth"
	"github.com/spec-kit/civic-complaint-service/internal/cache"
	"github.com/spec-kit/civic-complaint-service/internal/config"
	"github.com/spec-kit/civic-complaint-service/internal/events"
	"github.com/spec-kit/civic-complaint-service/internal/observability"
	"github.com/spec-kit/civic-complaint-service/internal/persistence"
	"github.com/spec-kit/civic-complaint-service/internal/repository"
	"github.com/spec-kit/civic-complaint-service/internal/service"
	"github.com/spec-kit/civic-complaint-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	pool := pg.PoolHandle()
	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}
	if cfg.Postgres.SeedDepartments {
		if err := persistence.SeedDepartments(ctx, pool, logger); err != nil {
			logger.Fatal("failed to seed departments", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	userRepo := repository.NewUserRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	dispatchRepo := repository.NewDispatchRepository(pool)

	directoryCache := cache.NewDirectoryCache(redis.Client, cfg.Redis.DirectoryTTL(), logger)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authService := service.NewAuthService(cfg.Auth, userRepo, resetRepo, tokenManager, logger)
	departmentService := service.NewDepartmentService(departmentRepo, directoryCache, logger)
	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		ComplaintRepo:     complaintRepo,
		DispatchRepo:      dispatchRepo,
		UserRepo:          userRepo,
		DepartmentService: departmentService,
		Dispatcher:        dispatcher,
		Logger:            logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(tokenManager, userRepo)

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: 8 << 20,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Complaints:     handlers.NewComplaintsHandler(complaintService),
		Departments:    handlers.NewDepartmentsHandler(departmentService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
