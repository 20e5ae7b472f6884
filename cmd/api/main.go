package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/autismo-mochis/clinic-service/internal/api/http"
	"github.com/autismo-mochis/clinic-service/internal/api/http/handlers"
	"github.com/autismo-mochis/clinic-service/internal/auth"
	"github.com/autismo-mochis/clinic-service/internal/config"
	"github.com/autismo-mochis/clinic-service/internal/events"
	"github.com/autismo-mochis/clinic-service/internal/mail"
	"github.com/autismo-mochis/clinic-service/internal/observability"
	"github.com/autismo-mochis/clinic-service/internal/persistence"
	"github.com/autismo-mochis/clinic-service/internal/repository"
	"github.com/autismo-mochis/clinic-service/internal/service"
	"github.com/autismo-mochis/clinic-service/internal/worker"
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

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	permissionRepo := repository.NewPermissionRepository(pool)
	degreeRepo := repository.NewDegreeRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	guardianRepo := repository.NewGuardianRepository(pool)
	childRepo := repository.NewChildRepository(pool)
	prospectRepo := repository.NewProspectRepository(pool)
	therapyRepo := repository.NewTherapyRepository(pool)
	kindRepo := repository.NewAppointmentKindRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)

	roleCache := auth.NewRoleCache(redis.Client, roleRepo)
	dispatcher := events.NewInMemoryDispatcher()
	mailer := mail.NewSMTPMailer(cfg.SMTP)

	authService := service.NewAuthService(*cfg, userRepo, roleRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	directoryService := service.NewDirectoryService(roleRepo, permissionRepo, degreeRepo, roleCache)
	staffService := service.NewStaffService(*cfg, userRepo, staffRepo, roleRepo, degreeRepo)
	familyService := service.NewFamilyService(guardianRepo, childRepo, prospectRepo)
	catalogService := service.NewCatalogService(therapyRepo, kindRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, dispatcher)
	notificationService := service.NewNotificationService(
		mailer, staffRepo, userRepo, childRepo, guardianRepo, prospectRepo, logger)

	worker.StartNotificationWorker(dispatcher, notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo, roleCache)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Directory:      handlers.NewDirectoryHandler(directoryService),
		Staff:          handlers.NewStaffHandler(staffService),
		Family:         handlers.NewFamilyHandler(familyService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Appointments:   handlers.NewAppointmentsHandler(appointmentService),
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
