package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/unityride/internal/pkg/config"
	"github.com/piresc/unityride/internal/pkg/database"
	"github.com/piresc/unityride/internal/pkg/health"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	natspkg "github.com/piresc/unityride/internal/pkg/nats"
	nrpkg "github.com/piresc/unityride/internal/pkg/newrelic"
	"github.com/piresc/unityride/internal/pkg/retry"
	"github.com/piresc/unityride/internal/pkg/server"
	"github.com/piresc/unityride/internal/pkg/validator"
	"github.com/piresc/unityride/internal/pkg/websocket"
	adminHandler "github.com/piresc/unityride/services/admin/handler"
	adminRepository "github.com/piresc/unityride/services/admin/repository"
	adminUsecase "github.com/piresc/unityride/services/admin/usecase"
	bookingGateway "github.com/piresc/unityride/services/bookings/gateway"
	bookingHandler "github.com/piresc/unityride/services/bookings/handler"
	bookingRepository "github.com/piresc/unityride/services/bookings/repository"
	bookingUsecase "github.com/piresc/unityride/services/bookings/usecase"
	eventHandler "github.com/piresc/unityride/services/events/handler"
	eventRepository "github.com/piresc/unityride/services/events/repository"
	eventUsecase "github.com/piresc/unityride/services/events/usecase"
	notificationGateway "github.com/piresc/unityride/services/notifications/gateway"
	notificationHandler "github.com/piresc/unityride/services/notifications/handler"
	notificationRepository "github.com/piresc/unityride/services/notifications/repository"
	notificationUsecase "github.com/piresc/unityride/services/notifications/usecase"
	rideHandler "github.com/piresc/unityride/services/rides/handler"
	rideRepository "github.com/piresc/unityride/services/rides/repository"
	rideUsecase "github.com/piresc/unityride/services/rides/usecase"
	userGateway "github.com/piresc/unityride/services/users/gateway"
	userHandler "github.com/piresc/unityride/services/users/handler"
	userRepository "github.com/piresc/unityride/services/users/repository"
	userUsecase "github.com/piresc/unityride/services/users/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Run the HTTP API and the notification feed",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, config.InitConfig(opts.ConfigPath))
		},
	}
}

func runServe(ctx context.Context, configs *models.Config) error {
	if configs.JWT.Secret == "" {
		return errors.New("JWT_SECRET must be set")
	}

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		return err
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	shutdown := server.NewShutdownManager(zapLogger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdown.Shutdown(shutdownCtx)
	}()
	if nrApp != nil {
		shutdown.Register(func(context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}

	// Infrastructure; backing services may still be starting when the API boots
	dial := retry.New(retry.StartupConfig(), zapLogger)

	var postgresClient *database.PostgresClient
	err = dial.Do(ctx, "postgres", func(context.Context) (err error) {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	})
	if err != nil {
		zapLogger.Error("Failed to connect to PostgreSQL", logger.Err(err))
		return err
	}
	shutdown.Register(func(context.Context) error { return postgresClient.Close() })

	if configs.Database.AutoMigrate {
		applied, err := database.Migrate(ctx, postgresClient.GetDB())
		if err != nil {
			zapLogger.Error("Failed to apply migrations", logger.Err(err))
			return err
		}
		zapLogger.Info("Database migrated", logger.Int("applied", applied))
	}

	var redisClient *database.RedisClient
	err = dial.Do(ctx, "redis", func(context.Context) (err error) {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	})
	if err != nil {
		zapLogger.Error("Failed to connect to Redis", logger.Err(err))
		return err
	}
	shutdown.Register(func(context.Context) error { return redisClient.Close() })

	var natsClient *natspkg.Client
	err = dial.Do(ctx, "nats", func(context.Context) (err error) {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		return err
	})
	if err != nil {
		zapLogger.Error("Failed to connect to NATS", logger.Err(err))
		return err
	}
	shutdown.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})

	db := postgresClient.GetDB()

	// Repositories
	userRepo := userRepository.NewUserRepository(db)
	eventRepo := eventRepository.NewEventRepository(db)
	rideRepo := rideRepository.NewRideRepository(db)
	bookingRepo := bookingRepository.NewBookingRepository(db)
	adminRepo := adminRepository.NewAdminRepository(db)
	notificationRepo := notificationRepository.NewNotificationRepository(db)
	unreadCache := notificationRepository.NewUnreadCache(redisClient,
		time.Duration(configs.Notify.UnreadCacheTTLSec)*time.Second)
	resetTokens := userRepository.NewResetTokenStore(redisClient)

	// Gateways
	notificationGW := notificationGateway.NewNotificationGW(natsClient)
	bookingGW := bookingGateway.NewBookingGW(natsClient)
	userGW := userGateway.NewUserGW(natsClient)

	// Use cases
	notificationUC := notificationUsecase.NewNotificationUC(notificationRepo, unreadCache, notificationGW, configs)
	userUC := userUsecase.NewUserUC(userRepo, resetTokens, userGW, configs)
	eventUC := eventUsecase.NewEventUC(eventRepo)
	rideUC := rideUsecase.NewRideUC(rideRepo, userRepo, eventRepo)
	bookingUC := bookingUsecase.NewBookingUC(bookingRepo, rideRepo, userRepo, eventRepo, notificationUC, bookingGW)
	adminUC := adminUsecase.NewAdminUC(adminRepo, notificationUC)

	// Realtime feed
	wsManager := websocket.NewManager()
	notifications := notificationHandler.NewHandler(notificationUC, natsClient, wsManager)
	if err := notifications.InitNATSConsumers(); err != nil {
		zapLogger.Error("Failed to initialize NATS consumers", logger.Err(err))
		return err
	}
	shutdown.Register(func(context.Context) error {
		notifications.Close()
		return nil
	})

	// HTTP
	e := newEcho(zapLogger, nrApp)

	healthSvc := health.NewService(configs.App.Name)
	healthSvc.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthSvc.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthSvc.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterHealthEndpoints(e, healthSvc)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := middleware.JWTAuthMiddleware(configs.JWT)
	period := time.Duration(configs.RateLimit.PeriodSeconds) * time.Second
	loginLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Resource:    "login",
		Limit:       configs.RateLimit.LoginLimit,
		Period:      period,
	})
	bookingLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Resource:    "booking",
		Limit:       configs.RateLimit.BookingLimit,
		Period:      period,
	})
	admin := e.Group("/admin", auth, middleware.RequireAdmin())

	userHandler.NewHandler(userUC).RegisterRoutes(e, auth, loginLimit)
	eventHandler.NewHandler(eventUC).RegisterRoutes(e, auth, admin)
	rideHandler.NewHandler(rideUC).RegisterRoutes(e, auth)
	bookingHandler.NewHandler(bookingUC).RegisterRoutes(e, auth, bookingLimit)
	notifications.RegisterRoutes(e, auth)
	adminHandler.NewHandler(adminUC).RegisterRoutes(admin)

	return server.NewGracefulServer(e, zapLogger, configs.Server).Run(ctx)
}

func newEcho(zapLogger *logger.ZapLogger, nrApp *newrelic.Application) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(echomw.RequestID())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.MetricsMiddleware())
	return e
}
