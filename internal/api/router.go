package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/skyline-bms/apartment-portal/docs"
	"github.com/skyline-bms/apartment-portal/internal/api/handler"
	"github.com/skyline-bms/apartment-portal/internal/api/middleware"
	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
	"github.com/skyline-bms/apartment-portal/internal/core/service"
	"github.com/skyline-bms/apartment-portal/internal/core/session"
	mongostore "github.com/skyline-bms/apartment-portal/internal/infrastructure/db/mongo"
	redisstore "github.com/skyline-bms/apartment-portal/internal/infrastructure/db/redis"
	httphandlers "github.com/skyline-bms/apartment-portal/internal/infrastructure/http/handlers"
	"github.com/skyline-bms/apartment-portal/internal/infrastructure/queue"
	"github.com/skyline-bms/apartment-portal/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the reminder dispatcher, which the caller starts once the
// server's root context exists.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.ReminderDispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	billRepo := mongostore.NewBillRepository(db)
	notificationRepo := mongostore.NewNotificationRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	billService := service.NewBillService(billRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, log)

	sessions := session.NewManager(authService, func(sessionID string) ports.SessionStorage {
		return redisstore.NewSessionStorage(rdb, sessionID)
	}, log)

	dispatcher := queue.NewReminderDispatcher(cfg.ReminderWorkers, notificationService, log)

	authHandler := handler.NewAuthHandler(sessions, authService)
	navigationHandler := handler.NewNavigationHandler(sessions)
	billHandler := handler.NewBillHandler(billService, dispatcher)
	userHandler := handler.NewUserHandler(userRepo)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	authMiddleware := middleware.Auth(authService, sessions)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Navigation decision layer (session-header based, no bearer token) ---
	e.GET("/navigation", navigationHandler.Navigation)
	e.POST("/navigate", navigationHandler.Navigate)

	// --- Authenticated API ---
	v1 := e.Group("/api/v1", authMiddleware)
	v1.GET("/bills", billHandler.List)
	v1.GET("/users", userHandler.List,
		middleware.RBAC(domain.RoleManager, domain.RoleAdmin))
	v1.GET("/users/staff", userHandler.Staff,
		middleware.RBAC(domain.RoleReceptionist, domain.RoleManager, domain.RoleAdmin))
	v1.GET("/notifications", notificationHandler.List)
	v1.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	v1.POST("/reminders/run", billHandler.RunReminders,
		middleware.RBAC(domain.RoleManager, domain.RoleAdmin))

	// --- Operational endpoints ---
	health := httphandlers.NewHealth(db, rdb)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, dispatcher
}
