package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "solar_marketplace/docs"
	"solar_marketplace/internal/adapter/http/handlers"
	"solar_marketplace/internal/adapter/http/middleware"
	"solar_marketplace/internal/infrastructure/config"
	"solar_marketplace/internal/infrastructure/metrics"
	"solar_marketplace/internal/usecase"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run wires storage, events and metrics from cfg and serves until SIGINT or
// SIGTERM.
func Run(cfg config.Config, log *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, err := newGateway(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer gw.close(log)

	publisher, drain, err := newPublisher(cfg.NATS, log)
	if err != nil {
		return err
	}
	defer drain()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gin.SetMode(cfg.GinMode)
	router, auth := newRouter(cfg, gw, publisher, registry, log)

	if cfg.Admin.Enabled() {
		created, err := auth.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return err
		}
		log.Infow("admin seed", "email", cfg.Admin.Email, "created", created)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter builds the use cases over gw and mounts every route. The auth
// use case is returned for admin seeding.
func newRouter(cfg config.Config, gw gateway, publisher interfaces.IEventPublisher, registry *prometheus.Registry, log *zap.SugaredLogger) (*gin.Engine, usecase.IAuthUseCase) {
	recorder := metrics.NewRecorder(registry)

	notifier := usecase.NewNotifier(gw.users, gw.notifications, publisher, recorder, log)
	authUseCase := usecase.NewAuthUseCase(gw.users, gw.sessions, cfg.Session.TTL, log)
	requestUseCase := usecase.NewQuotationRequestUseCase(gw.requests, gw.quotations, gw.users, notifier, recorder, log)
	quotationUseCase := usecase.NewVendorQuotationUseCase(gw.quotations, gw.requests, gw.users, notifier, recorder, log)
	notificationUseCase := usecase.NewNotificationUseCase(gw.notifications, log)
	adminUseCase := usecase.NewAdminUseCase(gw.users, gw.requests, gw.quotations, log)

	cookie := handlers.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Production(), MaxAge: cfg.Session.TTL}
	authHandler := handlers.NewAuthHandler(authUseCase, cookie, log)
	customerHandler := handlers.NewCustomerHandler(requestUseCase, quotationUseCase)
	vendorHandler := handlers.NewVendorHandler(requestUseCase, quotationUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase, authUseCase, requestUseCase, log)

	gate := middleware.NewGate(authUseCase, cfg.Session.CookieName, recorder, log)

	router := gin.New()
	setMiddlewares(router, cfg, recorder, log)

	router.GET("/health", health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, gate, authHandler)
	addCustomerRoutes(v1, gate, customerHandler)
	addVendorRoutes(v1, gate, vendorHandler)
	addNotificationRoutes(v1, gate, notificationHandler)
	addAdminRoutes(v1, gate, adminHandler)

	return router, authUseCase
}

func setMiddlewares(router *gin.Engine, cfg config.Config, obs middleware.HTTPObserver, log *zap.SugaredLogger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorw("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Metrics(obs))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
