package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	_ "cutlery/docs" // swagger docs

	"cutlery/internal/auth"
	"cutlery/internal/cache"
	"cutlery/internal/config"
	"cutlery/internal/handler"
	"cutlery/internal/logger"
	"cutlery/internal/partner"
	"cutlery/internal/router"
	"cutlery/internal/service"
	"cutlery/internal/storage"
)

// @title Cutlery Requirement API
// @version 1.0
// @description Cutlery customization requirements with JWT authentication and a home design partner proxy.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	l, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		l.Fatal("storage init", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	cat, err := service.LoadCatalog(ctx, store.Catalog)
	if err != nil {
		l.Fatal("catalog load", zap.Error(err))
	}

	var cacheClient *cache.Client
	if cfg.RedisAddr != "" {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := cacheClient.Ping(ctx); err != nil {
			l.Warn("redis unavailable, serving without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer func() { _ = cacheClient.Close() }()
	}

	var partnerClient partner.Client
	if cfg.PartnerEnabled() {
		partnerClient = partner.NewClient(cfg.PartnerBaseURL, cfg.PartnerTimeout)
	} else {
		l.Warn("PARTNER_BASE_URL not set, home design integration disabled")
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(store.Users, jwtService, partnerClient, cfg.AdminUsername)
	requirementService := service.NewRequirementService(store.Requirements, cat)
	catalogService := service.NewCatalogService(cat)
	homeDesignService := service.NewHomeDesignService(partnerClient, cacheClient, cfg.DesignCacheTTL)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, l, authService, router.Handlers{
		Auth:        handler.NewAuthHandler(authService, l),
		Requirement: handler.NewRequirementHandler(requirementService, l),
		Choice:      handler.NewChoiceHandler(catalogService),
		HomeDesign:  handler.NewHomeDesignHandler(homeDesignService, l),
	})

	l.Info("swagger documentation available", zap.String("url", swaggerURL(cfg)))

	addr := ":" + cfg.ServerPort
	go func() {
		l.Info("server starting", zap.String("addr", addr), zap.String("storage", cfg.StorageDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	l.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("server shutdown", zap.Error(err))
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
