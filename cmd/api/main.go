// The api binary serves the QHSE HTTP API: auth facade, supplier and NC
// endpoints (which enqueue outbox events inside their business
// transactions), KPI and audit reads, and health probes.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/auth"
	"github.com/arc-self/qhse-service/internal/config"
	"github.com/arc-self/qhse-service/internal/correlation"
	"github.com/arc-self/qhse-service/internal/handler"
	db "github.com/arc-self/qhse-service/internal/repository/db"
	"github.com/arc-self/qhse-service/internal/service"
	"github.com/arc-self/qhse-service/internal/storage"
	"github.com/arc-self/qhse-service/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("configuration error", zap.Error(err))
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("logger setup failed", zap.Error(err))
	}
	defer logger.Sync()

	// ── OpenTelemetry ──────────────────────────────────────────────────────
	if cfg.OTLPEndpoint != "" {
		tp, err := telemetry.InitTracer(context.Background(), "qhse-api", cfg.OTLPEndpoint)
		if err != nil {
			logger.Error("failed to init OTel tracer", zap.Error(err))
		} else {
			defer tp.Shutdown(context.Background())
			logger.Info("OTel tracer initialized", zap.String("endpoint", cfg.OTLPEndpoint))
		}
	}

	// ── Database ───────────────────────────────────────────────────────────
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to parse DATABASE_URL", zap.Error(err))
	}
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()
	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// goose and the readiness head check speak database/sql; this is a
	// stdlib view over the same pool.
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := storage.Migrate(context.Background(), sqlDB, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	// ── Repository & Services ──────────────────────────────────────────────
	querier := db.New(pool)
	supplierSvc := service.NewSupplierService(pool, querier)
	ncSvc := service.NewNCService(pool, querier)
	kpiSvc := service.NewKPIService(querier)
	auditSvc := service.NewAuditService(querier)
	readiness := storage.NewChecker(pool, sqlDB, cfg.Env)

	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlg, cfg.AccessTokenExpireMin)
	if err != nil {
		logger.Fatal("token issuer setup failed", zap.Error(err))
	}

	// ── HTTP Server ────────────────────────────────────────────────────────
	e := echo.New()
	e.HideBanner = true
	e.Use(otelecho.Middleware("qhse-api"))
	e.Use(correlation.Middleware(cfg.RequestIDHeader))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("HTTP request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.String("request_id", c.Response().Header().Get(cfg.RequestIDHeader)),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	handler.RegisterRoutes(e, issuer, supplierSvc, ncSvc, kpiSvc, auditSvc, readiness, logger)

	go func() {
		logger.Info("qhse-api HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failure", zap.Error(err))
		}
	}()

	// ── Graceful Shutdown ──────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Echo shutdown error", zap.Error(err))
	}
	logger.Info("qhse-api shut down cleanly")
}
