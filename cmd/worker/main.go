// The worker binary drains the outbox into the audit trail. It runs one
// cooperative poll loop and exposes its Prometheus registry plus health
// probes on WORKER_METRICS_PORT. Multiple worker processes may share a
// database; the claim's row locks keep them from colliding.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/config"
	db "github.com/arc-self/qhse-service/internal/repository/db"
	"github.com/arc-self/qhse-service/internal/storage"
	"github.com/arc-self/qhse-service/internal/telemetry"
	"github.com/arc-self/qhse-service/internal/worker"
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
		tp, err := telemetry.InitTracer(context.Background(), "qhse-worker", cfg.OTLPEndpoint)
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

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := storage.Migrate(context.Background(), sqlDB, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	// ── Metrics & probes ───────────────────────────────────────────────────
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := worker.NewMetrics(registry)
	readiness := storage.NewChecker(pool, sqlDB, cfg.Env)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok"}`)
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		res := readiness.Check(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if !res.Ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(res)
	})
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.WorkerMetricsPort),
		Handler: mux,
	}
	go func() {
		logger.Info("worker metrics server listening", zap.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("metrics server failure", zap.Error(err))
		}
	}()

	// ── Worker loop ────────────────────────────────────────────────────────
	// Each process gets a unique identity so stale locks are attributable.
	workerID := fmt.Sprintf("%s-%s", cfg.WorkerID, uuid.NewString()[:8])

	w := worker.New(pool, db.New(pool), logger, metrics, worker.Options{
		ID:          workerID,
		BatchSize:   cfg.OutboxBatchSize,
		LockTimeout: time.Duration(cfg.OutboxLockTimeoutSec) * time.Second,
		MaxAttempts: cfg.OutboxMaxAttempts,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown error", zap.Error(err))
	}
	logger.Info("qhse-worker shut down cleanly")
}
